// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster turns PDF documents into page images. Rendering is
// delegated to an external capability: MuPDF linked in-process through
// go-fitz, or poppler's pdftoppm run as a subprocess.
package raster

import (
	"fmt"
	"image"
	"os"

	"github.com/pdiddy/pdf2png/pkg/types"
)

// Rasterizer renders every page of a PDF into memory.
type Rasterizer interface {
	// Name returns the backend name ("fitz" or "pdftoppm").
	Name() string

	// Render rasterizes all pages of the PDF at pdfPath at the given
	// density and returns them in source page order.
	Render(pdfPath string, dpi int) ([]image.Image, error)
}

// New returns the rasterizer for backend. An empty backend selects fitz.
func New(backend types.Backend) (Rasterizer, error) {
	switch backend {
	case types.BackendFitz, "":
		return NewFitzRasterizer(), nil
	case types.BackendPdftoppm:
		return NewPdftoppmRasterizer()
	default:
		return nil, fmt.Errorf("unsupported backend %q: use fitz or pdftoppm", backend)
	}
}

// checkInput surfaces the filesystem's own error for a missing or
// unreadable input before a backend gets a chance to obscure it.
func checkInput(pdfPath string) error {
	f, err := os.Open(pdfPath)
	if err != nil {
		return err
	}
	return f.Close()
}
