// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdf2png/pkg/types"
)

// FitzRasterizer renders pages with MuPDF through go-fitz.
type FitzRasterizer struct{}

// NewFitzRasterizer creates a MuPDF-backed rasterizer.
func NewFitzRasterizer() *FitzRasterizer {
	return &FitzRasterizer{}
}

func (r *FitzRasterizer) Name() string { return string(types.BackendFitz) }

// Render opens the document, renders each page at dpi and closes the
// document before returning, on both success and error paths.
func (r *FitzRasterizer) Render(pdfPath string, dpi int) ([]image.Image, error) {
	if err := checkInput(pdfPath); err != nil {
		return nil, err
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer doc.Close()

	n := doc.NumPage()
	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("rendering page %d of %s: %w", i+1, pdfPath, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
