// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert writes every page of a PDF as a size-bounded PNG file.
// Rasterization is delegated to a raster.Rasterizer; this package owns
// page iteration, the downscale decision, and output naming.
package convert

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf2png/internal/raster"
	"github.com/pdiddy/pdf2png/internal/resize"
	"github.com/pdiddy/pdf2png/pkg/types"
)

// Result holds the pages written by a conversion, in page order.
type Result struct {
	Pages []types.PageResult
}

// Count returns the number of pages written.
func (r Result) Count() int {
	return len(r.Pages)
}

// Converter renders a PDF through its rasterizer and writes one PNG per page.
type Converter struct {
	rasterizer raster.Rasterizer
	cfg        types.ConversionConfig
	w          io.Writer
	log        logrus.FieldLogger
}

// New creates a converter. Progress lines are written to w; diagnostics go
// to log, which may be nil.
func New(r raster.Rasterizer, cfg types.ConversionConfig, w io.Writer, log logrus.FieldLogger) *Converter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Converter{rasterizer: r, cfg: cfg, w: w, log: log}
}

// PagePath returns the output path for the 1-based page index.
func PagePath(outputDir string, index int) string {
	return filepath.Join(outputDir, fmt.Sprintf("page_%d.png", index))
}

// Convert renders every page of pdfPath and writes page_1.png through
// page_N.png into outputDir, which must already exist. Pages larger than
// the configured MaxDim on either axis are downscaled to fit; smaller pages
// are written unchanged.
//
// A rasterizer failure returns a *RenderError before anything is written.
// A write failure returns a *WriteError and leaves earlier pages on disk.
func (c *Converter) Convert(pdfPath, outputDir string) (Result, error) {
	var result Result

	if c.cfg.MaxDim <= 0 {
		return result, fmt.Errorf("%w: got %d", ErrInvalidMaxDim, c.cfg.MaxDim)
	}
	if !resize.ValidFilter(c.cfg.Filter) {
		return result, fmt.Errorf("%w %q: use nearest, bilinear, catmull-rom, or lanczos3", ErrInvalidFilter, c.cfg.Filter)
	}

	log := c.log.WithFields(logrus.Fields{
		"pdf":        pdfPath,
		"output_dir": outputDir,
		"backend":    c.rasterizer.Name(),
	})
	log.WithField("dpi", types.RenderDPI).Debug("rendering document")

	pages, err := c.rasterizer.Render(pdfPath, types.RenderDPI)
	if err != nil {
		return result, &RenderError{Path: pdfPath, Err: err}
	}
	log.WithField("pages", len(pages)).Debug("document rendered")

	result.Pages = make([]types.PageResult, 0, len(pages))
	for i := range pages {
		page, err := c.writePage(pages[i], i+1, outputDir)
		// Release the raster as soon as the page is done with it.
		pages[i] = nil
		if err != nil {
			return result, err
		}
		result.Pages = append(result.Pages, page)

		log.WithFields(logrus.Fields{
			"page":    page.Index,
			"path":    page.Path,
			"width":   page.Width,
			"height":  page.Height,
			"resized": page.Resized,
		}).Debug("page written")
		fmt.Fprintf(c.w, "Saved page %d as %s (size: %dx%d)\n", page.Index, page.Path, page.Width, page.Height)
	}

	fmt.Fprintf(c.w, "Converted %d pages to PNG images\n", result.Count())
	return result, nil
}

func (c *Converter) writePage(img image.Image, index int, outputDir string) (types.PageResult, error) {
	b := img.Bounds()
	page := types.PageResult{
		Index:        index,
		Path:         PagePath(outputDir, index),
		SourceWidth:  b.Dx(),
		SourceHeight: b.Dy(),
	}

	w, h, resized := resize.Fit(b.Dx(), b.Dy(), c.cfg.MaxDim)
	if resized {
		scaled, err := resize.Resample(img, w, h, c.cfg.Filter)
		if err != nil {
			return page, fmt.Errorf("resizing page %d: %w", index, err)
		}
		img = scaled
	}
	page.Width, page.Height, page.Resized = w, h, resized

	if err := writePNG(page.Path, img); err != nil {
		return page, &WriteError{Page: index, Path: page.Path, Err: err}
	}
	return page, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
