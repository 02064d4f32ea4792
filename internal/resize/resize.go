// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resize computes aspect-preserving bounding dimensions and
// resamples page rasters to them.
package resize

import (
	"fmt"
	"image"
	"math"

	nfnt "github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/pdiddy/pdf2png/pkg/types"
)

// Fit returns the dimensions of a width x height image scaled down to fit
// within maxDim on both axes. When the image already fits, the original
// dimensions are returned with resized false; images are never enlarged.
//
// The scale factor is min(maxDim/width, maxDim/height) and the new
// dimensions are truncated, not rounded. Neither dimension drops below 1.
func Fit(width, height, maxDim int) (w, h int, resized bool) {
	if width <= maxDim && height <= maxDim {
		return width, height, false
	}

	scale := math.Min(float64(maxDim)/float64(width), float64(maxDim)/float64(height))
	w = int(float64(width) * scale)
	h = int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h, true
}

// Resample scales img to exactly w x h pixels using the given filter.
func Resample(img image.Image, w, h int, f types.Filter) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}

	if f == types.FilterLanczos3 {
		return nfnt.Resize(uint(w), uint(h), img, nfnt.Lanczos3), nil
	}

	scaler, err := scalerFor(f)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// ValidFilter reports whether f names a supported resampling kernel.
func ValidFilter(f types.Filter) bool {
	if f == types.FilterLanczos3 {
		return true
	}
	_, err := scalerFor(f)
	return err == nil
}

func scalerFor(f types.Filter) (draw.Scaler, error) {
	switch f {
	case types.FilterNearest:
		return draw.NearestNeighbor, nil
	case types.FilterBilinear, "":
		return draw.BiLinear, nil
	case types.FilterCatmullRom:
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unsupported filter %q: use nearest, bilinear, catmull-rom, or lanczos3", f)
	}
}
