// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared configuration and result structures for the
// pdf2png conversion pipeline.
package types

// Backend identifies the PDF rasterization tool.
type Backend string

const (
	// BackendFitz renders in-process through MuPDF.
	BackendFitz Backend = "fitz"
	// BackendPdftoppm shells out to poppler's pdftoppm.
	BackendPdftoppm Backend = "pdftoppm"
)

// Filter selects the resampling kernel used when a page is downscaled.
type Filter string

const (
	FilterNearest    Filter = "nearest"
	FilterBilinear   Filter = "bilinear"
	FilterCatmullRom Filter = "catmull-rom"
	FilterLanczos3   Filter = "lanczos3"
)

const (
	// DefaultMaxDim bounds both output dimensions when no value is configured.
	DefaultMaxDim = 1000

	// RenderDPI is the fixed density every page is rasterized at.
	RenderDPI = 200
)

// ConversionConfig holds settings for a PDF-to-PNG conversion.
type ConversionConfig struct {
	// MaxDim is the largest permitted width or height of an output image
	// (default 1000). Values <= 0 are rejected.
	MaxDim int `json:"max_dim" yaml:"max_dim"`

	// Backend selects the rasterizer: fitz or pdftoppm.
	Backend Backend `json:"backend" yaml:"backend"`

	// Filter selects the resampling kernel: nearest, bilinear, catmull-rom, or lanczos3.
	Filter Filter `json:"filter" yaml:"filter"`
}

// DefaultConversionConfig returns the configuration used when nothing is
// set by flags, environment, or config file.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		MaxDim:  DefaultMaxDim,
		Backend: BackendFitz,
		Filter:  FilterBilinear,
	}
}
