// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageResult describes one written output image.
type PageResult struct {
	// Index is the 1-based page number in source order.
	Index int `json:"index" yaml:"index"`

	// Path is the location of the written PNG file.
	Path string `json:"path" yaml:"path"`

	// Width and Height are the dimensions of the written image.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// SourceWidth and SourceHeight are the dimensions the rasterizer produced.
	SourceWidth  int `json:"source_width" yaml:"source_width"`
	SourceHeight int `json:"source_height" yaml:"source_height"`

	// Resized reports whether the page was downscaled to fit MaxDim.
	Resized bool `json:"resized" yaml:"resized"`
}
