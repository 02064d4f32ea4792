// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "errors"

// ErrInvalidMaxDim is returned when the configured maximum dimension is not
// a positive pixel count.
var ErrInvalidMaxDim = errors.New("max dimension must be a positive number of pixels")

// ErrInvalidFilter is returned when the configured resampling filter is unknown.
var ErrInvalidFilter = errors.New("unsupported resampling filter")

// RenderError reports that the rasterizer could not produce the pages of a
// document: a missing or unreadable file, an invalid PDF, or a backend
// failure. No output has been written when it is returned.
//
// Error returns the rasterizer's diagnostic unchanged.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string { return e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports a failure writing the PNG for one page. Pages written
// before it remain on disk.
//
// Error returns the filesystem or encoder diagnostic unchanged.
type WriteError struct {
	Page int
	Path string
	Err  error
}

func (e *WriteError) Error() string { return e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }
