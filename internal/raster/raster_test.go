// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf2png/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		backend  types.Backend
		wantName string
		wantErr  string
	}{
		{name: "fitz", backend: types.BackendFitz, wantName: "fitz"},
		{name: "empty defaults to fitz", backend: "", wantName: "fitz"},
		{name: "unknown backend", backend: "ghostscript", wantErr: "unsupported backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.backend)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, r.Name())
		})
	}
}

func TestFitzRenderMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	pages, err := NewFitzRasterizer().Render(missing, types.RenderDPI)
	assert.Nil(t, pages)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFitzRender(t *testing.T) {
	tests := []struct {
		name      string
		pdf       string
		wantSizes [][2]int
	}{
		// Letter (612x792pt) then 4x3in (288x216pt), scaled by 200/72.
		{name: "two pages in source order", pdf: "two-pages.pdf", wantSizes: [][2]int{{1700, 2200}, {800, 600}}},
		{name: "document without pages", pdf: "no-pages.pdf", wantSizes: [][2]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := NewFitzRasterizer().Render(filepath.Join("testdata", tt.pdf), types.RenderDPI)
			require.NoError(t, err)
			require.Len(t, pages, len(tt.wantSizes))
			for i, want := range tt.wantSizes {
				b := pages[i].Bounds()
				assert.Equal(t, want, [2]int{b.Dx(), b.Dy()}, "page %d", i+1)
			}
		})
	}
}
