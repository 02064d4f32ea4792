// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/pdf2png/pkg/types"
)

const (
	binPdftoppm = "pdftoppm"
	// outputRoot is the file prefix handed to pdftoppm inside the temp dir.
	outputRoot = "page"
)

// pdftoppm names its files <root>-<n>.png, zero-padding n to the width of
// the page count.
var pageFileRe = regexp.MustCompile(`^` + outputRoot + `-(\d+)\.png$`)

// PdftoppmRasterizer renders pages by running poppler's pdftoppm into a
// temporary directory and decoding the PNGs it leaves behind.
type PdftoppmRasterizer struct {
	exec executor
}

// NewPdftoppmRasterizer returns a pdftoppm-backed rasterizer. It verifies
// that pdftoppm is on PATH before returning.
func NewPdftoppmRasterizer() (*PdftoppmRasterizer, error) {
	return newPdftoppmRasterizer(defaultExec)
}

func newPdftoppmRasterizer(exec executor) (*PdftoppmRasterizer, error) {
	if _, err := exec.LookPath(binPdftoppm); err != nil {
		return nil, fmt.Errorf("pdftoppm not found: install poppler-utils: %w", err)
	}
	return &PdftoppmRasterizer{exec: exec}, nil
}

func (r *PdftoppmRasterizer) Name() string { return string(types.BackendPdftoppm) }

// Render runs pdftoppm once for the whole document and returns the decoded
// pages ordered by page number. A document without pages yields an empty
// slice. The temp directory is removed before returning.
func (r *PdftoppmRasterizer) Render(pdfPath string, dpi int) ([]image.Image, error) {
	if err := checkInput(pdfPath); err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "pdf2png-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	args := []string{"-png", "-r", strconv.Itoa(dpi), pdfPath, filepath.Join(tmpDir, outputRoot)}
	var stderr bytes.Buffer
	if err := r.exec.Run(binPdftoppm, args, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("pdftoppm %s: %w: %s", pdfPath, err, msg)
		}
		return nil, fmt.Errorf("pdftoppm %s: %w", pdfPath, err)
	}

	files, err := pageFiles(tmpDir)
	if err != nil {
		return nil, err
	}
	pages := make([]image.Image, 0, len(files))
	for _, f := range files {
		img, err := decodePNG(f)
		if err != nil {
			return nil, err
		}
		pages = append(pages, img)
	}
	return pages, nil
}

// pageFiles lists pdftoppm's output files in dir sorted by page number.
func pageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pdftoppm output: %w", err)
	}

	type numbered struct {
		n    int
		path string
	}
	var found []numbered
	for _, e := range entries {
		m := pageFileRe.FindStringSubmatch(e.Name())
		if m == nil || e.IsDir() {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, numbered{n: n, path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.path
	}
	return paths, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rendered page: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding rendered page %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
