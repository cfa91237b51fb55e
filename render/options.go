// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/compositor"

// RendererOption configures a SoftwareRenderer during creation.
//
// Example:
//
//	// 256px tiles drawn on four goroutines
//	r := render.NewSoftwareRenderer(render.WithTileSize(256), render.WithRasterThreads(4))
//	defer r.Close()
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	tileSize int
	threads  int
}

// WithTileSize splits the output into square tiles of size pixels. Zero or
// a negative size draws the output as a single tile.
func WithTileSize(size int) RendererOption {
	return func(o *rendererOptions) {
		o.tileSize = max(size, 0)
	}
}

// WithRasterThreads draws tiles on n goroutines. Values below 2 draw on the
// caller's goroutine.
func WithRasterThreads(n int) RendererOption {
	return func(o *rendererOptions) {
		o.threads = max(n, 1)
	}
}

// WithSettings applies DefaultTileSize and NumRasterThreads of s.
func WithSettings(s compositor.Settings) RendererOption {
	return func(o *rendererOptions) {
		o.tileSize = max(s.DefaultTileSize, 0)
		o.threads = max(s.NumRasterThreads, 1)
	}
}
