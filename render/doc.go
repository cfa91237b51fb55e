// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render rasterizes assembled frames.
//
// SoftwareRenderer draws the quads of a frame.Frame into a CPU-accessible
// RenderTarget, back to front, using golang.org/x/image/draw for fills and
// texture sampling. Present uploads a rendered PixmapTarget to a GPU host
// through gpucontext.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	r := render.NewSoftwareRenderer()
//	r.SetResource(thumbID, thumbImage)
//	if err := r.Render(target, f, render.ClearPass(compositor.White)); err != nil {
//	    return err
//	}
//	png.Encode(w, target.Image())
package render
