// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Presentation errors.
var (
	// ErrInvalidDrawContext is returned when the draw context is nil or its
	// texture is not a gpucontext.Texture.
	ErrInvalidDrawContext = errors.New("render: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the draw context has no texture
	// creator.
	ErrInvalidRenderer = errors.New("render: draw context has no gpucontext.TextureCreator")
)

// Present uploads target to the GPU host behind dc and draws it at (x, y).
//
// The dc parameter is typically obtained from gogpu.Context.AsTextureDrawer().
// A new texture is created for every call; the pixel data is premultiplied.
func Present(dc gpucontext.TextureDrawer, target *PixmapTarget, x, y float32) error {
	if dc == nil {
		return ErrInvalidDrawContext
	}
	if target == nil {
		return ErrNilTarget
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}

	tex, err := creator.NewTextureFromRGBA(target.Width(), target.Height(), target.Pixels())
	if err != nil {
		return fmt.Errorf("render: NewTextureFromRGBA failed: %w", err)
	}
	if pt, ok := any(tex).(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	gpuTex, ok := any(tex).(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}
