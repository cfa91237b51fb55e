// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor"
)

// RenderTarget defines where rendering output goes.
//
// Targets that live only on the GPU return nil from Pixels; the software
// renderer refuses them.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to premultiplied pixel data, or nil.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, f, render.ClearPass(compositor.White))
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with c.
func (t *PixmapTarget) Clear(c color.Color) {
	fill(t.img, t.img.Bounds(), c)
}

// At returns the premultiplied color at (x, y).
func (t *PixmapTarget) At(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// Resize replaces the target with one of the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ RenderTarget = (*PixmapTarget)(nil)

// fill sets every pixel of r to c.
func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, rgba)
		}
	}
}

// PassDescriptor describes how a render pass treats the existing target
// contents.
type PassDescriptor struct {
	// LoadOp is gputypes.LoadOpClear to fill the target with ClearValue
	// first, or gputypes.LoadOpLoad to draw over what is there.
	LoadOp gputypes.LoadOp

	// ClearValue is a premultiplied color with components in [0, 1].
	ClearValue gputypes.Color
}

// ClearPass returns a pass that clears the target to c.
func ClearPass(c compositor.Color) PassDescriptor {
	return PassDescriptor{LoadOp: gputypes.LoadOpClear, ClearValue: c.GPU()}
}

// LoadPass returns a pass that keeps the target contents.
func LoadPass() PassDescriptor {
	return PassDescriptor{LoadOp: gputypes.LoadOpLoad}
}

// clearColor converts the clear value to 8-bit RGBA.
func (p PassDescriptor) clearColor() color.RGBA {
	return color.RGBA{
		R: unit8(p.ClearValue.R),
		G: unit8(p.ClearValue.G),
		B: unit8(p.ClearValue.B),
		A: unit8(p.ClearValue.A),
	}
}

func unit8(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}
