// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor"
)

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(4, 3)
	if target.Width() != 4 || target.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
	if target.Stride() != 16 || len(target.Pixels()) != 48 {
		t.Errorf("Stride() = %d, len(Pixels()) = %d, want 16, 48", target.Stride(), len(target.Pixels()))
	}

	target.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if got := target.At(3, 2); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("At(3, 2) = %v after Clear", got)
	}

	target.Resize(8, 8)
	if target.Width() != 8 || target.At(0, 0) != (color.RGBA{}) {
		t.Error("Resize() did not produce an empty 8x8 target")
	}
}

func TestPixmapTargetFromImageSharesMemory(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	target := NewPixmapTargetFromImage(img)
	target.Clear(color.White)
	if img.RGBAAt(1, 1) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("Clear() did not write through to the wrapped image")
	}
	if target.Image() != img {
		t.Error("Image() is not the wrapped image")
	}
}

func TestPassDescriptors(t *testing.T) {
	p := ClearPass(compositor.RGBA(255, 0, 0, 128))
	if p.LoadOp != gputypes.LoadOpClear {
		t.Errorf("LoadOp = %v, want LoadOpClear", p.LoadOp)
	}
	if got, want := p.clearColor(), (color.RGBA{R: 128, A: 128}); got != want {
		t.Errorf("clearColor() = %v, want %v", got, want)
	}
	if LoadPass().LoadOp != gputypes.LoadOpLoad {
		t.Error("LoadPass().LoadOp is not LoadOpLoad")
	}
}

func TestPixelRect(t *testing.T) {
	tests := []struct {
		in   compositor.Rect
		want image.Rectangle
	}{
		{compositor.R(0, 0, 10, 10), image.Rect(0, 0, 10, 10)},
		{compositor.R(0.4, 0.6, 10, 10), image.Rect(0, 1, 10, 11)},
		{compositor.R(0, 0, 0, 10), image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := pixelRect(tt.in); got != tt.want {
			t.Errorf("pixelRect(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
