// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/frame"
	"github.com/gogpu/compositor/internal/parallel"
	"github.com/gogpu/compositor/quad"
)

// Rendering errors.
var (
	// ErrNilTarget is returned when the render target is nil.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNilFrame is returned for a nil or released frame.
	ErrNilFrame = errors.New("render: nil or released frame")

	// ErrNoPixelAccess is returned for targets without CPU pixel access.
	ErrNoPixelAccess = errors.New("render: target has no pixel access")

	// ErrUnsupportedFormat is returned for targets that are not RGBA8.
	ErrUnsupportedFormat = errors.New("render: unsupported target format")
)

// Stats counts what the last Render call did.
type Stats struct {
	QuadsDrawn       int
	QuadsClipped     int
	MissingResources int
}

// SoftwareRenderer rasterizes frames on the CPU.
//
// Quads are drawn back to front. Solid color quads are filled with their
// color scaled by the shared state opacity. Debug borders are drawn as
// outlines. Scrollbar quads sample their resource image over the UV rect
// with bilinear filtering. Every quad is clipped to the output rect and, if
// its shared state is clipped, to the clip rect.
//
// With a tile size the output is drawn tile by tile, each tile running the
// whole back-to-front pass over its own pixels. Tiles are independent, so
// with more than one raster thread they are drawn in parallel. The result
// does not depend on the tiling.
//
// SoftwareRenderer is not safe for concurrent use.
type SoftwareRenderer struct {
	// Resources maps scrollbar resource ids to images. Quads whose resource
	// is missing are skipped. It must not change during Render.
	Resources map[quad.ResourceID]image.Image

	opts    rendererOptions
	workers *parallel.WorkerPool
	stats   Stats
}

// NewSoftwareRenderer creates a renderer with no resources. Call Close when
// the renderer was created with more than one raster thread.
func NewSoftwareRenderer(opts ...RendererOption) *SoftwareRenderer {
	r := &SoftwareRenderer{
		Resources: make(map[quad.ResourceID]image.Image),
		opts:      rendererOptions{threads: 1},
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.threads > 1 && r.opts.tileSize > 0 {
		r.workers = parallel.NewWorkerPool(r.opts.threads)
	}
	return r
}

// TileSize returns the tile edge in pixels, or 0 when untiled.
func (r *SoftwareRenderer) TileSize() int { return r.opts.tileSize }

// Close stops the raster threads. The renderer keeps working on the
// caller's goroutine afterwards.
func (r *SoftwareRenderer) Close() {
	if r.workers != nil {
		r.workers.Close()
	}
}

// SetResource registers img under id. A nil image removes the resource.
func (r *SoftwareRenderer) SetResource(id quad.ResourceID, img image.Image) {
	if img == nil {
		delete(r.Resources, id)
		return
	}
	if r.Resources == nil {
		r.Resources = make(map[quad.ResourceID]image.Image)
	}
	r.Resources[id] = img
}

// Stats returns the counters of the last Render call.
func (r *SoftwareRenderer) Stats() Stats { return r.stats }

// Render draws f into target.
func (r *SoftwareRenderer) Render(target RenderTarget, f *frame.Frame, pass PassDescriptor) error {
	if target == nil {
		return ErrNilTarget
	}
	if f == nil || f.Quads == nil {
		return ErrNilFrame
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		return ErrUnsupportedFormat
	}
	pix := target.Pixels()
	if pix == nil {
		return ErrNoPixelAccess
	}
	dst := &image.RGBA{
		Pix:    pix,
		Stride: target.Stride(),
		Rect:   image.Rect(0, 0, target.Width(), target.Height()),
	}

	if pass.LoadOp == gputypes.LoadOpClear {
		fill(dst, dst.Rect, pass.clearColor())
	}

	r.stats = Stats{}
	output := dst.Rect.Intersect(pixelRect(f.OutputRect))
	var ops []drawOp
	for q := range f.Quads.BackToFront() {
		state := f.State(q)
		clip := output
		if state.IsClipped {
			clip = clip.Intersect(pixelRect(state.ClipRect))
		}
		if clip.Empty() || state.Opacity <= 0 {
			r.stats.QuadsClipped++
			continue
		}

		switch q := q.(type) {
		case *quad.SolidColorQuad, *quad.DebugBorderQuad:
		case *quad.ScrollbarQuad:
			if _, ok := r.Resources[q.ResourceID]; !ok {
				r.stats.MissingResources++
				compositor.Logger().Warn("render: missing resource", "resource", q.ResourceID)
				continue
			}
		default:
			continue
		}
		ops = append(ops, drawOp{q: q, state: state, clip: clip})
		r.stats.QuadsDrawn++
	}

	tiles := tileRects(output, r.opts.tileSize)
	if r.workers != nil && len(tiles) > 1 {
		r.workers.ForEach(len(tiles), func(i int) {
			r.drawTile(dst, ops, tiles[i])
		})
	} else {
		for _, tile := range tiles {
			r.drawTile(dst, ops, tile)
		}
	}

	compositor.Logger().Debug("render: frame drawn",
		"frame", f.ID,
		"tiles", len(tiles),
		"drawn", r.stats.QuadsDrawn,
		"clipped", r.stats.QuadsClipped,
		"missingResources", r.stats.MissingResources)
	return nil
}

// drawOp is a quad that survived clipping, with its pixel clip.
type drawOp struct {
	q     quad.DrawQuad
	state *quad.SharedQuadState
	clip  image.Rectangle
}

// drawTile draws every op, back to front, restricted to tile.
func (r *SoftwareRenderer) drawTile(dst *image.RGBA, ops []drawOp, tile image.Rectangle) {
	for _, op := range ops {
		clip := op.clip.Intersect(tile)
		if clip.Empty() {
			continue
		}
		sub := dst.SubImage(clip).(*image.RGBA)
		switch q := op.q.(type) {
		case *quad.SolidColorQuad:
			r.drawSolid(sub, op.state, q.VisibleRect(), q.Color)
		case *quad.DebugBorderQuad:
			r.drawBorder(sub, op.state, q)
		case *quad.ScrollbarQuad:
			r.drawTexture(sub, op.state, q)
		}
	}
}

// tileRects splits r into size x size tiles, row by row. A size of 0 yields
// r itself.
func tileRects(r image.Rectangle, size int) []image.Rectangle {
	if r.Empty() {
		return nil
	}
	if size <= 0 {
		return []image.Rectangle{r}
	}
	tiles := make([]image.Rectangle, 0, ((r.Dx()+size-1)/size)*((r.Dy()+size-1)/size))
	for y := r.Min.Y; y < r.Max.Y; y += size {
		for x := r.Min.X; x < r.Max.X; x += size {
			tiles = append(tiles, image.Rect(x, y, x+size, y+size).Intersect(r))
		}
	}
	return tiles
}

func (r *SoftwareRenderer) drawSolid(dst *image.RGBA, state *quad.SharedQuadState, rect compositor.Rect, c compositor.Color) {
	c = c.ScaleAlpha(state.Opacity)
	if c.IsTransparent() || rect.IsEmpty() {
		return
	}
	op := draw.Over
	if c.IsOpaque() {
		op = draw.Src
	}
	src := image.NewUniform(c)

	if state.Transform.IsAxisAligned() {
		pr := pixelRect(state.Transform.MapRect(rect)).Intersect(dst.Rect)
		draw.Draw(dst, pr, src, image.Point{}, op)
		return
	}
	draw.NearestNeighbor.Transform(dst, aff3(state.Transform), src, enclosing(rect), op, nil)
}

// drawBorder draws the four edges of the quad rect, each Width wide.
func (r *SoftwareRenderer) drawBorder(dst *image.RGBA, state *quad.SharedQuadState, q *quad.DebugBorderQuad) {
	rect := q.Rect()
	w := min(q.Width, rect.Width/2, rect.Height/2)
	edges := [4]compositor.Rect{
		compositor.R(rect.X, rect.Y, rect.Width, w),
		compositor.R(rect.X, rect.Bottom()-w, rect.Width, w),
		compositor.R(rect.X, rect.Y+w, w, rect.Height-2*w),
		compositor.R(rect.Right()-w, rect.Y+w, w, rect.Height-2*w),
	}
	for _, e := range edges {
		r.drawSolid(dst, state, e.Intersect(q.VisibleRect()), q.Color)
	}
}

// drawTexture samples the quad's resource over its UV rect.
func (r *SoftwareRenderer) drawTexture(dst *image.RGBA, state *quad.SharedQuadState, q *quad.ScrollbarQuad) {
	img, ok := r.Resources[q.ResourceID]
	if !ok {
		return
	}

	b := img.Bounds()
	uv := q.UVRect
	sr := pixelRect(compositor.R(
		float64(b.Min.X)+uv.X*float64(b.Dx()),
		float64(b.Min.Y)+uv.Y*float64(b.Dy()),
		uv.Width*float64(b.Dx()),
		uv.Height*float64(b.Dy()),
	)).Intersect(b)
	rect := q.Rect()
	if sr.Empty() || rect.IsEmpty() {
		return
	}

	// Map source pixels onto the quad rect, then into the target.
	sx := rect.Width / float64(sr.Dx())
	sy := rect.Height / float64(sr.Dy())
	m := compositor.Matrix{
		A: sx, C: rect.X - float64(sr.Min.X)*sx,
		E: sy, F: rect.Y - float64(sr.Min.Y)*sy,
	}
	if q.Flipped {
		m.E = -sy
		m.F = rect.Y + float64(sr.Max.Y)*sy
	}
	s2d := state.Transform.Multiply(m)

	visible := pixelRect(state.Transform.MapRect(q.VisibleRect())).Intersect(dst.Rect)
	if visible.Empty() {
		return
	}
	var opts *draw.Options
	if state.Opacity < 1 {
		alpha := uint16(math.Round(state.Opacity * 0xffff))
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha16{A: alpha})}
	}
	draw.BiLinear.Transform(dst.SubImage(visible).(*image.RGBA), aff3(s2d), img, sr, draw.Over, opts)
}

// pixelRect snaps r to whole pixels by rounding each edge.
func pixelRect(r compositor.Rect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.Right())),
		int(math.Round(r.Bottom())),
	)
}

// enclosing returns the smallest pixel rect containing r.
func enclosing(r compositor.Rect) image.Rectangle {
	e := r.Enclosing()
	return image.Rect(int(e.X), int(e.Y), int(e.Right()), int(e.Bottom()))
}

func aff3(m compositor.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
