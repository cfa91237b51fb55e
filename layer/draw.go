package layer

import (
	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/quad"
)

// DrawProperties are the per-frame values computed for a layer from its
// ancestors.
type DrawProperties struct {
	// Transform maps layer content space to the target.
	Transform compositor.Matrix

	// Opacity is the product of the layer's and its ancestors' opacities,
	// clamped to [0, 1].
	Opacity float64

	// ClipRect is in target space. It is the intersection of the viewport
	// with the bounds of every ancestor that masks to bounds.
	ClipRect  compositor.Rect
	IsClipped bool

	// VisibleContentRect is the part of the layer bounds that survives the
	// clip, in content space.
	VisibleContentRect compositor.Rect
}

// SharedQuadState returns the shared quad state for a layer with these
// properties.
func (p DrawProperties) SharedQuadState(layerID int) quad.SharedQuadState {
	return quad.SharedQuadState{
		Transform:          p.Transform,
		VisibleContentRect: p.VisibleContentRect,
		ClipRect:           p.ClipRect,
		IsClipped:          p.IsClipped,
		Opacity:            p.Opacity,
		LayerID:            layerID,
	}
}

// AppendParams is the input of Drawable.AppendQuads.
type AppendParams struct {
	DrawProperties

	// ShowDebugBorders adds an outline quad for every layer.
	ShowDebugBorders bool
}

// Drawable is a snapshot of a layer that appends its quads for one frame.
// It never reads the layer after creation, so layers may be mutated while a
// frame is being assembled.
type Drawable interface {
	LayerID() int
	AppendQuads(sink quad.Sink, p AppendParams, data *quad.AppendData)
}

// DrawEntry pairs a drawing layer with its computed properties.
type DrawEntry struct {
	Node  Node
	Props DrawProperties
}

// DrawList computes draw properties for the tree under root and returns the
// layers that produce quads, front-most first.
//
// deviceTransform maps the root's parent space to the target and viewport
// is the target-space output rect every layer is clipped to. Layers with
// DrawsContent unset, empty bounds or a zero draw opacity are left out.
// Descendants of a zero-opacity layer are left out too.
func DrawList(root Node, deviceTransform compositor.Matrix, viewport compositor.Rect) []DrawEntry {
	if root == nil {
		return nil
	}
	var out []DrawEntry
	collect(root, deviceTransform, 1, viewport, &out)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// collect appends entries in paint order.
func collect(n Node, parentTransform compositor.Matrix, parentOpacity float64, clip compositor.Rect, out *[]DrawEntry) {
	l := n.Base()
	opacity := parentOpacity * min(max(l.opacity, 0), 1)
	if opacity <= 0 {
		return
	}
	transform := parentTransform.
		Multiply(compositor.Translate(l.position.X, l.position.Y)).
		Multiply(l.transform)
	bounds := compositor.RectFromSize(l.bounds)

	if l.drawsContent && !bounds.IsEmpty() {
		props := DrawProperties{
			Transform:          transform,
			Opacity:            opacity,
			ClipRect:           clip,
			IsClipped:          true,
			VisibleContentRect: visibleContentRect(transform, bounds, clip),
		}
		*out = append(*out, DrawEntry{Node: n, Props: props})
	}

	childClip := clip
	if l.masksToBounds {
		childClip = clip.Intersect(transform.MapRect(bounds))
	}
	childTransform := transform.Multiply(compositor.Translate(-l.scrollOffset.X, -l.scrollOffset.Y))
	for _, c := range l.children {
		collect(c, childTransform, opacity, childClip, out)
	}
}

func visibleContentRect(transform compositor.Matrix, bounds, clip compositor.Rect) compositor.Rect {
	inv, ok := transform.Invert()
	if !ok {
		return compositor.Rect{}
	}
	return inv.MapRect(clip).Intersect(bounds)
}

// debugBorderWidth is the outline width in content pixels.
const debugBorderWidth = 2

// appendDebugBorder appends an outline of bounds in c when enabled.
func appendDebugBorder(sink quad.Sink, h quad.StateHandle, p AppendParams, bounds compositor.Size, c compositor.Color, data *quad.AppendData) {
	if !p.ShowDebugBorders {
		return
	}
	if !sink.Append(quad.NewDebugBorderQuad(compositor.RectFromSize(bounds), c, debugBorderWidth), h) {
		data.NumCulled++
	}
}
