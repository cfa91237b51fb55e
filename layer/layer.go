package layer

import (
	"sync/atomic"

	"github.com/gogpu/compositor"
)

// Kind tags a layer variant.
type Kind uint8

// Kind constants.
const (
	// KindContainer groups children and draws nothing itself.
	KindContainer Kind = iota

	// KindSolidColor fills its bounds with its background color.
	KindSolidColor

	// KindScrollbar draws a scrollbar from texture resources.
	KindScrollbar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "Container"
	case KindSolidColor:
		return "SolidColor"
	case KindScrollbar:
		return "Scrollbar"
	default:
		return "Unknown"
	}
}

// Host receives invalidation requests from layers attached to it.
type Host interface {
	// SetNeedsCommit requests that layer properties be pushed to the next frame.
	SetNeedsCommit()

	// SetNeedsFullTreeSync requests a rebuild of the tree structure.
	SetNeedsFullTreeSync()
}

// Node is implemented by every layer variant.
type Node interface {
	// Base returns the embedded base layer.
	Base() *Layer

	// Kind returns the variant tag.
	Kind() Kind

	// CreateDrawable snapshots the layer for one frame. Layers that draw
	// nothing return nil.
	CreateDrawable() Drawable
}

// nextLayerID hands out layer ids, starting at 1.
var nextLayerID atomic.Int64

// Layer is the base of every layer variant. It owns the properties common
// to all kinds and the tree links.
//
// Setters return early when the value does not change; otherwise they ask
// the host for a commit. Layers are not safe for concurrent use.
type Layer struct {
	id    int
	kind  Kind
	owner Node

	parent   *Layer
	children []Node
	host     Host

	bounds          compositor.Size
	position        compositor.Point
	transform       compositor.Matrix
	opacity         float64
	backgroundColor compositor.Color
	contentsOpaque  bool
	drawsContent    bool
	masksToBounds   bool
	scrollOffset    compositor.Point
	maxScrollOffset compositor.Point
	needsDisplay    bool
}

// init prepares the base for the variant that embeds it.
func (l *Layer) init(owner Node, kind Kind) {
	l.id = int(nextLayerID.Add(1))
	l.kind = kind
	l.owner = owner
	l.transform = compositor.Identity()
	l.opacity = 1
}

// ID returns the unique layer id.
func (l *Layer) ID() int { return l.id }

// Base implements Node.
func (l *Layer) Base() *Layer { return l }

// Kind implements Node.
func (l *Layer) Kind() Kind { return l.kind }

// Node returns the variant embedding this base.
func (l *Layer) Node() Node { return l.owner }

// Host returns the host the layer is attached to, or nil.
func (l *Layer) Host() Host { return l.host }

// SetHost attaches the layer and its subtree to h.
func (l *Layer) SetHost(h Host) {
	if l.host == h {
		return
	}
	l.host = h
	for _, c := range l.children {
		c.Base().SetHost(h)
	}
}

func (l *Layer) setNeedsCommit() {
	if l.host != nil {
		l.host.SetNeedsCommit()
	}
}

func (l *Layer) setNeedsFullTreeSync() {
	if l.host != nil {
		l.host.SetNeedsFullTreeSync()
	}
}

// Bounds returns the layer size in content space.
func (l *Layer) Bounds() compositor.Size { return l.bounds }

// SetBounds sets the layer size.
func (l *Layer) SetBounds(s compositor.Size) {
	if l.bounds == s {
		return
	}
	l.bounds = s
	l.SetNeedsDisplay()
}

// Position returns the layer origin in its parent's space.
func (l *Layer) Position() compositor.Point { return l.position }

// SetPosition sets the layer origin in its parent's space.
func (l *Layer) SetPosition(p compositor.Point) {
	if l.position == p {
		return
	}
	l.position = p
	l.setNeedsCommit()
}

// Transform returns the layer transform, applied after Position.
func (l *Layer) Transform() compositor.Matrix { return l.transform }

// SetTransform sets the layer transform.
func (l *Layer) SetTransform(m compositor.Matrix) {
	if l.transform == m {
		return
	}
	l.transform = m
	l.setNeedsCommit()
}

// Opacity returns the layer opacity.
func (l *Layer) Opacity() float64 { return l.opacity }

// SetOpacity sets the layer opacity. Values outside [0, 1] are clamped when
// drawn.
func (l *Layer) SetOpacity(opacity float64) {
	if l.opacity == opacity {
		return
	}
	l.opacity = opacity
	l.setNeedsCommit()
}

// BackgroundColor returns the background color.
func (l *Layer) BackgroundColor() compositor.Color { return l.backgroundColor }

// SetBackgroundColor sets the background color. For a solid color layer
// ContentsOpaque follows the alpha of c; other kinds keep their flag.
func (l *Layer) SetBackgroundColor(c compositor.Color) {
	if l.kind == KindSolidColor {
		l.setContentsOpaque(c.IsOpaque())
	}
	if l.backgroundColor == c {
		return
	}
	l.backgroundColor = c
	l.setNeedsCommit()
}

// ContentsOpaque reports whether the layer promises to paint every pixel of
// its bounds opaquely.
func (l *Layer) ContentsOpaque() bool { return l.contentsOpaque }

// SetContentsOpaque sets the opaque-contents flag. Solid color layers derive
// the flag from their background color, so the call is ignored for them.
func (l *Layer) SetContentsOpaque(opaque bool) {
	if l.kind == KindSolidColor {
		return
	}
	l.setContentsOpaque(opaque)
}

func (l *Layer) setContentsOpaque(opaque bool) {
	if l.contentsOpaque == opaque {
		return
	}
	l.contentsOpaque = opaque
	l.SetNeedsDisplay()
}

// DrawsContent reports whether the layer produces quads.
func (l *Layer) DrawsContent() bool { return l.drawsContent }

// SetDrawsContent enables or disables quad production.
func (l *Layer) SetDrawsContent(draws bool) {
	if l.drawsContent == draws {
		return
	}
	l.drawsContent = draws
	l.setNeedsCommit()
}

// MasksToBounds reports whether descendants are clipped to the bounds.
func (l *Layer) MasksToBounds() bool { return l.masksToBounds }

// SetMasksToBounds enables or disables clipping of descendants.
func (l *Layer) SetMasksToBounds(masks bool) {
	if l.masksToBounds == masks {
		return
	}
	l.masksToBounds = masks
	l.setNeedsCommit()
}

// ScrollOffset returns how far the layer's children are scrolled.
func (l *Layer) ScrollOffset() compositor.Point { return l.scrollOffset }

// SetScrollOffset scrolls the layer's children. The offset is clamped to
// [0, MaxScrollOffset].
func (l *Layer) SetScrollOffset(p compositor.Point) {
	p.X = min(max(p.X, 0), l.maxScrollOffset.X)
	p.Y = min(max(p.Y, 0), l.maxScrollOffset.Y)
	if l.scrollOffset == p {
		return
	}
	l.scrollOffset = p
	l.setNeedsCommit()
}

// MaxScrollOffset returns the largest allowed scroll offset.
func (l *Layer) MaxScrollOffset() compositor.Point { return l.maxScrollOffset }

// SetMaxScrollOffset sets the largest allowed scroll offset. A zero value
// makes the layer unscrollable.
func (l *Layer) SetMaxScrollOffset(p compositor.Point) {
	p.X = max(p.X, 0)
	p.Y = max(p.Y, 0)
	if l.maxScrollOffset == p {
		return
	}
	l.maxScrollOffset = p
	l.SetScrollOffset(l.scrollOffset)
	l.setNeedsCommit()
}

// Scrollable reports whether the layer can scroll in either direction.
func (l *Layer) Scrollable() bool {
	return l.maxScrollOffset.X > 0 || l.maxScrollOffset.Y > 0
}

// NeedsDisplay reports whether the layer contents must be repainted.
func (l *Layer) NeedsDisplay() bool { return l.needsDisplay }

// SetNeedsDisplay marks the whole layer for repaint.
func (l *Layer) SetNeedsDisplay() {
	l.needsDisplay = true
	l.setNeedsCommit()
}

// ClearNeedsDisplay is called once the layer contents have been drawn.
func (l *Layer) ClearNeedsDisplay() { l.needsDisplay = false }
