package quad

import "github.com/gogpu/compositor"

// Material identifies the kind of a DrawQuad.
type Material uint8

// Material constants.
const (
	// MaterialInvalid is the zero Material.
	MaterialInvalid Material = iota

	// MaterialSolidColor fills its rect with one color.
	MaterialSolidColor

	// MaterialDebugBorder outlines its rect.
	MaterialDebugBorder

	// MaterialScrollbarThumb draws the scrollbar thumb texture.
	MaterialScrollbarThumb

	// MaterialScrollbarForeTrack draws the track part after the thumb.
	MaterialScrollbarForeTrack

	// MaterialScrollbarBackTrack draws the whole track, buttons included.
	MaterialScrollbarBackTrack
)

// String returns a human-readable name for the material.
func (m Material) String() string {
	switch m {
	case MaterialSolidColor:
		return "SolidColor"
	case MaterialDebugBorder:
		return "DebugBorder"
	case MaterialScrollbarThumb:
		return "ScrollbarThumb"
	case MaterialScrollbarForeTrack:
		return "ScrollbarForeTrack"
	case MaterialScrollbarBackTrack:
		return "ScrollbarBackTrack"
	default:
		return "Invalid"
	}
}

// IsScrollbar reports whether m is one of the scrollbar materials.
func (m Material) IsScrollbar() bool {
	return m >= MaterialScrollbarThumb && m <= MaterialScrollbarBackTrack
}

// DrawQuad is one drawable rectangular primitive.
//
// Every variant embeds Base, which carries the rect and the handle of the
// owning SharedQuadState.
type DrawQuad interface {
	// Material returns the variant tag.
	Material() Material

	// Rect is the quad rect in content space.
	Rect() compositor.Rect

	// OpaqueRect is the part of Rect known to be fully opaque.
	OpaqueRect() compositor.Rect

	// VisibleRect is the part of Rect left after occlusion culling.
	VisibleRect() compositor.Rect

	// SharedState is the handle bound when the quad was appended.
	SharedState() StateHandle

	// Bind records the shared state and visible rect. Called by sinks.
	Bind(h StateHandle, visible compositor.Rect)
}

// Base holds the fields common to every quad variant.
type Base struct {
	rect       compositor.Rect
	opaqueRect compositor.Rect
	visible    compositor.Rect
	state      StateHandle
}

// NewBase creates the common quad fields. The visible rect starts as rect.
func NewBase(rect, opaqueRect compositor.Rect) Base {
	return Base{rect: rect, opaqueRect: opaqueRect, visible: rect}
}

// Rect implements DrawQuad.
func (b *Base) Rect() compositor.Rect { return b.rect }

// OpaqueRect implements DrawQuad.
func (b *Base) OpaqueRect() compositor.Rect { return b.opaqueRect }

// VisibleRect implements DrawQuad.
func (b *Base) VisibleRect() compositor.Rect { return b.visible }

// SharedState implements DrawQuad.
func (b *Base) SharedState() StateHandle { return b.state }

// Bind implements DrawQuad.
func (b *Base) Bind(h StateHandle, visible compositor.Rect) {
	b.state = h
	b.visible = visible
}

// SolidColorQuad fills its rect with Color.
type SolidColorQuad struct {
	Base
	Color compositor.Color
}

// NewSolidColorQuad creates a solid color quad. The quad is opaque where the
// color is.
func NewSolidColorQuad(rect compositor.Rect, c compositor.Color) *SolidColorQuad {
	var opaque compositor.Rect
	if c.IsOpaque() {
		opaque = rect
	}
	return &SolidColorQuad{Base: NewBase(rect, opaque), Color: c}
}

// Material implements DrawQuad.
func (q *SolidColorQuad) Material() Material { return MaterialSolidColor }

// DebugBorderQuad outlines its rect with a line of Width pixels.
type DebugBorderQuad struct {
	Base
	Color compositor.Color
	Width float64
}

// NewDebugBorderQuad creates a debug border quad. Borders are never opaque.
func NewDebugBorderQuad(rect compositor.Rect, c compositor.Color, width float64) *DebugBorderQuad {
	return &DebugBorderQuad{Base: NewBase(rect, compositor.Rect{}), Color: c, Width: width}
}

// Material implements DrawQuad.
func (q *DebugBorderQuad) Material() Material { return MaterialDebugBorder }

// ResourceID names a texture owned by the embedder. 0 means no resource.
type ResourceID uint32

// ScrollbarPart selects which part of a scrollbar a quad draws.
type ScrollbarPart uint8

// Scrollbar parts.
const (
	PartThumb ScrollbarPart = iota
	PartForeTrack
	PartBackTrack
)

// String returns a human-readable name for the part.
func (p ScrollbarPart) String() string {
	switch p {
	case PartThumb:
		return "Thumb"
	case PartForeTrack:
		return "ForeTrack"
	case PartBackTrack:
		return "BackTrack"
	default:
		return "Unknown"
	}
}

// ScrollbarQuad draws one part of a scrollbar from a texture resource.
type ScrollbarQuad struct {
	Base
	Part       ScrollbarPart
	ResourceID ResourceID

	// UVRect selects the texture region in normalized coordinates.
	UVRect compositor.Rect

	Premultiplied bool
	Flipped       bool
}

// NewScrollbarQuad creates a scrollbar texture quad.
func NewScrollbarQuad(part ScrollbarPart, rect, opaqueRect compositor.Rect, id ResourceID, uv compositor.Rect) *ScrollbarQuad {
	return &ScrollbarQuad{
		Base:       NewBase(rect, opaqueRect),
		Part:       part,
		ResourceID: id,
		UVRect:     uv,
	}
}

// Material implements DrawQuad.
func (q *ScrollbarQuad) Material() Material {
	switch q.Part {
	case PartThumb:
		return MaterialScrollbarThumb
	case PartForeTrack:
		return MaterialScrollbarForeTrack
	default:
		return MaterialScrollbarBackTrack
	}
}

var (
	_ DrawQuad = (*SolidColorQuad)(nil)
	_ DrawQuad = (*DebugBorderQuad)(nil)
	_ DrawQuad = (*ScrollbarQuad)(nil)
)
