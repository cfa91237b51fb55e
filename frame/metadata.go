package frame

import (
	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/layer"
)

// Metadata is the per-frame scroll, scale and viewport state handed to the
// embedder with the quad list. It is a value and is never modified after the
// frame is assembled.
type Metadata struct {
	RootScrollOffset compositor.Point `json:"rootScrollOffset"`

	PageScaleFactor    float64 `json:"pageScaleFactor"`
	MinPageScaleFactor float64 `json:"minPageScaleFactor"`
	MaxPageScaleFactor float64 `json:"maxPageScaleFactor"`

	ViewportSize  compositor.Size `json:"viewportSize"`
	RootLayerSize compositor.Size `json:"rootLayerSize"`

	LocationBarOffset             compositor.Point `json:"locationBarOffset"`
	LocationBarContentTranslation compositor.Point `json:"locationBarContentTranslation"`
}

// RootState is the root scroll and scale state a frame is assembled from.
type RootState struct {
	ScrollOffset compositor.Point `toml:"scroll_offset"`

	PageScaleFactor    float64 `toml:"page_scale_factor"`
	MinPageScaleFactor float64 `toml:"min_page_scale_factor"`
	MaxPageScaleFactor float64 `toml:"max_page_scale_factor"`

	ViewportSize  compositor.Size `toml:"viewport_size"`
	RootLayerSize compositor.Size `toml:"root_layer_size"`

	LocationBarOffset             compositor.Point `toml:"location_bar_offset"`
	LocationBarContentTranslation compositor.Point `toml:"location_bar_content_translation"`
}

// RootStateFromLayer reads the scroll offset and size of root, with a page
// scale of 1 and the given viewport size.
func RootStateFromLayer(root layer.Node, viewport compositor.Size) RootState {
	s := RootState{
		PageScaleFactor:    1,
		MinPageScaleFactor: 1,
		MaxPageScaleFactor: 1,
		ViewportSize:       viewport,
	}
	if root != nil {
		s.ScrollOffset = root.Base().ScrollOffset()
		s.RootLayerSize = root.Base().Bounds()
	}
	return s
}

// NewMetadata copies s into a Metadata. The page scale factor is not
// clamped to its limits; see PageScaleInRange.
func NewMetadata(s RootState) Metadata {
	return Metadata{
		RootScrollOffset:              s.ScrollOffset,
		PageScaleFactor:               s.PageScaleFactor,
		MinPageScaleFactor:            s.MinPageScaleFactor,
		MaxPageScaleFactor:            s.MaxPageScaleFactor,
		ViewportSize:                  s.ViewportSize,
		RootLayerSize:                 s.RootLayerSize,
		LocationBarOffset:             s.LocationBarOffset,
		LocationBarContentTranslation: s.LocationBarContentTranslation,
	}
}

// PageScaleInRange reports whether the page scale factor lies within
// [MinPageScaleFactor, MaxPageScaleFactor].
func (m Metadata) PageScaleInRange() bool {
	return m.PageScaleFactor >= m.MinPageScaleFactor && m.PageScaleFactor <= m.MaxPageScaleFactor
}

// deviceTransform maps root layer space to the output: the page scale
// followed by the location bar content translation. A non-positive page
// scale is treated as 1.
func (s RootState) deviceTransform() compositor.Matrix {
	scale := s.PageScaleFactor
	if scale <= 0 {
		scale = 1
	}
	t := s.LocationBarContentTranslation
	return compositor.Translate(t.X, t.Y).Multiply(compositor.Scale(scale, scale))
}
