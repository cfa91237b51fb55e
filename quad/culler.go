package quad

import "github.com/gogpu/compositor"

// Occluder narrows a quad rect to the part not hidden by content in front
// of it. Implementations return an empty rect when the quad is fully hidden.
type Occluder interface {
	UnoccludedRect(rect compositor.Rect, state *SharedQuadState) compositor.Rect
}

// OccluderFunc adapts a function to the Occluder interface.
type OccluderFunc func(rect compositor.Rect, state *SharedQuadState) compositor.Rect

// UnoccludedRect implements Occluder.
func (f OccluderFunc) UnoccludedRect(rect compositor.Rect, state *SharedQuadState) compositor.Rect {
	return f(rect, state)
}

// Culler is the production Sink. It writes into a Store and a List owned by
// the caller for the duration of one frame.
//
// Without an Occluder the only culling policy is geometric emptiness.
type Culler struct {
	store    *Store
	list     *List
	occluder Occluder
	metrics  *OverdrawMetrics
}

// NewCuller creates a culler writing into store and list.
func NewCuller(store *Store, list *List) *Culler {
	return &Culler{store: store, list: list}
}

// SetOccluder installs an occlusion test. nil disables occlusion culling.
func (c *Culler) SetOccluder(o Occluder) { c.occluder = o }

// SetMetrics installs overdraw metrics. nil disables recording.
func (c *Culler) SetMetrics(m *OverdrawMetrics) { c.metrics = m }

// Metrics returns the installed overdraw metrics, or nil.
func (c *Culler) Metrics() *OverdrawMetrics { return c.metrics }

// Store returns the shared quad state store the culler writes into.
func (c *Culler) Store() *Store { return c.store }

// List returns the quad list the culler writes into.
func (c *Culler) List() *List { return c.list }

// Allocate implements Sink.
func (c *Culler) Allocate(state SharedQuadState) StateHandle {
	return c.store.Allocate(state)
}

// Append implements Sink. h must come from Allocate on this culler's store
// in the current frame; anything else panics.
func (c *Culler) Append(q DrawQuad, h StateHandle) bool {
	state := c.store.State(h)
	rect := q.Rect()
	if rect.IsEmpty() {
		return false
	}

	visible := rect
	if c.occluder != nil {
		visible = c.occluder.UnoccludedRect(rect, state).Intersect(rect)
		c.metrics.DidCullForDrawing(state.Transform, rect, visible)
		if visible.IsEmpty() {
			return false
		}
	}

	q.Bind(h, visible)
	c.list.Append(q)
	c.metrics.DidDraw(state.Transform, visible, q.OpaqueRect())
	return true
}

var _ Sink = (*Culler)(nil)

// ClipOccluder culls quads against the clip rect of their shared state.
// It is the occluder used when no occlusion tracker is available.
type ClipOccluder struct{}

// UnoccludedRect implements Occluder. Only axis-aligned transforms are
// narrowed; other transforms keep the full rect.
func (ClipOccluder) UnoccludedRect(rect compositor.Rect, state *SharedQuadState) compositor.Rect {
	if !state.IsClipped || !state.Transform.IsAxisAligned() {
		return rect
	}
	inv, ok := state.Transform.Invert()
	if !ok {
		return compositor.Rect{}
	}
	return inv.MapRect(state.ClipRect).Intersect(rect)
}
