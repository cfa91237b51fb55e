package quad

import "github.com/gogpu/compositor"

// OverdrawMetrics accumulates how many target pixels a frame drew and how
// many were culled. Areas are measured after mapping by the quad transform.
// A disabled OverdrawMetrics records nothing.
type OverdrawMetrics struct {
	enabled bool

	PixelsDrawnOpaque      float64
	PixelsDrawnTranslucent float64
	PixelsCulledForDrawing float64
	QuadsCulled            int
}

// NewOverdrawMetrics creates metrics that record only when enabled is true.
func NewOverdrawMetrics(enabled bool) *OverdrawMetrics {
	return &OverdrawMetrics{enabled: enabled}
}

// Enabled reports whether the metrics record anything.
func (m *OverdrawMetrics) Enabled() bool { return m != nil && m.enabled }

// DidCullForDrawing records the area removed between before and after.
func (m *OverdrawMetrics) DidCullForDrawing(transform compositor.Matrix, before, after compositor.Rect) {
	if !m.Enabled() {
		return
	}
	m.PixelsCulledForDrawing += transform.MappedArea(before) - transform.MappedArea(after)
	if after.IsEmpty() {
		m.QuadsCulled++
	}
}

// DidDraw records the drawn area, split into opaque and translucent parts.
func (m *OverdrawMetrics) DidDraw(transform compositor.Matrix, drawn, opaque compositor.Rect) {
	if !m.Enabled() {
		return
	}
	area := transform.MappedArea(drawn)
	opaqueArea := transform.MappedArea(opaque.Intersect(drawn))
	m.PixelsDrawnOpaque += opaqueArea
	m.PixelsDrawnTranslucent += area - opaqueArea
}

// Merge adds the counters of o into m.
func (m *OverdrawMetrics) Merge(o *OverdrawMetrics) {
	if !m.Enabled() || o == nil {
		return
	}
	m.PixelsDrawnOpaque += o.PixelsDrawnOpaque
	m.PixelsDrawnTranslucent += o.PixelsDrawnTranslucent
	m.PixelsCulledForDrawing += o.PixelsCulledForDrawing
	m.QuadsCulled += o.QuadsCulled
}

// Reset zeroes the counters, keeping the enabled flag.
func (m *OverdrawMetrics) Reset() {
	*m = OverdrawMetrics{enabled: m.enabled}
}
