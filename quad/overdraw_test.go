package quad

import (
	"testing"

	"github.com/gogpu/compositor"
)

func TestOverdrawMetricsDisabled(t *testing.T) {
	m := NewOverdrawMetrics(false)
	m.DidDraw(compositor.Identity(), compositor.R(0, 0, 10, 10), compositor.R(0, 0, 10, 10))
	m.DidCullForDrawing(compositor.Identity(), compositor.R(0, 0, 10, 10), compositor.Rect{})
	if m.PixelsDrawnOpaque != 0 || m.PixelsCulledForDrawing != 0 || m.QuadsCulled != 0 {
		t.Errorf("disabled metrics recorded %+v", m)
	}

	var nilMetrics *OverdrawMetrics
	nilMetrics.DidDraw(compositor.Identity(), compositor.R(0, 0, 1, 1), compositor.Rect{})
	if nilMetrics.Enabled() {
		t.Error("nil metrics Enabled() = true")
	}
}

func TestOverdrawMetricsDidDraw(t *testing.T) {
	m := NewOverdrawMetrics(true)
	// Scaled by 2: a 10x10 rect covers 400 target pixels, 4x10 of it opaque.
	m.DidDraw(compositor.Scale(2, 2), compositor.R(0, 0, 10, 10), compositor.R(0, 0, 4, 10))
	if m.PixelsDrawnOpaque != 160 {
		t.Errorf("PixelsDrawnOpaque = %v, want 160", m.PixelsDrawnOpaque)
	}
	if m.PixelsDrawnTranslucent != 240 {
		t.Errorf("PixelsDrawnTranslucent = %v, want 240", m.PixelsDrawnTranslucent)
	}
}

func TestOverdrawMetricsMergeAndReset(t *testing.T) {
	a := NewOverdrawMetrics(true)
	b := NewOverdrawMetrics(true)
	a.DidDraw(compositor.Identity(), compositor.R(0, 0, 10, 10), compositor.R(0, 0, 10, 10))
	b.DidDraw(compositor.Identity(), compositor.R(0, 0, 5, 5), compositor.Rect{})
	b.DidCullForDrawing(compositor.Identity(), compositor.R(0, 0, 2, 2), compositor.Rect{})

	a.Merge(b)
	if a.PixelsDrawnOpaque != 100 || a.PixelsDrawnTranslucent != 25 || a.PixelsCulledForDrawing != 4 || a.QuadsCulled != 1 {
		t.Errorf("Merge() = %+v", a)
	}

	a.Reset()
	if !a.Enabled() {
		t.Error("Reset() cleared the enabled flag")
	}
	if a.PixelsDrawnOpaque != 0 || a.QuadsCulled != 0 {
		t.Errorf("Reset() left %+v", a)
	}
}
