package compositor

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale then translate: translate is applied last.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	got := m.TransformPoint(Pt(1, 1))
	if want := Pt(12, 23); got != want {
		t.Errorf("TransformPoint() = %+v, want %+v", got, want)
	}
}

func TestMatrixPredicates(t *testing.T) {
	tests := []struct {
		name        string
		m           Matrix
		identity    bool
		translation bool
		axisAligned bool
	}{
		{"identity", Identity(), true, true, true},
		{"translate", Translate(3, 4), false, true, true},
		{"scale", Scale(2, 2), false, false, true},
		{"rotate 90", Rotate(math.Pi / 2), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslation(); got != tt.translation {
				t.Errorf("IsTranslation() = %v, want %v", got, tt.translation)
			}
			if got := tt.m.IsAxisAligned(); got != tt.axisAligned {
				t.Errorf("IsAxisAligned() = %v, want %v", got, tt.axisAligned)
			}
		})
	}
}

func TestMatrixMapRect(t *testing.T) {
	got := Translate(5, 5).Multiply(Scale(2, 2)).MapRect(R(0, 0, 10, 10))
	if want := R(5, 5, 20, 20); got != want {
		t.Errorf("MapRect() = %+v, want %+v", got, want)
	}
	if got := Scale(2, 2).MapRect(Rect{}); got != (Rect{}) {
		t.Errorf("MapRect(empty) = %+v, want zero", got)
	}
}

func TestMatrixMappedArea(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		r    Rect
		want float64
	}{
		{"identity", Identity(), R(0, 0, 10, 10), 100},
		{"scale", Scale(2, 3), R(0, 0, 10, 10), 600},
		{"rotation preserves area", Rotate(math.Pi / 4), R(0, 0, 10, 10), 100},
		{"empty", Identity(), R(0, 0, 0, 10), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MappedArea(tt.r); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MappedArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(10, -4).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported a singular matrix")
	}
	p := Pt(3, 7)
	got := inv.TransformPoint(m.TransformPoint(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("inv(m(p)) = %+v, want %+v", got, p)
	}
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() of a singular matrix reported ok")
	}
}
