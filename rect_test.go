package compositor

import (
	"math"
	"testing"
)

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"zero width", R(10, 10, 0, 5), true},
		{"zero height", R(10, 10, 5, 0), true},
		{"negative width", R(0, 0, -1, 5), true},
		{"negative height", R(0, 0, 5, -1), true},
		{"NaN width", R(0, 0, math.NaN(), 5), true},
		{"NaN height", R(0, 0, 5, math.NaN()), true},
		{"unit", R(0, 0, 1, 1), false},
		{"fractional", R(0, 0, 0.25, 0.5), false},
		{"offset", R(-10, -10, 3, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("%+v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", R(0, 0, 10, 10), R(5, 5, 10, 10), R(5, 5, 5, 5)},
		{"contained", R(0, 0, 10, 10), R(2, 3, 4, 5), R(2, 3, 4, 5)},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 5, 5), Rect{}},
		{"touching edge", R(0, 0, 10, 10), R(10, 0, 5, 5), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	got := R(0, 0, 10, 10).Union(R(5, 5, 10, 10))
	if want := R(0, 0, 15, 15); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := (Rect{}).Union(R(1, 2, 3, 4)); got != R(1, 2, 3, 4) {
		t.Errorf("empty.Union() = %+v, want %+v", got, R(1, 2, 3, 4))
	}
	if got := R(1, 2, 3, 4).Union(Rect{}); got != R(1, 2, 3, 4) {
		t.Errorf("Union(empty) = %+v, want %+v", got, R(1, 2, 3, 4))
	}
}

func TestRectContains(t *testing.T) {
	r := R(0, 0, 10, 10)
	if !r.Contains(Pt(0, 0)) {
		t.Error("origin should be contained")
	}
	if r.Contains(Pt(10, 5)) {
		t.Error("right edge should be exclusive")
	}
	if !r.ContainsRect(R(1, 1, 8, 8)) {
		t.Error("inner rect should be contained")
	}
	if r.ContainsRect(R(5, 5, 10, 10)) {
		t.Error("overlapping rect should not be contained")
	}
	if !r.ContainsRect(Rect{}) {
		t.Error("empty rect should be contained")
	}
}

func TestRectEnclosing(t *testing.T) {
	got := R(0.5, 1.25, 2, 2).Enclosing()
	if want := R(0, 1, 3, 3); got != want {
		t.Errorf("Enclosing() = %+v, want %+v", got, want)
	}
}

func TestSizeArea(t *testing.T) {
	if got := Sz(3, 4).Area(); got != 12 {
		t.Errorf("Area() = %v, want 12", got)
	}
	if got := Sz(-3, 4).Area(); got != 0 {
		t.Errorf("negative Area() = %v, want 0", got)
	}
	if !Sz(math.NaN(), 4).IsEmpty() {
		t.Error("Sz(NaN, 4).IsEmpty() = false, want true")
	}
}
