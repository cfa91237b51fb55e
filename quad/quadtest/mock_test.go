package quadtest

import (
	"math"
	"testing"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/quad"
)

func TestMockCullerPrivateStorage(t *testing.T) {
	m := NewMockCuller()
	h := m.Allocate(quad.SharedQuadState{LayerID: 3, Opacity: 1})

	if !m.Append(quad.NewSolidColorQuad(compositor.R(0, 0, 5, 5), compositor.Red), h) {
		t.Error("Append(non-empty) = false")
	}
	if m.Append(quad.NewSolidColorQuad(compositor.R(0, 0, 0, 5), compositor.Red), h) {
		t.Error("Append(empty) = true")
	}
	if m.QuadList().Len() != 1 {
		t.Errorf("QuadList().Len() = %d, want 1", m.QuadList().Len())
	}
	if m.StateStore().Len() != 1 {
		t.Errorf("StateStore().Len() = %d, want 1", m.StateStore().Len())
	}
	if m.Appended != 2 {
		t.Errorf("Appended = %d, want 2", m.Appended)
	}
}

func TestMockCullerExternalStorageReflectsAppendsImmediately(t *testing.T) {
	list := quad.NewList()
	store := quad.NewStore()
	m := NewMockCullerWithStorage(list, store)

	h := m.Allocate(quad.SharedQuadState{LayerID: 9})
	if store.Len() != 1 {
		t.Fatalf("external store Len() = %d right after Allocate, want 1", store.Len())
	}

	for i := range 3 {
		q := quad.NewSolidColorQuad(compositor.R(float64(i), 0, 1, 1), compositor.Red)
		m.Append(q, h)
		if list.Len() != i+1 {
			t.Fatalf("external list Len() = %d after append %d, want %d", list.Len(), i, i+1)
		}
		if list.At(i) != q {
			t.Errorf("external list At(%d) is not the appended quad", i)
		}
	}
}

func TestMockCullerMatchesCuller(t *testing.T) {
	rects := []compositor.Rect{
		compositor.R(0, 0, 10, 10),
		compositor.R(0, 0, 0, 10),
		compositor.R(3, 3, 1, 1),
		compositor.R(3, 3, 1, -1),
		compositor.R(-5, -5, 2, 2),
		compositor.R(0, 0, math.NaN(), 10),
	}

	private := NewMockCuller()
	external := NewMockCullerWithStorage(quad.NewList(), quad.NewStore())
	prod := quad.NewCuller(quad.NewStore(), quad.NewList())

	sinks := []quad.Sink{private, external, prod}
	results := make([][]bool, len(sinks))
	for i, s := range sinks {
		h := s.Allocate(quad.SharedQuadState{Transform: compositor.Identity(), Opacity: 1})
		for _, r := range rects {
			results[i] = append(results[i], s.Append(quad.NewSolidColorQuad(r, compositor.Red), h))
		}
	}

	if results[0][len(rects)-1] {
		t.Error("Append(NaN width) = true, want false")
	}
	for i := 1; i < len(sinks); i++ {
		for j := range rects {
			if results[i][j] != results[0][j] {
				t.Errorf("sink %d Append(%+v) = %v, sink 0 = %v", i, rects[j], results[i][j], results[0][j])
			}
		}
	}
}

func TestMockCullerSwapBackings(t *testing.T) {
	m := NewMockCuller()
	h1 := m.Allocate(quad.SharedQuadState{})
	m.Append(quad.NewSolidColorQuad(compositor.R(0, 0, 1, 1), compositor.Red), h1)

	// Swapping only the quad backing keeps handles valid.
	seeded := quad.NewList()
	seeded.Append(quad.NewSolidColorQuad(compositor.R(9, 9, 1, 1), compositor.Blue))
	m.SetQuadList(seeded)
	m.Append(quad.NewSolidColorQuad(compositor.R(1, 1, 1, 1), compositor.Red), h1)
	if seeded.Len() != 2 {
		t.Errorf("seeded list Len() = %d, want 2", seeded.Len())
	}

	// Swapping the state backing makes earlier handles foreign.
	m.SetStateStore(quad.NewStore())
	defer func() {
		if recover() == nil {
			t.Error("Append() with a handle from the swapped-out store did not panic")
		}
	}()
	m.Append(quad.NewSolidColorQuad(compositor.R(2, 2, 1, 1), compositor.Red), h1)
}
