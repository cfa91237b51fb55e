// Package quadtest provides a quad.Sink test double.
package quadtest

import "github.com/gogpu/compositor/quad"

// MockCuller is a quad.Sink that writes straight into two independently
// swappable backing sequences: a quad list and a shared quad state store.
// Tests use it to pre-seed or inspect what a drawable appends.
//
// The mock culls exactly like quad.Culler without an occluder: quads with an
// empty rect are rejected.
type MockCuller struct {
	list  *quad.List
	store *quad.Store

	// Appended counts every Append call, culled or not.
	Appended int
}

// NewMockCuller creates a mock culler with private storage.
func NewMockCuller() *MockCuller {
	return &MockCuller{list: quad.NewList(), store: quad.NewStore()}
}

// NewMockCullerWithStorage creates a mock culler bound to caller-owned
// storage. Appends are visible in list and store immediately.
func NewMockCullerWithStorage(list *quad.List, store *quad.Store) *MockCuller {
	return &MockCuller{list: list, store: store}
}

// QuadList returns the current quad backing.
func (m *MockCuller) QuadList() *quad.List { return m.list }

// StateStore returns the current shared quad state backing.
func (m *MockCuller) StateStore() *quad.Store { return m.store }

// SetQuadList swaps the quad backing.
func (m *MockCuller) SetQuadList(l *quad.List) { m.list = l }

// SetStateStore swaps the shared quad state backing. Handles from the
// previous store are foreign to the new one.
func (m *MockCuller) SetStateStore(s *quad.Store) { m.store = s }

// Allocate implements quad.Sink.
func (m *MockCuller) Allocate(state quad.SharedQuadState) quad.StateHandle {
	return m.store.Allocate(state)
}

// Append implements quad.Sink.
func (m *MockCuller) Append(q quad.DrawQuad, h quad.StateHandle) bool {
	m.Appended++
	m.store.MustValidate(h)
	if q.Rect().IsEmpty() {
		return false
	}
	q.Bind(h, q.Rect())
	return m.list.Append(q)
}

var _ quad.Sink = (*MockCuller)(nil)
