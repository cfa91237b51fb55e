package quad

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/compositor"
)

// SharedQuadState is the render state shared by all quads of one layer in a
// frame. It is immutable once allocated in a Store.
type SharedQuadState struct {
	// Transform maps quad rects (content space) to the target.
	Transform compositor.Matrix

	// VisibleContentRect is the part of the layer's content that can be seen.
	VisibleContentRect compositor.Rect

	// ClipRect is in target space and only applies when IsClipped is set.
	ClipRect  compositor.Rect
	IsClipped bool

	// Opacity in [0, 1], applied on top of each quad's own color.
	Opacity float64

	// LayerID identifies the layer that produced the state.
	LayerID int
}

// StateHandle references a SharedQuadState inside the Store that allocated
// it. The zero value is never valid.
type StateHandle struct {
	store uint64
	gen   uint32
	index int32
}

// Index returns the allocation index of the handle within its frame.
func (h StateHandle) Index() int { return int(h.index) }

// IsZero reports whether h is the zero handle.
func (h StateHandle) IsZero() bool { return h.store == 0 }

// String returns a debug representation.
func (h StateHandle) String() string {
	if h.IsZero() {
		return "StateHandle(zero)"
	}
	return fmt.Sprintf("StateHandle(store=%d gen=%d index=%d)", h.store, h.gen, h.index)
}

// storeIDs hands out store identities; 0 is reserved for the zero handle.
var storeIDs atomic.Uint64

// Store owns the shared quad states of one frame. States are kept in
// allocation order and handles are never reused within a generation.
//
// Store is not safe for concurrent use; a frame is assembled by a single
// producer.
type Store struct {
	id     uint64
	gen    uint32
	states []SharedQuadState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		id:     storeIDs.Add(1),
		states: make([]SharedQuadState, 0, 16),
	}
}

// Allocate copies state into the store and returns its handle.
// Allocation always succeeds.
func (s *Store) Allocate(state SharedQuadState) StateHandle {
	s.states = append(s.states, state)
	return StateHandle{
		store: s.id,
		gen:   s.gen,
		index: int32(len(s.states) - 1), //nolint:gosec // G115: bounded by frame quad count
	}
}

// Valid reports whether h was issued by this store in its current generation.
func (s *Store) Valid(h StateHandle) bool {
	return h.store == s.id && h.gen == s.gen && h.index >= 0 && int(h.index) < len(s.states)
}

// MustValidate panics if h was not issued by this store in its current
// generation.
func (s *Store) MustValidate(h StateHandle) {
	if !s.Valid(h) {
		panic(fmt.Sprintf("quad: %v is stale or foreign to store %d (gen %d, %d states)",
			h, s.id, s.gen, len(s.states)))
	}
}

// State returns the state referenced by h. It panics on a stale or foreign
// handle. The returned pointer must not be retained past Reset.
func (s *Store) State(h StateHandle) *SharedQuadState {
	s.MustValidate(h)
	return &s.states[h.index]
}

// Len returns the number of allocated states.
func (s *Store) Len() int { return len(s.states) }

// States returns the states in allocation order. The slice is owned by the
// store and must not be modified.
func (s *Store) States() []SharedQuadState { return s.states }

// Generation returns the current frame generation.
func (s *Store) Generation() uint32 { return s.gen }

// Reset discards all states and starts a new generation. Handles issued
// before Reset become stale.
func (s *Store) Reset() {
	clear(s.states)
	s.states = s.states[:0]
	s.gen++
}
