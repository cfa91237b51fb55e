// Package frame assembles a layer tree into a frame: an ordered, culled quad
// list, the shared quad states it references and the frame metadata.
//
// Assembly visits the drawing layers front-most first. A frame that cannot
// be completed is discarded as a whole; no partial frame is returned.
package frame

import (
	"sync/atomic"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/quad"
)

var nextFrameID atomic.Uint64

// Frame is one assembled unit of output.
//
// Quads and States live in a per-frame arena. Release returns the arena to
// its pool; after that every StateHandle of the frame is stale and Quads and
// States are nil.
type Frame struct {
	ID         uint64
	OutputRect compositor.Rect

	// Quads holds the quads front-most first.
	Quads *quad.List

	// States holds the shared quad states, in the order the layers were
	// visited.
	States *quad.Store

	Metadata Metadata

	// Overdraw is non-nil when overdraw recording was enabled.
	Overdraw *quad.OverdrawMetrics

	// AppendData totals what the layers reported while appending.
	AppendData quad.AppendData

	arena *quad.Arena
	pool  *quad.ArenaPool
}

// State returns the shared quad state of q.
func (f *Frame) State(q quad.DrawQuad) *quad.SharedQuadState {
	return f.States.State(q.SharedState())
}

// Release tears the frame down. It is safe to call more than once.
func (f *Frame) Release() {
	if f.arena == nil {
		return
	}
	f.pool.Put(f.arena)
	f.arena = nil
	f.Quads = nil
	f.States = nil
}
