package quad

import "sync"

// Arena is the per-frame storage of one assembly pass: the shared quad state
// store and the quad list referencing it. Returning an arena to its pool
// tears the frame down; handles into it become stale.
type Arena struct {
	Store *Store
	List  *List
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{Store: NewStore(), List: NewList()}
}

// Reset clears the arena and starts a new store generation.
func (a *Arena) Reset() {
	a.Store.Reset()
	a.List.Reset()
}

// ArenaPool manages a pool of reusable arenas.
// After warmup, per-frame allocations are minimized by reusing arenas.
//
// Usage:
//
//	pool := quad.NewArenaPool()
//	arena := pool.Get()
//	defer pool.Put(arena)
type ArenaPool struct {
	pool sync.Pool
}

// NewArenaPool creates a new arena pool.
func NewArenaPool() *ArenaPool {
	return &ArenaPool{
		pool: sync.Pool{
			New: func() any {
				return NewArena()
			},
		},
	}
}

// Get retrieves an empty arena from the pool.
func (p *ArenaPool) Get() *Arena {
	return p.pool.Get().(*Arena)
}

// Put resets the arena and returns it to the pool.
func (p *ArenaPool) Put(a *Arena) {
	if a == nil {
		return
	}
	a.Reset()
	p.pool.Put(a)
}

// Warmup pre-allocates arenas to avoid allocation during the first frames.
func (p *ArenaPool) Warmup(count int) {
	arenas := make([]*Arena, count)
	for i := range count {
		arenas[i] = p.Get()
	}
	for i := range count {
		p.Put(arenas[i])
	}
}

// DefaultPool is a global arena pool for convenience.
var DefaultPool = NewArenaPool()
