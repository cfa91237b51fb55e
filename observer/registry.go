// Package observer provides a publish/subscribe registry keyed by event
// kind.
//
// Subscribers are either strong or weak. A strong subscriber is kept alive
// by the registry until it is removed. A weak subscriber is only looked up:
// the registry holds no reference to it, skips it once it has been garbage
// collected and prunes its entry on the next Notify.
package observer

import (
	"sync"
	"weak"
)

// Subscriber receives events.
type Subscriber[E any] interface {
	Notify(event E)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc[E any] func(E)

// Notify implements Subscriber.
func (f SubscriberFunc[E]) Notify(event E) { f(event) }

// Token identifies a registration. The zero Token is never issued.
type Token uint64

type entry[E any] struct {
	token  Token
	strong Subscriber[E]
	weak   func() (Subscriber[E], bool)
}

func (e entry[E]) resolve() (Subscriber[E], bool) {
	if e.weak != nil {
		return e.weak()
	}
	return e.strong, true
}

// Registry dispatches events of kind K to subscribers. The zero value is
// ready to use. It is safe for concurrent use; subscribers are called
// outside the lock, in registration order.
type Registry[K comparable, E any] struct {
	mu    sync.RWMutex
	next  Token
	subs  map[K][]entry[E]
	kinds map[Token]K
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, E any]() *Registry[K, E] {
	return &Registry[K, E]{}
}

// Add registers a strong subscriber for kind.
func (r *Registry[K, E]) Add(kind K, s Subscriber[E]) Token {
	if s == nil {
		panic("observer: nil subscriber")
	}
	return r.add(kind, entry[E]{strong: s})
}

// AddWeak registers s for kind without keeping it alive.
func AddWeak[K comparable, E any, T any, PT interface {
	*T
	Subscriber[E]
}](r *Registry[K, E], kind K, s PT) Token {
	if s == nil {
		panic("observer: nil subscriber")
	}
	wp := weak.Make((*T)(s))
	return r.add(kind, entry[E]{weak: func() (Subscriber[E], bool) {
		p := wp.Value()
		if p == nil {
			return nil, false
		}
		return PT(p), true
	}})
}

func (r *Registry[K, E]) add(kind K, e entry[E]) Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.subs == nil {
		r.subs = make(map[K][]entry[E])
		r.kinds = make(map[Token]K)
	}
	r.next++
	e.token = r.next
	r.subs[kind] = append(r.subs[kind], e)
	r.kinds[e.token] = kind
	return e.token
}

// Remove unregisters the subscriber identified by token and reports whether
// it was registered.
func (r *Registry[K, E]) Remove(token Token) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(token)
}

func (r *Registry[K, E]) removeLocked(token Token) bool {
	kind, ok := r.kinds[token]
	if !ok {
		return false
	}
	delete(r.kinds, token)
	list := r.subs[kind]
	for i, e := range list {
		if e.token == token {
			// Copy so snapshots taken by a concurrent Notify stay intact.
			next := make([]entry[E], 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(r.subs, kind)
			} else {
				r.subs[kind] = next
			}
			break
		}
	}
	return true
}

// Notify sends event to every live subscriber of kind and returns how many
// were called.
func (r *Registry[K, E]) Notify(kind K, event E) int {
	r.mu.RLock()
	list := r.subs[kind]
	r.mu.RUnlock()

	var dead []Token
	n := 0
	for _, e := range list {
		s, ok := e.resolve()
		if !ok {
			dead = append(dead, e.token)
			continue
		}
		s.Notify(event)
		n++
	}

	if len(dead) > 0 {
		r.mu.Lock()
		for _, t := range dead {
			r.removeLocked(t)
		}
		r.mu.Unlock()
	}
	return n
}

// Len returns the number of live subscribers for kind.
func (r *Registry[K, E]) Len(kind K) int {
	r.mu.RLock()
	list := r.subs[kind]
	r.mu.RUnlock()

	n := 0
	for _, e := range list {
		if _, ok := e.resolve(); ok {
			n++
		}
	}
	return n
}
