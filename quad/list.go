package quad

import "iter"

// List is the ordered sequence of quads of one frame. Order is paint order,
// front-most quad first; the rasterizer walks it back to front.
//
// List refuses quads with an empty rect, so the no-empty-quads invariant
// holds whatever sink fills it.
type List struct {
	quads []DrawQuad
}

// NewList creates an empty list.
func NewList() *List {
	return &List{quads: make([]DrawQuad, 0, 32)}
}

// Append adds q at the back of the list. It returns false, leaving the list
// unchanged, when q is nil or its rect is empty.
func (l *List) Append(q DrawQuad) bool {
	if q == nil || q.Rect().IsEmpty() {
		return false
	}
	l.quads = append(l.quads, q)
	return true
}

// Len returns the number of quads.
func (l *List) Len() int { return len(l.quads) }

// IsEmpty reports whether the list holds no quads.
func (l *List) IsEmpty() bool { return len(l.quads) == 0 }

// At returns the i-th quad in front-to-back order.
func (l *List) At(i int) DrawQuad { return l.quads[i] }

// Quads returns the quads front-to-back. The slice is owned by the list and
// must not be modified.
func (l *List) Quads() []DrawQuad { return l.quads }

// All iterates the quads front-to-back with their index.
func (l *List) All() iter.Seq2[int, DrawQuad] {
	return func(yield func(int, DrawQuad) bool) {
		for i, q := range l.quads {
			if !yield(i, q) {
				return
			}
		}
	}
}

// BackToFront iterates the quads in the order they are painted.
func (l *List) BackToFront() iter.Seq[DrawQuad] {
	return func(yield func(DrawQuad) bool) {
		for i := len(l.quads) - 1; i >= 0; i-- {
			if !yield(l.quads[i]) {
				return
			}
		}
	}
}

// Reset removes all quads, keeping capacity.
func (l *List) Reset() {
	clear(l.quads)
	l.quads = l.quads[:0]
}
