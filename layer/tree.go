package layer

import "slices"

// Parent returns the parent layer, or nil for a root.
func (l *Layer) Parent() *Layer { return l.parent }

// Children returns the child layers in paint order (back to front).
// The slice is owned by the layer and must not be modified.
func (l *Layer) Children() []Node { return l.children }

// NumChildren returns the number of children.
func (l *Layer) NumChildren() int { return len(l.children) }

// HasAncestor reports whether a is a strict ancestor of l.
func (l *Layer) HasAncestor(a *Layer) bool {
	for p := l.parent; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// AddChild appends child on top of the existing children.
func (l *Layer) AddChild(child Node) {
	l.InsertChild(child, len(l.children))
}

// InsertChild inserts child at index, clamped to the number of children.
// The child is first removed from its current parent. Inserting a layer
// into its own subtree panics.
func (l *Layer) InsertChild(child Node, index int) {
	c := child.Base()
	if c == l || l.HasAncestor(c) {
		panic("layer: cannot insert a layer into its own subtree")
	}
	c.RemoveFromParent()
	c.parent = l
	c.SetHost(l.host)

	index = min(max(index, 0), len(l.children))
	l.children = append(l.children, nil)
	copy(l.children[index+1:], l.children[index:])
	l.children[index] = child
	l.setNeedsFullTreeSync()
}

// RemoveFromParent detaches the layer from its parent, if any.
func (l *Layer) RemoveFromParent() {
	if l.parent != nil {
		l.parent.removeChild(l)
	}
}

func (l *Layer) removeChild(c *Layer) {
	for i, n := range l.children {
		if n.Base() != c {
			continue
		}
		c.parent = nil
		c.SetHost(nil)
		l.children = slices.Delete(l.children, i, i+1)
		l.setNeedsFullTreeSync()
		return
	}
}

// RemoveAllChildren detaches every child.
func (l *Layer) RemoveAllChildren() {
	for len(l.children) > 0 {
		l.children[0].Base().RemoveFromParent()
	}
}

// Walk calls fn for root and its descendants in paint order (pre-order,
// back to front). Returning false from fn skips that node's subtree.
func Walk(root Node, fn func(Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, c := range root.Base().children {
		Walk(c, fn)
	}
}

// FrontToBack returns every node of the tree, front-most first.
func FrontToBack(root Node) []Node {
	var nodes []Node
	Walk(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}
