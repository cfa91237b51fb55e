// Package quad holds the per-frame output of layer traversal: the shared
// quad state store, the drawable quad variants, the ordered quad list and
// the culler that fills it.
//
// A frame producer allocates one SharedQuadState per layer and appends that
// layer's quads against the returned StateHandle:
//
//	arena := quad.DefaultPool.Get()
//	defer quad.DefaultPool.Put(arena)
//
//	c := quad.NewCuller(arena.Store, arena.List)
//	h := c.Allocate(quad.SharedQuadState{Transform: compositor.Identity(), Opacity: 1})
//	c.Append(quad.NewSolidColorQuad(compositor.R(0, 0, 100, 100), compositor.Red), h)
//
// Quads whose rectangle has no area are culled: Append returns false and the
// list is unchanged. The list keeps quads in append order, front-most first.
//
// Handles are only valid for the store generation that issued them. Using a
// handle after Store.Reset, or with a different store, is a programming error
// and panics.
package quad
