// Package layer defines the drawable layer tree fed to frame assembly.
//
// Every layer embeds the base Layer, which holds geometry, opacity, colors
// and tree links, and is tagged with a Kind. A layer variant implements Node:
// a small fixed interface that exposes the base, the tag and
// CreateDrawable, which snapshots the layer into a Drawable that appends
// quads into a quad.Sink.
//
// DrawList computes draw properties (target transform, clip, opacity) for a
// tree and returns the drawing layers front-most first, the order in which
// frame assembly visits them.
package layer
