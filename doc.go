// Package compositor provides the quad collection stage of a layer
// compositor: the boundary between a tree of drawable layers and the ordered
// list of geometry primitives (quads) handed to a rasterizer for one frame.
//
// # Overview
//
// A frame is assembled by visiting layers front-to-back. Each layer produces
// a drawable snapshot which pushes its shared render state (transform, clip,
// opacity) into a per-frame store and appends quads into a culler. Quads with
// an empty rectangle are dropped before they reach the list. Alongside the
// quads, every frame carries a metadata snapshot (root scroll offset, page
// scale, viewport) that an embedder uses to position overlays.
//
// # Packages
//
//   - compositor: geometry (Point, Size, Rect, Matrix), Color, Settings, logging
//   - quad: shared quad state store, quad variants, quad list and culler
//   - quad/quadtest: a mock culler for tests
//   - layer: layer base, solid-color and scrollbar layers, tree walking
//   - scrollbar: time-driven scrollbar fade controller
//   - frame: frame metadata and the frame assembler
//   - observer: publish/subscribe registry with strong and weak subscribers
//   - render: CPU rasterization of assembled frames and GPU presentation
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Quad
// rectangles are in content space and mapped to the target by the
// transform of their shared quad state.
//
// # Logging
//
// The library is silent by default. Call [SetLogger] to receive diagnostics.
package compositor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
