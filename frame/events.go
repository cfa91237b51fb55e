package frame

import "github.com/gogpu/compositor/quad"

// EventKind identifies an assembly event.
type EventKind uint8

// Event kinds.
const (
	// EventFrameAssembled is published after a frame is complete.
	EventFrameAssembled EventKind = iota

	// EventFrameAbandoned is published when assembly stops early and the
	// partial frame is discarded.
	EventFrameAbandoned
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventFrameAssembled:
		return "FrameAssembled"
	case EventFrameAbandoned:
		return "FrameAbandoned"
	default:
		return "Unknown"
	}
}

// Event describes the outcome of one Assemble call.
type Event struct {
	Kind    EventKind
	FrameID uint64

	// NumLayers is the number of drawing layers visited.
	NumLayers int

	// NumQuads and NumStates are zero for abandoned frames.
	NumQuads  int
	NumStates int

	AppendData quad.AppendData

	// Err is set for abandoned frames.
	Err error
}
