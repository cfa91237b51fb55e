package frame

import (
	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/observer"
	"github.com/gogpu/compositor/quad"
)

// AssemblerOption configures an Assembler during creation.
//
// Example:
//
//	// Sequential assembly with debug borders
//	a := frame.NewAssembler(frame.WithDebugBorders(true))
//
//	// Four shards visited in parallel
//	a := frame.NewAssembler(frame.WithWorkers(4))
//	defer a.Close()
type AssemblerOption func(*assemblerOptions)

type assemblerOptions struct {
	workers      int
	occluder     quad.Occluder
	debugBorders bool
	overdraw     bool
	pool         *quad.ArenaPool
	events       *observer.Registry[EventKind, Event]
}

func defaultOptions() assemblerOptions {
	return assemblerOptions{
		workers: 1,
		pool:    quad.DefaultPool,
	}
}

// WithWorkers sets how many goroutines visit layers. With more than one
// worker the layers are split into contiguous shards whose results are
// merged in layer order, so the frame is identical to a sequential one.
func WithWorkers(n int) AssemblerOption {
	return func(o *assemblerOptions) {
		o.workers = max(n, 1)
	}
}

// WithOccluder installs an occlusion test used by the culler.
// quad.ClipOccluder culls against each layer's clip rect.
func WithOccluder(occ quad.Occluder) AssemblerOption {
	return func(o *assemblerOptions) {
		o.occluder = occ
	}
}

// WithDebugBorders makes every layer append an outline quad.
func WithDebugBorders(enabled bool) AssemblerOption {
	return func(o *assemblerOptions) {
		o.debugBorders = enabled
	}
}

// WithOverdraw enables overdraw recording in Frame.Overdraw.
func WithOverdraw(enabled bool) AssemblerOption {
	return func(o *assemblerOptions) {
		o.overdraw = enabled
	}
}

// WithPool sets the arena pool frames are allocated from.
func WithPool(p *quad.ArenaPool) AssemblerOption {
	return func(o *assemblerOptions) {
		if p != nil {
			o.pool = p
		}
	}
}

// WithEvents publishes assembly events to r.
func WithEvents(r *observer.Registry[EventKind, Event]) AssemblerOption {
	return func(o *assemblerOptions) {
		o.events = r
	}
}

// WithSettings applies the worker count, debug border and overdraw switches
// of s.
func WithSettings(s compositor.Settings) AssemblerOption {
	return func(o *assemblerOptions) {
		o.workers = max(s.NumRasterThreads, 1)
		o.debugBorders = s.ShowDebugBorders
		o.overdraw = s.ShowOverdraw
	}
}
