package frame

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/internal/parallel"
	"github.com/gogpu/compositor/layer"
	"github.com/gogpu/compositor/quad"
)

// Errors returned by Assemble.
var (
	// ErrAbandoned is returned when the context ends before every layer was
	// visited. The error also wraps the context error.
	ErrAbandoned = errors.New("frame: assembly abandoned")

	// ErrNilRoot is returned for a nil root layer.
	ErrNilRoot = errors.New("frame: nil root layer")
)

// Assembler turns layer trees into frames.
//
// An Assembler may be shared between goroutines, but each layer tree must
// not be mutated while it is being assembled.
type Assembler struct {
	opts    assemblerOptions
	workers *parallel.WorkerPool
}

// NewAssembler creates an assembler. Call Close when it was created with
// more than one worker.
func NewAssembler(opts ...AssemblerOption) *Assembler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Assembler{opts: o}
	if o.workers > 1 {
		a.workers = parallel.NewWorkerPool(o.workers)
	}
	return a
}

// Workers returns the number of goroutines that visit layers.
func (a *Assembler) Workers() int { return a.opts.workers }

// Close stops the worker goroutines. The assembler keeps working
// sequentially afterwards.
func (a *Assembler) Close() {
	if a.workers != nil {
		a.workers.Close()
	}
}

// item is one drawing layer ready to append.
type item struct {
	drawable layer.Drawable
	params   layer.AppendParams
}

// shard is the output of one contiguous run of items.
type shard struct {
	arena   *quad.Arena
	metrics *quad.OverdrawMetrics
	data    quad.AppendData
	err     error
}

// Assemble builds a frame from the tree under root.
//
// Layers are visited front-most first and ctx is checked before each one.
// If ctx ends first, the partial frame is released and the returned error
// wraps both ErrAbandoned and ctx.Err().
func (a *Assembler) Assemble(ctx context.Context, root layer.Node, state RootState, outputRect compositor.Rect) (*Frame, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	id := nextFrameID.Add(1)
	log := compositor.Logger()

	entries := layer.DrawList(root, state.deviceTransform(), outputRect)
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		d := e.Node.CreateDrawable()
		if d == nil {
			continue
		}
		items = append(items, item{
			drawable: d,
			params:   layer.AppendParams{DrawProperties: e.Props, ShowDebugBorders: a.opts.debugBorders},
		})
	}

	var out shard
	if a.workers != nil && len(items) > 1 {
		out = a.assembleSharded(ctx, items)
	} else {
		out = shard{arena: a.opts.pool.Get(), metrics: quad.NewOverdrawMetrics(a.opts.overdraw)}
		out.err = a.appendItems(ctx, items, &out)
	}

	if out.err != nil {
		if out.arena != nil {
			a.opts.pool.Put(out.arena)
		}
		err := fmt.Errorf("%w: %w", ErrAbandoned, out.err)
		log.Warn("frame: abandoned", "frame", id, "layers", len(items), "err", out.err)
		a.notify(EventFrameAbandoned, Event{FrameID: id, NumLayers: len(items), AppendData: out.data, Err: err})
		return nil, err
	}

	f := &Frame{
		ID:         id,
		OutputRect: outputRect,
		Quads:      out.arena.List,
		States:     out.arena.Store,
		Metadata:   NewMetadata(state),
		AppendData: out.data,
		arena:      out.arena,
		pool:       a.opts.pool,
	}
	if out.metrics.Enabled() {
		f.Overdraw = out.metrics
	}

	log.Debug("frame: assembled",
		"frame", id,
		"layers", len(items),
		"quads", f.Quads.Len(),
		"states", f.States.Len(),
		"culled", out.data.NumCulled,
		"missingResources", out.data.NumMissingResources)
	a.notify(EventFrameAssembled, Event{
		FrameID:    id,
		NumLayers:  len(items),
		NumQuads:   f.Quads.Len(),
		NumStates:  f.States.Len(),
		AppendData: out.data,
	})
	return f, nil
}

// appendItems appends items into s.arena in order.
func (a *Assembler) appendItems(ctx context.Context, items []item, s *shard) error {
	culler := quad.NewCuller(s.arena.Store, s.arena.List)
	culler.SetOccluder(a.opts.occluder)
	culler.SetMetrics(s.metrics)

	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		var data quad.AppendData
		it.drawable.AppendQuads(culler, it.params, &data)
		s.data.Add(data)
	}
	return nil
}

// assembleSharded splits items into contiguous shards, appends each into its
// own arena on the worker pool and merges the arenas in shard order.
func (a *Assembler) assembleSharded(ctx context.Context, items []item) shard {
	ranges := shardRanges(len(items), a.opts.workers)
	shards := make([]shard, len(ranges))
	for i := range shards {
		shards[i] = shard{arena: a.opts.pool.Get(), metrics: quad.NewOverdrawMetrics(a.opts.overdraw)}
	}

	a.workers.ForEach(len(ranges), func(i int) {
		r := ranges[i]
		shards[i].err = a.appendItems(ctx, items[r[0]:r[1]], &shards[i])
	})

	out := shard{metrics: quad.NewOverdrawMetrics(a.opts.overdraw)}
	for _, s := range shards {
		out.data.Add(s.data)
		if s.err != nil && out.err == nil {
			out.err = s.err
		}
	}
	if out.err != nil {
		for _, s := range shards {
			a.opts.pool.Put(s.arena)
		}
		return out
	}

	out.arena = a.opts.pool.Get()
	for _, s := range shards {
		mergeArena(out.arena, s.arena)
		out.metrics.Merge(s.metrics)
		a.opts.pool.Put(s.arena)
	}
	compositor.Logger().Debug("frame: merged shards", "shards", len(shards), "quads", out.arena.List.Len())
	return out
}

// shardRanges splits [0, n) into at most k contiguous [start, end) ranges
// whose lengths differ by at most one.
func shardRanges(n, k int) [][2]int {
	k = min(k, n)
	if k <= 0 {
		return nil
	}
	ranges := make([][2]int, k)
	size, extra := n/k, n%k
	start := 0
	for i := range k {
		end := start + size
		if i < extra {
			end++
		}
		ranges[i] = [2]int{start, end}
		start = end
	}
	return ranges
}

// mergeArena moves the states and quads of src to the end of dst. Quads are
// rebound to the states' new handles.
func mergeArena(dst, src *quad.Arena) {
	remap := make([]quad.StateHandle, src.Store.Len())
	for i, s := range src.Store.States() {
		remap[i] = dst.Store.Allocate(s)
	}
	for _, q := range src.List.Quads() {
		q.Bind(remap[q.SharedState().Index()], q.VisibleRect())
		dst.List.Append(q)
	}
}

func (a *Assembler) notify(kind EventKind, e Event) {
	if a.opts.events == nil {
		return
	}
	e.Kind = kind
	a.opts.events.Notify(kind, e)
}
