package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Creation
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// ForEach
// =============================================================================

func TestWorkerPool_ForEachVisitsEveryIndex(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 100
	var seen [n]atomic.Int32
	pool.ForEach(n, func(i int) { seen[i].Add(1) })

	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestWorkerPool_ForEachEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	called := false
	pool.ForEach(0, func(int) { called = true })
	pool.ForEach(-1, func(int) { called = true })
	if called {
		t.Error("ForEach with n <= 0 called fn")
	}
}

func TestWorkerPool_ForEachWaits(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var done atomic.Int32
	pool.ForEach(4, func(int) {
		time.Sleep(5 * time.Millisecond)
		done.Add(1)
	})
	if done.Load() != 4 {
		t.Errorf("ForEach returned with %d of 4 calls finished", done.Load())
	}
}

func TestWorkerPool_ForEachPropagatesPanic(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var finished atomic.Int32
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, want boom", r)
			}
		}()
		pool.ForEach(8, func(i int) {
			if i == 3 {
				panic("boom")
			}
			finished.Add(1)
		})
	}()
	if finished.Load() != 7 {
		t.Errorf("finished = %d, want 7", finished.Load())
	}

	// The pool survives a panicking shard.
	var after atomic.Int32
	pool.ForEach(4, func(int) { after.Add(1) })
	if after.Load() != 4 {
		t.Errorf("after = %d, want 4", after.Load())
	}
}

func TestWorkerPool_ForEachAfterCloseRunsInline(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var order []int
	pool.ForEach(3, func(i int) { order = append(order, i) })
	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			pool.ForEach(50, func(int) { total.Add(1) })
		})
	}
	wg.Wait()
	if total.Load() != 400 {
		t.Errorf("total = %d, want 400", total.Load())
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Eight 10ms items on four workers take about two sleeps.
	start := time.Now()
	pool.ForEach(8, func(int) { time.Sleep(10 * time.Millisecond) })
	if elapsed := time.Since(start); elapsed > 75*time.Millisecond {
		t.Logf("ForEach took %v, expected about 20ms", elapsed)
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()
	for range 10 {
		pool := NewWorkerPool(4)
		pool.ForEach(10, func(int) {})
		pool.Close()
	}
	time.Sleep(10 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines = %d, want about %d", after, before)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkWorkerPool_ForEach(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	var sink atomic.Int64
	for b.Loop() {
		pool.ForEach(64, func(i int) { sink.Add(int64(i)) })
	}
}
