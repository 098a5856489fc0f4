// ABOUTME: Handle is the smart-pointer lease a caller holds on a pooled resource: Waiting/Creating/Recycling/Ready/Taken/Dropped.
// ABOUTME: Go has no destructors, so release is explicit (Release, meant to be deferred) with a GC-backstop safety net.
package pool

import (
	"log/slog"
	"runtime"
	"sync/atomic"
	"weak"
)

type handleState int32

// Waiting/Receiving/Creating/Recycling name the phases Pool.Get passes
// through before a Handle exists; they are never stored. A Handle value only
// ever exists from Ready onward.
const (
	handleWaiting handleState = iota
	handleReceiving
	handleCreating
	handleRecycling
	handleReady
	handleTaken
	handleDropped
)

// Handle is a scoped lease on a pooled resource of type T. Call Release
// (ideally via defer) when done with it, or Take to detach the resource
// permanently from the pool's bookkeeping.
type Handle[T any] struct {
	obj     T
	metrics Metrics
	pool    weak.Pointer[Pool[T]]
	// state lives in its own allocation, not inline in Handle: the cleanup
	// argument below must hold a reference to it without referencing the
	// Handle itself, or the Handle would never become unreachable and the
	// GC-backstop would never fire.
	state   *atomic.Int32
	cleanup runtime.Cleanup
}

func newHandle[T any](p *Pool[T], obj T, m Metrics) *Handle[T] {
	state := new(atomic.Int32)
	state.Store(int32(handleReady))
	h := &Handle[T]{obj: obj, metrics: m, pool: weak.Make(p), state: state}
	h.cleanup = runtime.AddCleanup(h, leakedHandleCleanup[T], leakArgs[T]{pool: h.pool, obj: obj, state: state})
	return h
}

type leakArgs[T any] struct {
	pool  weak.Pointer[Pool[T]]
	obj   T
	state *atomic.Int32
}

// leakedHandleCleanup runs if a Handle is garbage collected without an
// explicit Release/Take. It is the best-effort leak-detection backstop:
// it returns the resource to its pool (or drops it, if the pool is gone)
// and logs a warning so leaks are at least observable.
func leakedHandleCleanup[T any](a leakArgs[T]) {
	if !a.state.CompareAndSwap(int32(handleReady), int32(handleDropped)) {
		return // already released/taken explicitly
	}
	p := a.pool.Value()
	if p == nil {
		return
	}
	slog.Default().Warn("pool: handle garbage-collected without Release; returning resource via GC backstop")
	p.recordLeak()
	p.returnIdle(a.obj, newMetrics())
}

// Get returns the wrapped resource. Valid only while the handle is in the
// Ready state (i.e. between acquisition and Release/Take); callers must not
// retain the returned pointer past Release.
func (h *Handle[T]) Get() *T {
	return &h.obj
}

// Metrics returns a snapshot of this resource's lifecycle metrics.
func (h *Handle[T]) Metrics() Metrics {
	return h.metrics
}

// Release returns the resource to its pool's idle queue, or destroys it if
// the pool is closed or over capacity (see Pool.returnIdle). Idempotent: a
// second call (explicit or via the GC backstop) is a safe no-op. Safe to
// call from a defer even after Take.
func (h *Handle[T]) Release() {
	if !h.state.CompareAndSwap(int32(handleReady), int32(handleDropped)) {
		return
	}
	h.cleanup.Stop()
	h.metrics.recordUse()
	if p := h.pool.Value(); p != nil {
		p.returnIdle(h.obj, h.metrics)
	}
}

// Take detaches the resource from the pool permanently: the pool's size
// accounting decrements (as if the resource were destroyed) and the caller
// now owns obj outright. Returns ErrHandleConsumed if the handle was
// already released or taken.
func (h *Handle[T]) Take() (T, error) {
	if !h.state.CompareAndSwap(int32(handleReady), int32(handleTaken)) {
		var zero T
		return zero, ErrHandleConsumed
	}
	h.cleanup.Stop()
	if p := h.pool.Value(); p != nil {
		p.forget()
	}
	return h.obj, nil
}
