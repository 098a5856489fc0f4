// ABOUTME: Pool is the engine tying the admission semaphore, idle queue, manager, and hooks together.
// ABOUTME: Get/TryGet/TimeoutGet implement the acquire protocol; Close/Resize/Status implement the rest of C8.
package pool

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Status is a diagnostic snapshot of a Pool's internal counters. Fields may
// be briefly inconsistent under concurrent activity; they are diagnostic,
// not authoritative.
type Status struct {
	MaxSize   int
	Size      int64
	Available int
	Waiting   int
}

// Pool is a generic, concurrency-safe pool of resources of type T.
type Pool[T any] struct {
	manager Manager[T]
	cfg     Config
	logger  *slog.Logger
	rt      Runtime

	admission *admission
	queue     *idleQueue[T]
	hooks     Hooks[T]

	size   atomic.Int64
	closed atomic.Bool
	leaks  atomic.Int64
}

// New creates a pool bounded to maxSize, using DefaultConfig for everything else.
func New[T any](manager Manager[T], maxSize int) *Pool[T] {
	cfg := DefaultConfig()
	cfg.MaxSize = maxSize
	p, _ := newPool(manager, cfg, nil)
	return p
}

// NewWithConfig creates a pool from a fully specified Config.
func NewWithConfig[T any](manager Manager[T], cfg Config) *Pool[T] {
	p, _ := newPool(manager, cfg, nil)
	return p
}

func newPool[T any](manager Manager[T], cfg Config, logger *slog.Logger) (*Pool[T], error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxSize < 0 {
		cfg.MaxSize = DefaultMaxSize()
	}
	p := &Pool[T]{
		manager:   manager,
		cfg:       cfg,
		logger:    logger,
		admission: newAdmission(cfg.MaxSize),
		queue:     newIdleQueue[T](cfg.QueueMode),
	}
	return p, nil
}

// Get retrieves a resource, waiting as long as cfg.Timeouts.Wait (or ctx,
// whichever is shorter) allows.
func (p *Pool[T]) Get(ctx context.Context) (*Handle[T], error) {
	return p.timeoutGet(ctx, p.cfg.Timeouts)
}

// TryGet retrieves a resource only if one is immediately available (an idle
// entry, or room to create under MaxSize); otherwise it fails fast with a
// wait TimeoutError.
func (p *Pool[T]) TryGet(ctx context.Context) (*Handle[T], error) {
	t := p.cfg.Timeouts
	zero := time.Duration(0)
	t.Wait = &zero
	return p.timeoutGet(ctx, t)
}

// TimeoutGet retrieves a resource using a different Timeouts than the one
// the pool was configured with.
func (p *Pool[T]) TimeoutGet(ctx context.Context, timeouts Timeouts) (*Handle[T], error) {
	return p.timeoutGet(ctx, timeouts)
}

func withBound(parent context.Context, d *time.Duration) (context.Context, context.CancelFunc) {
	if d == nil {
		return parent, func() {}
	}
	return context.WithTimeout(parent, *d)
}

// classifyCtxErr distinguishes "our own bounded deadline fired" (reported as
// a *TimeoutError of the given kind) from "the caller's own ctx was done"
// (reported as orig.Err()) from "not a context error at all" (isCtxErr=false).
func classifyCtxErr(err error, orig context.Context, kind TimeoutType) (converted error, isCtxErr bool) {
	switch err {
	case context.DeadlineExceeded:
		if orig.Err() != nil {
			return orig.Err(), true
		}
		return &TimeoutError{Type: kind}, true
	case context.Canceled:
		if orig.Err() != nil {
			return orig.Err(), true
		}
		return err, true
	default:
		return err, false
	}
}

func (p *Pool[T]) timeoutGet(ctx context.Context, timeouts Timeouts) (*Handle[T], error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}

	waitCtx, cancelWait := withBound(ctx, timeouts.Wait)
	defer cancelWait()

	var acquireErr error
	if timeouts.Wait != nil && *timeouts.Wait == 0 {
		if !p.admission.TryAcquire() {
			if p.closed.Load() {
				acquireErr = ErrClosed
			} else {
				acquireErr = &TimeoutError{Type: TimeoutWait}
			}
		}
	} else if acquireErr = p.admission.Acquire(waitCtx); acquireErr != nil {
		if conv, ok := classifyCtxErr(acquireErr, ctx, TimeoutWait); ok {
			acquireErr = conv
		}
	}
	if acquireErr != nil {
		return nil, acquireErr
	}

	for {
		if entry, ok := p.queue.pop(); ok {
			h, retry, err := p.recycleEntry(ctx, timeouts, entry)
			if err != nil {
				p.admission.Release()
				return nil, err
			}
			if retry {
				continue
			}
			return h, nil
		}

		h, retry, err := p.createEntry(ctx, timeouts)
		if err != nil {
			p.admission.Release()
			return nil, err
		}
		if retry {
			continue
		}
		return h, nil
	}
}

// recycleEntry attempts to recycle a popped idle entry. retry=true means
// the entry was discarded and the caller should loop back to pop/create
// again without releasing its permit.
func (p *Pool[T]) recycleEntry(ctx context.Context, timeouts Timeouts, entry idleEntry[T]) (h *Handle[T], retry bool, err error) {
	obj := entry.obj
	m := entry.metrics

	verdict, herr := runHooks(ctx, "pre_recycle", p.hooks.PreRecycle, &obj, &m)
	switch verdict {
	case HookContinue:
		p.discard()
		return nil, true, nil
	case HookAbort:
		p.discard()
		return nil, false, herr
	}

	recCtx, cancel := withBound(ctx, timeouts.Recycle)
	rerr := p.manager.Recycle(recCtx, &obj, &m)
	cancel()
	if rerr != nil {
		p.logger.Debug("pool: discarding idle resource that failed recycle", "error", rerr)
		p.discard()
		return nil, true, nil
	}

	verdict, herr = runHooks(ctx, "post_recycle", p.hooks.PostRecycle, &obj, &m)
	switch verdict {
	case HookContinue:
		p.discard()
		return nil, true, nil
	case HookAbort:
		p.discard()
		return nil, false, herr
	}

	m.recordRecycle()
	return newHandle(p, obj, m), false, nil
}

// createEntry attempts to create a brand new resource.
func (p *Pool[T]) createEntry(ctx context.Context, timeouts Timeouts) (h *Handle[T], retry bool, err error) {
	createCtx, cancel := withBound(ctx, timeouts.Create)
	obj, cerr := p.manager.Create(createCtx)
	cancel()
	if cerr != nil {
		if conv, ok := classifyCtxErr(cerr, ctx, TimeoutCreate); ok {
			return nil, false, conv
		}
		return nil, false, &BackendError{Op: "create", Err: cerr}
	}

	p.size.Add(1)
	m := newMetrics()
	verdict, herr := runHooks(ctx, "post_create", p.hooks.PostCreate, &obj, &m)
	switch verdict {
	case HookContinue:
		p.size.Add(-1)
		return nil, true, nil
	case HookAbort:
		p.size.Add(-1)
		return nil, false, herr
	}
	return newHandle(p, obj, m), false, nil
}

// discard drops a single live resource: decrements size but does not touch
// the admission permit (the caller is retrying the same acquire attempt).
func (p *Pool[T]) discard() {
	p.size.Add(-1)
}

// returnIdle is called by Handle.Release (explicit or GC-backstop). If the
// pool is closed or currently over its (possibly just-shrunk) capacity, the
// resource is destroyed instead of requeued so size converges back toward
// MaxSize; otherwise it is pushed back onto the idle queue.
func (p *Pool[T]) returnIdle(obj T, m Metrics) {
	if p.closed.Load() || p.size.Load() > int64(p.admission.Size()) {
		p.size.Add(-1)
		p.admission.Release()
		return
	}
	p.queue.push(obj, m)
	p.admission.Release()
}

// forget is called by Handle.Take: the resource is permanently removed
// from the pool's accounting.
func (p *Pool[T]) forget() {
	p.size.Add(-1)
	p.admission.Release()
}

func (p *Pool[T]) recordLeak() {
	p.leaks.Add(1)
}

// Leaks reports how many handles were returned via the GC backstop instead
// of an explicit Release/Take.
func (p *Pool[T]) Leaks() int64 {
	return p.leaks.Load()
}

// Close marks the pool closed: all current and future waiters fail with
// ErrClosed, and the idle queue is drained and destroyed.
func (p *Pool[T]) Close() {
	p.closed.Store(true)
	p.admission.Close()
	drained := p.queue.drain()
	p.size.Add(-int64(len(drained)))
}

// Resize changes the pool's maximum capacity. Growing wakes any blocked
// Get calls as room allows; shrinking lets outstanding resources retire
// naturally as they are returned (see returnIdle).
func (p *Pool[T]) Resize(newMax int) {
	p.admission.Resize(newMax)
}

// Status returns a diagnostic snapshot of the pool's counters.
func (p *Pool[T]) Status() Status {
	return Status{
		MaxSize:   p.admission.Size(),
		Size:      p.size.Load(),
		Available: p.queue.len(),
		Waiting:   p.admission.Waiting(),
	}
}

// Manager returns the Manager this pool was constructed with.
func (p *Pool[T]) Manager() Manager[T] {
	return p.manager
}

// Runtime returns the Runtime supplied via Builder.WithRuntime, or a default
// goroutine-based Runtime if none was supplied.
func (p *Pool[T]) Runtime() Runtime {
	if p.rt == nil {
		return NewGoroutineRuntime()
	}
	return p.rt
}
