// ABOUTME: Builder is a fluent pool constructor, adapted from deadpool's PoolBuilder (original_source/src/managed/builder.rs).
// ABOUTME: Build fails with ErrNoRuntime if any timeout is set but no Runtime was supplied.
package pool

import (
	"log/slog"
	"time"
)

// Builder assembles a Pool with optional timeouts, hooks, and a Runtime.
type Builder[T any] struct {
	manager Manager[T]
	cfg     Config
	hooks   Hooks[T]
	logger  *slog.Logger
	rt      Runtime
}

// NewBuilder starts a Builder for manager with DefaultConfig as its base.
func NewBuilder[T any](manager Manager[T]) *Builder[T] {
	return &Builder[T]{manager: manager, cfg: DefaultConfig()}
}

func (b *Builder[T]) MaxSize(n int) *Builder[T] {
	b.cfg.MaxSize = n
	return b
}

func (b *Builder[T]) QueueMode(m QueueMode) *Builder[T] {
	b.cfg.QueueMode = m
	return b
}

func (b *Builder[T]) WaitTimeout(d time.Duration) *Builder[T] {
	b.cfg.Timeouts.Wait = dur(d)
	return b
}

func (b *Builder[T]) CreateTimeout(d time.Duration) *Builder[T] {
	b.cfg.Timeouts.Create = dur(d)
	return b
}

func (b *Builder[T]) RecycleTimeout(d time.Duration) *Builder[T] {
	b.cfg.Timeouts.Recycle = dur(d)
	return b
}

func (b *Builder[T]) PostCreate(h HookFunc[T]) *Builder[T] {
	b.hooks.PostCreate = append(b.hooks.PostCreate, h)
	return b
}

func (b *Builder[T]) PreRecycle(h HookFunc[T]) *Builder[T] {
	b.hooks.PreRecycle = append(b.hooks.PreRecycle, h)
	return b
}

func (b *Builder[T]) PostRecycle(h HookFunc[T]) *Builder[T] {
	b.hooks.PostRecycle = append(b.hooks.PostRecycle, h)
	return b
}

func (b *Builder[T]) Logger(l *slog.Logger) *Builder[T] {
	b.logger = l
	return b
}

// WithRuntime supplies the Runtime that Pool.Runtime returns. Build requires
// one whenever a timeout is set; the timeouts themselves are enforced with
// context deadlines, not through the Runtime.
func (b *Builder[T]) WithRuntime(rt Runtime) *Builder[T] {
	b.rt = rt
	return b
}

func (b *Builder[T]) hasAnyTimeout() bool {
	t := b.cfg.Timeouts
	return t.Wait != nil || t.Create != nil || t.Recycle != nil
}

// Build validates the configuration and constructs the Pool.
func (b *Builder[T]) Build() (*Pool[T], error) {
	if b.hasAnyTimeout() && b.rt == nil {
		return nil, ErrNoRuntime
	}
	p, err := newPool(b.manager, b.cfg, b.logger)
	if err != nil {
		return nil, err
	}
	p.hooks = b.hooks
	p.rt = b.rt
	return p, nil
}
