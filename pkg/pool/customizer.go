// ABOUTME: Customize wraps a Manager[T] into a Manager[W], adapted from deadpool's customizer.rs.
// ABOUTME: Useful for layering a domain-specific client type over a raw driver/connection Manager.
package pool

import "context"

// Customize builds a Manager[W] from an existing Manager[T] plus a mapping
// function: every T created/recycled by inner is wrapped into/unwrapped
// from W via wrap/unwrap. This lets a caller keep a single low-level
// Manager[T] (e.g. "raw driver connection") while exposing a pool of a
// richer W (e.g. "typed client with helper methods") without reimplementing
// Create/Recycle.
func Customize[T, W any](inner Manager[T], wrap func(T) W, unwrap func(*W) *T) Manager[W] {
	return &customizedManager[T, W]{inner: inner, wrap: wrap, unwrap: unwrap}
}

type customizedManager[T, W any] struct {
	inner  Manager[T]
	wrap   func(T) W
	unwrap func(*W) *T
}

func (c *customizedManager[T, W]) Create(ctx context.Context) (W, error) {
	obj, err := c.inner.Create(ctx)
	if err != nil {
		var zero W
		return zero, err
	}
	return c.wrap(obj), nil
}

func (c *customizedManager[T, W]) Recycle(ctx context.Context, w *W, m *Metrics) error {
	return c.inner.Recycle(ctx, c.unwrap(w), m)
}
