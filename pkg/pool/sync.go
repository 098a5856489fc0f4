// ABOUTME: SyncWrapper bridges a synchronous (blocking) backend into the pool's async-shaped Manager contract.
// ABOUTME: Every call is serialized through a mutex and run on the supplied Runtime; a panic poisons the object.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPoisoned is returned by SyncWrapper.Interact once a prior call has
// panicked; the wrapped object is assumed to be in an unknown state and is
// never interacted with again.
var ErrPoisoned = errors.New("pool: sync object poisoned by a prior panic")

// SyncWrapper adapts a plain, blocking, non-thread-safe value T into
// something Manager[T] can create/recycle/use safely: every access goes
// through Interact, which takes the lock, runs the function on the given
// Runtime, and marks the object poisoned forever if the function panics.
type SyncWrapper[T any] struct {
	mu       sync.Mutex
	obj      T
	rt       Runtime
	poisoned bool
}

// NewSyncWrapper wraps obj for exclusive, runtime-scheduled access.
func NewSyncWrapper[T any](obj T, rt Runtime) *SyncWrapper[T] {
	if rt == nil {
		rt = NewGoroutineRuntime()
	}
	return &SyncWrapper[T]{obj: obj, rt: rt}
}

// Interact runs fn with exclusive access to the wrapped object, off the
// caller's goroutine via the configured Runtime. It returns ErrPoisoned
// without running fn if a previous call panicked.
func (s *SyncWrapper[T]) Interact(ctx context.Context, fn func(obj *T) (any, error)) (any, error) {
	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		return nil, ErrPoisoned
	}
	s.mu.Unlock()

	resultCh := s.rt.SpawnBlocking(ctx, func() (val any, err error) {
		defer func() {
			if r := recover(); r != nil {
				s.mu.Lock()
				s.poisoned = true
				s.mu.Unlock()
				err = fmt.Errorf("pool: sync interact panicked: %v", r)
			}
		}()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.poisoned {
			return nil, ErrPoisoned
		}
		return fn(&s.obj)
	})

	r := <-resultCh
	return r.val, r.err
}

// Poisoned reports whether a prior Interact call panicked.
func (s *SyncWrapper[T]) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

// Close disposes of the wrapped object via dispose, run on the configured
// Runtime like every other access -- spec's sync bridge requires that
// tearing down R happens on a blocking thread, since the teardown itself
// may block. After Close, the wrapper is permanently poisoned: any later
// Interact call fails with ErrPoisoned instead of touching a disposed R.
func (s *SyncWrapper[T]) Close(ctx context.Context, dispose func(obj *T)) error {
	resultCh := s.rt.SpawnBlocking(ctx, func() (val any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("pool: sync dispose panicked: %v", r)
			}
		}()
		s.mu.Lock()
		defer s.mu.Unlock()
		dispose(&s.obj)
		return nil, nil
	})

	r := <-resultCh
	s.mu.Lock()
	s.poisoned = true
	s.mu.Unlock()
	return r.err
}
