// ABOUTME: Error taxonomy for the pool: sentinel errors for errors.Is, typed errors for errors.As.
// ABOUTME: Mirrors the shape of deadpool's managed::PoolError without carrying Rust's enum-of-variants design.
package pool

import (
	"errors"
	"fmt"
)

// Sentinel errors, checkable with errors.Is.
var (
	// ErrClosed is returned by Get/TryGet/TimeoutGet once Close has been called.
	ErrClosed = errors.New("pool: closed")

	// ErrNoRuntime is returned by Builder.Build when a timeout is configured
	// but no Runtime was supplied to run blocking work off the caller's goroutine.
	ErrNoRuntime = errors.New("pool: timeout configured but no runtime supplied")

	// ErrHandleConsumed is returned by Handle.Take when the handle has
	// already been taken or released.
	ErrHandleConsumed = errors.New("pool: handle already taken or released")

	// ErrHookAbort is wrapped into a HookError when a hook reports Abort.
	ErrHookAbort = errors.New("pool: hook aborted")

	// ErrTimeout matches any *TimeoutError via errors.Is, regardless of TimeoutType.
	ErrTimeout = errors.New("pool: timeout")
)

// TimeoutType identifies which suspension point a TimeoutError occurred at.
type TimeoutType int

const (
	TimeoutWait TimeoutType = iota
	TimeoutCreate
	TimeoutRecycle
)

func (t TimeoutType) String() string {
	switch t {
	case TimeoutWait:
		return "wait"
	case TimeoutCreate:
		return "create"
	case TimeoutRecycle:
		return "recycle"
	default:
		return "unknown"
	}
}

// TimeoutError reports that a configured Timeouts duration elapsed.
type TimeoutError struct {
	Type TimeoutType
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("pool: %s timeout elapsed", e.Type)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// BackendError wraps an error returned by a Manager's Create or Recycle.
// It is not generic over the manager's own error type: Go's errors.As
// already unwraps arbitrary error chains, so wrapping a concrete error
// type here loses nothing and avoids forcing every caller to parameterize
// a type they otherwise don't care about.
type BackendError struct {
	Op  string // "create" or "recycle"
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("pool: backend %s failed: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// HookError wraps an error returned by a hook that reported Abort.
type HookError struct {
	Stage string // "post_create", "pre_recycle", "post_recycle"
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("pool: %s hook aborted: %v", e.Stage, e.Err)
}

func (e *HookError) Unwrap() error {
	return errors.Join(ErrHookAbort, e.Err)
}
