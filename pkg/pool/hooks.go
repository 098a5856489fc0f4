// ABOUTME: Hooks registry: post_create, pre_recycle, and post_recycle callbacks with Ok/Continue/Abort verdicts.
// ABOUTME: Hooks run in registration order; the first non-Ok verdict short-circuits the remaining hooks.
package pool

import "context"

// HookResult is the verdict a hook returns after inspecting a resource.
type HookResult int

const (
	// HookOk means the resource is fine; remaining hooks in the stage run as normal.
	HookOk HookResult = iota
	// HookContinue means the resource should be discarded and the acquire
	// loop should retry from scratch (create or recycle another one).
	HookContinue
	// HookAbort means the resource should be discarded and the error should
	// propagate to the caller of Get/TryGet/TimeoutGet.
	HookAbort
)

func (r HookResult) String() string {
	switch r {
	case HookOk:
		return "ok"
	case HookContinue:
		return "continue"
	case HookAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// HookFunc inspects or mutates a freshly created/recycled resource.
type HookFunc[T any] func(ctx context.Context, obj *T, m *Metrics) (HookResult, error)

// Hooks is the ordered set of callbacks run at each lifecycle stage.
type Hooks[T any] struct {
	PostCreate  []HookFunc[T]
	PreRecycle  []HookFunc[T]
	PostRecycle []HookFunc[T]
}

// runHooks executes a stage's hooks in order, stopping at the first non-Ok verdict.
func runHooks[T any](ctx context.Context, stage string, hooks []HookFunc[T], obj *T, m *Metrics) (HookResult, error) {
	for _, h := range hooks {
		verdict, err := h(ctx, obj, m)
		switch verdict {
		case HookOk:
			continue
		case HookContinue:
			return HookContinue, err
		case HookAbort:
			return HookAbort, &HookError{Stage: stage, Err: err}
		default:
			return HookAbort, &HookError{Stage: stage, Err: err}
		}
	}
	return HookOk, nil
}
