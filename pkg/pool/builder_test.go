// ABOUTME: Tests for Builder: ErrNoRuntime validation, and that fluent config actually reaches the Pool.
package pool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_RequiresRuntimeWhenTimeoutSet(t *testing.T) {
	_, err := NewBuilder[counterResource](&counterManager{}).
		WaitTimeout(time.Second).
		Build()
	assert.ErrorIs(t, err, ErrNoRuntime)
}

func TestBuilder_BuildsWithRuntimeSupplied(t *testing.T) {
	p, err := NewBuilder[counterResource](&counterManager{}).
		MaxSize(4).
		WaitTimeout(time.Second).
		WithRuntime(NewGoroutineRuntime()).
		Build()
	require.NoError(t, err)

	h, err := p.Get(context.Background())
	require.NoError(t, err)
	h.Release()
}

func TestBuilder_NoTimeoutsNeedsNoRuntime(t *testing.T) {
	p, err := NewBuilder[counterResource](&counterManager{}).MaxSize(2).Build()
	require.NoError(t, err)
	assert.Equal(t, 2, p.Status().MaxSize)
}
