// ABOUTME: Tests for Handle: double-release safety, Take-then-Release no-op, and Release pushing back to the idle queue.
package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_DoubleReleaseIsSafeNoOp(t *testing.T) {
	p := New[counterResource](&counterManager{}, 4)
	h, err := p.Get(context.Background())
	require.NoError(t, err)

	h.Release()
	assert.NotPanics(t, func() { h.Release() })

	status := p.Status()
	assert.EqualValues(t, 1, status.Size)
	assert.Equal(t, 1, status.Available)
}

func TestHandle_ReleaseAfterTakeIsNoOp(t *testing.T) {
	p := New[counterResource](&counterManager{}, 4)
	h, err := p.Get(context.Background())
	require.NoError(t, err)

	_, err = h.Take()
	require.NoError(t, err)

	h.Release()
	assert.EqualValues(t, 0, p.Status().Size)
	assert.Equal(t, 0, p.Status().Available)
}

func TestHandle_MetricsTrackUseCount(t *testing.T) {
	p := New[counterResource](&counterManager{}, 4)
	h, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, h.Metrics().Uses) // Uses only bumps on Release
	h.Release()

	// The released resource gets recycled back out; its Uses from the prior
	// lease (bumped at Release) travels with it.
	h2, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, h2.Metrics().Uses)
	h2.Release()
}
