// ABOUTME: Tests for idleQueue's FIFO and LIFO ordering.
package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdleQueue_FIFO(t *testing.T) {
	q := newIdleQueue[int](QueueFifo)
	q.push(1, Metrics{})
	q.push(2, Metrics{})
	q.push(3, Metrics{})

	e, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, 1, e.obj)

	e, ok = q.pop()
	require.True(t, ok)
	assert.Equal(t, 2, e.obj)
}

func TestIdleQueue_LIFO(t *testing.T) {
	q := newIdleQueue[int](QueueLifo)
	q.push(1, Metrics{})
	q.push(2, Metrics{})
	q.push(3, Metrics{})

	e, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, 3, e.obj)

	e, ok = q.pop()
	require.True(t, ok)
	assert.Equal(t, 2, e.obj)
}

func TestIdleQueue_EmptyPopReturnsFalse(t *testing.T) {
	q := newIdleQueue[int](QueueFifo)
	_, ok := q.pop()
	assert.False(t, ok)
}

func TestIdleQueue_DrainEmptiesQueue(t *testing.T) {
	q := newIdleQueue[int](QueueFifo)
	q.push(1, Metrics{})
	q.push(2, Metrics{})

	drained := q.drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, q.len())
}
