// ABOUTME: Tests for Registry: register/get/deregister/closeAll across differently-typed pools.
package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterGetDeregister(t *testing.T) {
	r := NewRegistry()
	p := New[counterResource](&counterManager{}, 4)

	require.NoError(t, Register(r, "primary", p))

	got, ok := Get[counterResource](r, "primary")
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = Get[string](r, "primary")
	assert.False(t, ok, "wrong type assertion should fail, not panic")

	r.Deregister("primary")
	_, ok = Get[counterResource](r, "primary")
	assert.False(t, ok)
}

func TestRegistry_RegisterDuplicateNameFails(t *testing.T) {
	r := NewRegistry()
	p1 := New[counterResource](&counterManager{}, 4)
	p2 := New[counterResource](&counterManager{}, 4)

	require.NoError(t, Register(r, "dup", p1))
	err := Register(r, "dup", p2)
	assert.Error(t, err)
}

func TestRegistry_CloseAllClosesEveryPool(t *testing.T) {
	r := NewRegistry()
	p := New[counterResource](&counterManager{}, 4)
	require.NoError(t, Register(r, "a", p))

	h, err := p.Get(context.Background())
	require.NoError(t, err)
	h.Release()

	r.CloseAll()

	_, err = p.Get(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, r.Names())
}
