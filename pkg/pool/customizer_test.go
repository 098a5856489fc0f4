// ABOUTME: Tests for Customize: wrapping a Manager[T] into a Manager[W] via a mapping pair.
package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type typedClient struct {
	conn  counterResource
	calls int
}

func TestCustomize_WrapsCreatedResource(t *testing.T) {
	inner := &counterManager{}
	mgr := Customize[counterResource, typedClient](
		inner,
		func(r counterResource) typedClient { return typedClient{conn: r} },
		func(c *typedClient) *counterResource { return &c.conn },
	)

	p := NewWithConfig[typedClient](mgr, Config{MaxSize: 4})
	h, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, h.Get().conn.id)
	h.Release()
}
