package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "schedule:abc", []byte(`{"periods":36}`), 0))

	value, ok := c.Get(ctx, "schedule:abc")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"periods":36}`), value)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("old"), 0))
	require.NoError(t, c.Set(ctx, "key", []byte("new"), 0))

	value, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short-lived", []byte("value"), 10*time.Millisecond))

	_, ok := c.Get(ctx, "short-lived")
	assert.True(t, ok)

	time.Sleep(25 * time.Millisecond)

	_, ok = c.Get(ctx, "short-lived")
	assert.False(t, ok, "entry should have expired")
}
