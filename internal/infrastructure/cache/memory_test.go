package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	hit, err := c.Get(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "key", payload{Name: "dashboard", Count: 3}, 0))

	var got payload
	hit, err = c.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "dashboard", Count: 3}, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	clock := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	require.NoError(t, c.Set(ctx, "key", payload{Name: "x"}, 5*time.Minute))

	var got payload
	hit, err := c.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, hit)

	clock = clock.Add(5*time.Minute + time.Second)
	hit, err = c.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "key", payload{Count: 1}, 0))
	require.NoError(t, c.Set(ctx, "key", payload{Count: 2}, 0))

	var got payload
	hit, err := c.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 2, got.Count)
}

func TestMemoryCacheDeleteAndTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", payload{}, time.Minute))
	require.NoError(t, c.Set(ctx, "b", payload{}, 0))

	ttl, err := c.TTL(ctx, "a")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	ttl, err = c.TTL(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, -1*time.Nanosecond, ttl)

	require.NoError(t, c.Delete(ctx, "a", "b"))

	ttl, err = c.TTL(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, -2*time.Nanosecond, ttl)
}
