package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(time.Minute, time.Minute)

	_, ok := mc.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, mc.Set(ctx, "page=1", []byte(`{"items":[]}`), 0))
	v, ok := mc.Get(ctx, "page=1")
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, string(v))

	stats := mc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, 1, stats.Items)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(time.Minute, 0)

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)

	_, ok := mc.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(time.Minute, 0)

	require.NoError(t, mc.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, mc.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, mc.Delete(ctx, "a"))
	_, ok := mc.Get(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, int64(1), mc.Stats().Evictions)

	require.NoError(t, mc.Clear(ctx))
	assert.Equal(t, 0, mc.Stats().Items)
}
