package cache

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL applies when Set is called without a positive TTL
const DefaultTTL = 5 * time.Minute

// MemoryCache is an in-process TTL cache
type MemoryCache struct {
	store *gocache.Cache

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64
}

// NewMemoryCache creates a cache whose janitor sweeps expired entries every cleanupInterval
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	mc := &MemoryCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
	mc.store.OnEvicted(func(string, interface{}) {
		mc.evictions.Add(1)
	})
	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := mc.store.Get(key)
	if !ok {
		mc.misses.Add(1)
		return nil, false
	}
	b, ok := v.([]byte)
	if !ok {
		mc.misses.Add(1)
		return nil, false
	}
	mc.hits.Add(1)
	return b, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	mc.store.Set(key, value, ttl)
	mc.sets.Add(1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.store.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.store.Flush()
	return nil
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	return CacheStats{
		Hits:      mc.hits.Load(),
		Misses:    mc.misses.Load(),
		Sets:      mc.sets.Load(),
		Evictions: mc.evictions.Load(),
		Items:     mc.store.ItemCount(),
	}
}
