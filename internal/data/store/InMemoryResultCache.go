package store

import (
	"context"
	"sync"
	"time"
)

const defaultInMemoryCacheEntries = 1024

type cacheEntry struct {
	value   CachedSearch
	expires time.Time
}

// InMemoryResultCache is the fallback cache when redis is offline. When it is
// full the whole map is dropped.
type InMemoryResultCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func InitInMemoryResultCache(ttl time.Duration) *InMemoryResultCache {
	return &InMemoryResultCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: defaultInMemoryCacheEntries,
		now:        time.Now,
	}
}

func (c *InMemoryResultCache) Get(ctx context.Context, key string) (CachedSearch, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return CachedSearch{}, ErrCacheMiss
	}
	return entry.value, nil
}

func (c *InMemoryResultCache) Set(ctx context.Context, key string, value CachedSearch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = cacheEntry{value: value, expires: c.now().Add(c.ttl)}
	return nil
}

func (c *InMemoryResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
