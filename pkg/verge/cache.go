package verge

import (
	"context"
	"errors"
	"strconv"
	"sync"
)

// Cache is the backend for the name/key lookup cache used by reference
// resolution. Entries are added lazily on first resolution and never
// invalidated within the cache's lifetime; stale entries are an accepted
// risk of the session-scoped design.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// Static errors for cache backends.
var (
	ErrCacheKeyNotFound = errors.New("key not found in cache")
	ErrCacheDisabled    = errors.New("cache disabled")
)

// MemoryCache is a mutex-guarded in-process cache. Concurrent resolutions
// of the same name may both insert; values are identical so last write
// wins safely.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]string),
	}
}

// Get retrieves a cached value.
func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]
	if !ok {
		return "", ErrCacheKeyNotFound
	}

	return value, nil
}

// Set stores a value.
func (c *MemoryCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value

	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all values.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string)

	return nil
}

// Has checks for a key without returning its value.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[key]

	return ok
}

// NoOpCache disables caching: every lookup misses.
type NoOpCache struct{}

// NewNoOpCache creates a cache that stores nothing.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (string, error) {
	return "", ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key, value string) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always reports false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}

// NameKeyCache maps (family, name) to key and (family, key) to name on
// top of a Cache backend. One logical cache serves both directions.
type NameKeyCache struct {
	backend Cache
}

// NewNameKeyCache wraps a backend; nil means in-memory.
func NewNameKeyCache(backend Cache) *NameKeyCache {
	if backend == nil {
		backend = NewMemoryCache()
	}

	return &NameKeyCache{backend: backend}
}

// LookupKey returns the cached key for a name in a family.
func (c *NameKeyCache) LookupKey(ctx context.Context, family, name string) (int, bool) {
	value, err := c.backend.Get(ctx, "name."+family+"."+name)
	if err != nil {
		return 0, false
	}

	key, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return key, true
}

// LookupName returns the cached name for a key in a family.
func (c *NameKeyCache) LookupName(ctx context.Context, family string, key int) (string, bool) {
	value, err := c.backend.Get(ctx, "key."+family+"."+strconv.Itoa(key))
	if err != nil {
		return "", false
	}

	return value, true
}

// Store records both directions of one resolution.
func (c *NameKeyCache) Store(ctx context.Context, family, name string, key int) {
	_ = c.backend.Set(ctx, "name."+family+"."+name, strconv.Itoa(key))
	_ = c.backend.Set(ctx, "key."+family+"."+strconv.Itoa(key), name)
}
