// Package cache provides a small bounded in-memory cache.
//
// It backs the process-wide lookups in quickx (resolved time zones, message
// printers per culture). Expired entries are dropped lazily; there is no
// background goroutine, so a Cache needs no Close.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value      V
	stored     time.Time
	expiration time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiration.IsZero() && now.After(e.expiration)
}

// Cache is a thread-safe in-memory cache with optional TTL support
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	items    map[K]*entry[V]
	maxItems int
	ttl      time.Duration

	hits   int64
	misses int64
}

// Config holds cache configuration. A zero TTL keeps entries until evicted.
type Config struct {
	MaxItems int
	TTL      time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{MaxItems: 256}
}

// New creates a new cache instance
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}
	return &Cache[K, V]{
		items:    make(map[K]*entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
	}
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if ok && e.expired(time.Now()) {
		delete(c.items, key)
		ok = false
	}
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Set stores a value with the default TTL
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evict(now)
	}

	e := &entry[V]{value: value, stored: now}
	if ttl > 0 {
		e.expiration = now.Add(ttl)
	}
	c.items[key] = e
}

// GetOrSet returns the cached value or computes and stores it. Errors from
// fn are returned and nothing is stored.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}
	val, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, val)
	return val, nil
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*entry[V])
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns hit and miss counters and the hit rate in percent
func (c *Cache[K, V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hits, misses = c.hits, c.misses
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// evict drops expired entries, or the oldest one if none expired. Caller
// holds the lock.
func (c *Cache[K, V]) evict(now time.Time) {
	removed := false
	var oldestKey K
	var oldest time.Time
	for key, e := range c.items {
		if e.expired(now) {
			delete(c.items, key)
			removed = true
			continue
		}
		if oldest.IsZero() || e.stored.Before(oldest) {
			oldestKey, oldest = key, e.stored
		}
	}
	if !removed && !oldest.IsZero() {
		delete(c.items, oldestKey)
	}
}
