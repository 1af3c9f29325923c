// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Thread-safe store used to avoid duplicate settings fetches

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	data      any
	expiresAt time.Time
}

// Cache is a keyed, time-boxed store. It is never relied on for
// correctness, only for skipping duplicate fetches within the TTL.
type Cache struct {
	store sync.Map
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// New creates a cache with the given default TTL and starts its sweeper
func New(ttl time.Duration) *Cache {
	c := &Cache{
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached value for key, or nil/false when absent or expired
func (c *Cache) Get(key string) (any, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		slog.Debug("cache expired", "key", key)
		return nil, false
	}

	slog.Debug("cache hit", "key", key)
	return e.data, true
}

// Set stores a value under the default TTL
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.store.Store(key, entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	})
	slog.Debug("cache set", "key", key, "ttl", ttl)
}

// Delete removes a key
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Stop ends the background sweeper. Safe to call more than once.
func (c *Cache) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.store.Range(func(key, val any) bool {
				if now.After(val.(entry).expiresAt) {
					c.store.Delete(key)
				}
				return true
			})
		}
	}
}
