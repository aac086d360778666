package insights

import (
	"sync"
	"time"
)

// DefaultTTL is how long a consolidated insight bundle stays valid.
const DefaultTTL = 30 * time.Minute

type cacheEntry struct {
	bundle    *Bundle
	createdAt time.Time
}

// Cache is a TTL-bounded bundle cache. Staleness is enforced inside Get so
// call sites never see an expired entry; cardinality is bounded by active
// mentor/session pairs, so TTL expiry is the only eviction needed.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

// NewCache creates a cache with the given TTL. A non-positive ttl falls back
// to DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached bundle for key, or nil if absent or older than the
// TTL. Expired entries are dropped on read.
func (c *Cache) Get(key string) *Bundle {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		delete(c.entries, key)
		return nil
	}
	return e.bundle
}

// Put stores or overwrites the bundle for key.
func (c *Cache) Put(key string, b *Bundle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{bundle: b, createdAt: c.now()}
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
