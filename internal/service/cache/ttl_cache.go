package cache

import (
	"sync"
	"time"
)

type entry struct {
	v   any
	ins time.Time
	exp time.Time
}

// TTLCache is a small in-memory store with lazy expiry. Each indicator
// fetch owns one instance holding at most a handful of keys, so there
// is no background eviction; stale entries are dropped on read.
type TTLCache struct {
	mu      sync.RWMutex
	m       map[string]entry
	maxSize int
}

// NewTTLCache creates a cache bounded to maxSize entries. When full,
// Set evicts the oldest-inserted entry.
func NewTTLCache(maxSize int) *TTLCache {
	if maxSize <= 0 {
		maxSize = 8
	}
	return &TTLCache{m: make(map[string]entry), maxSize: maxSize}
}

// Get returns the stored value if the entry exists and its age is
// strictly less than its ttl.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.exp.IsZero() && !time.Now().Before(e.exp) {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.v, true
}

// Set stores v under key for ttl. A non-positive ttl stores the entry
// without expiry.
func (c *TTLCache) Set(key string, v any, ttl time.Duration) {
	now := time.Now()
	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	c.mu.Lock()
	if _, exists := c.m[key]; !exists && len(c.m) >= c.maxSize {
		c.evictOldest()
	}
	c.m[key] = entry{v: v, ins: now, exp: exp}
	c.mu.Unlock()
}

// Delete removes a single entry.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}

// Clear removes all entries. Safe on an empty cache.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.m = make(map[string]entry)
	c.mu.Unlock()
}

// Len reports the number of live entries for tests and health output.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// caller holds c.mu
func (c *TTLCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.m {
		if first || e.ins.Before(oldest) {
			oldest = e.ins
			oldestKey = k
			first = false
		}
	}
	if !first {
		delete(c.m, oldestKey)
	}
}
