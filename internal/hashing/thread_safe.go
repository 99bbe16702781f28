package hashing

import "sync"

// ThreadSafePerftCache wraps PerftCache with mutex protection so perft
// workers can share one table.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.Mutex
}

// NewThreadSafePerftCache creates a new shared cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Lookup returns the stored count for a position hash at depth.
func (c *ThreadSafePerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(hash, depth)
}

// Store records a count.
func (c *ThreadSafePerftCache) Store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns how many lookups found an entry.
func (c *ThreadSafePerftCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
