package hashing

// perftKey identifies a subtree: a position and the depth below it.
type perftKey struct {
	hash  uint64
	depth int
}

// PerftCache remembers node counts of subtrees already enumerated.
type PerftCache struct {
	entries map[perftKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewPerftCache creates an empty cache. maxCapacity of 0 means unlimited.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for a position hash at depth.
func (c *PerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.entries[perftKey{hash, depth}]
	if ok {
		c.hits++
	}
	return nodes, ok
}

// Store records a count. Once the cache is full new entries are dropped.
func (c *PerftCache) Store(hash uint64, depth int, nodes uint64) {
	if c.IsFull() {
		return
	}
	c.entries[perftKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.entries)
}

// Hits returns how many lookups found an entry.
func (c *PerftCache) Hits() int {
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears all entries and the hit counter.
func (c *PerftCache) Reset() {
	c.entries = make(map[perftKey]uint64)
	c.hits = 0
}
