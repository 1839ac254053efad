// Package cache holds the in-memory mirror the data source serves reads from.
//
// Entries never expire on their own. They are replaced by writes and dropped by
// explicit invalidation. Every mutation bumps a generation counter so a reader
// that went to the store can tell whether its result is still current before
// publishing it.
package cache

import (
	"cmp"
	"slices"
	"sync"
)

// Stats counts lookups served by a Cache
type Stats struct {
	Total int
	Hits  int
}

// Cache is a concurrency-safe map with explicit invalidation
type Cache[K cmp.Ordered, V any] struct {
	mu         sync.Mutex
	entries    map[K]V
	generation uint64
	total      int
	hits       int
}

func New[K cmp.Ordered, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the value stored under key and whether it was present
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	v, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return v, ok
}

// Set stores value under key unconditionally
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	c.generation++
}

// Generation returns a token that changes whenever the cache is mutated
func (c *Cache[K, V]) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation
}

// SetIfCurrent stores the values only if nothing changed since gen was read.
// It reports whether the values were stored.
func (c *Cache[K, V]) SetIfCurrent(gen uint64, values map[K]V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}
	for k, v := range values {
		c.entries[k] = v
	}
	c.generation++
	return true
}

// Delete drops the entry under key
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.generation++
}

// DeleteFunc drops every entry for which del returns true and returns how many were dropped
func (c *Cache[K, V]) DeleteFunc(del func(K, V) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, v := range c.entries {
		if del(k, v) {
			delete(c.entries, k)
			n++
		}
	}
	c.generation++
	return n
}

// Purge drops every entry
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.generation++
}

// Values returns the entries accepted by keep, ordered by key.
// A nil keep returns every entry.
func (c *Cache[K, V]) Values(keep func(K, V) bool) []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.entries))
	for k, v := range c.entries {
		if keep == nil || keep(k, v) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = c.entries[k]
	}
	return out
}

// Len returns the number of entries
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Total: c.total,
		Hits:  c.hits,
	}
}
