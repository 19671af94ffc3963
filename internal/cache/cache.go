// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
// A limit of 0 or less means unlimited.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K, V]
	order   lruList[K, V]
	limit   int

	hits, misses uint64
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		limit:   limit,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(n)
	return n.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, or stores and returns
// create(). create runs under the cache lock, so it is called at most once
// per missing key.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value
	}
	c.misses++
	v := create()
	c.set(key, v)
	return v
}

// set stores the value. The caller holds c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return
	}
	n := &lruNode[K, V]{key: key, value: value}
	c.entries[key] = n
	c.order.pushFront(n)

	if c.limit > 0 && len(c.entries) > c.limit {
		if old := c.order.removeOldest(); old != nil {
			delete(c.entries, old.key)
		}
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(n)
	delete(c.entries, key)
	return true
}

// Clear removes every entry. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*lruNode[K, V])
	c.order = lruList[K, V]{}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats contains cache statistics.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}
