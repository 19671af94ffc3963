// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](0)
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	c.Set("a", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")
	_, _ = c.Get(1) // 2 is now the oldest
	c.Set(3, "three")

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(2)
	assert.False(t, ok, "oldest entry evicted")
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[float64, int](4)
	calls := 0
	create := func() int {
		calls++
		return calls
	}

	assert.Equal(t, 1, c.GetOrCreate(12, create))
	assert.Equal(t, 1, c.GetOrCreate(12, create))
	assert.Equal(t, 2, c.GetOrCreate(24, create))
	assert.Equal(t, 2, calls)

	st := c.Stats()
	assert.Equal(t, Stats{Len: 2, Limit: 4, Hits: 1, Misses: 2}, st)
}

func TestCache_GetOrCreateConcurrent(t *testing.T) {
	c := New[int, int](0)
	var mu sync.Mutex
	created := map[int]int{}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range 16 {
				c.GetOrCreate(k, func() int {
					mu.Lock()
					created[k]++
					mu.Unlock()
					return k * g
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, c.Len())
	for k, n := range created {
		assert.Equal(t, 1, n, "key %d created once", k)
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	assert.True(t, c.Delete("b"))
	assert.False(t, c.Delete("b"))
	assert.Equal(t, 2, c.Len())

	// The list stays consistent after a middle delete.
	c.Set("d", 4)
	c.Set("e", 5)
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	assert.Zero(t, c.Len())
	c.Set("x", 1)
	v, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
