// Package lru implements a recency-only cache sharing the
// [arc.Policy] contract.
package lru

import (
	"fmt"
	"iter"

	"github.com/djdv/go-arc"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Cache evicts the least recently used entry when full.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Cache[Key comparable, Value any] struct {
	entries  *simplelru.LRU[Key, Value] // nil for a zero capacity cache.
	capacity int
}

// New creates a [Cache] with the given capacity.
// A capacity of zero declines every insertion.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < 0 {
		return nil, fmt.Errorf(
			"%w: must be >=0 but %d was requested",
			arc.ErrInvalidCapacity, capacity)
	}
	cache := &Cache[Key, Value]{capacity: capacity}
	if capacity == 0 {
		return cache, nil
	}
	entries, err := simplelru.NewLRU[Key, Value](capacity, nil)
	if err != nil {
		return nil, err
	}
	cache.entries = entries
	return cache, nil
}

// Get returns the Value for key and marks it most recently used;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	if c.entries == nil {
		var zero Value
		return zero, false
	}
	return c.entries.Get(key)
}

// Put inserts or updates key with value and marks it most recently used,
// evicting the least recently used entry if the cache is full.
func (c *Cache[Key, Value]) Put(key Key, value Value) {
	if c.entries == nil {
		return
	}
	c.entries.Add(key, value)
}

// Peek returns the Value for key without updating its recency.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	if c.entries == nil {
		var zero Value
		return zero, false
	}
	return c.entries.Peek(key)
}

// Contains reports whether key is present without updating its recency.
func (c *Cache[Key, _]) Contains(key Key) bool {
	return c.entries != nil && c.entries.Contains(key)
}

// Remove deletes key, reporting whether it was present.
func (c *Cache[Key, _]) Remove(key Key) bool {
	return c.entries != nil && c.entries.Remove(key)
}

// Len returns the number of entries.
func (c *Cache[_, _]) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache[_, _]) Capacity() int { return c.capacity }

// Clear discards every entry.
func (c *Cache[_, _]) Clear() {
	if c.entries != nil {
		c.entries.Purge()
	}
}

// Keys returns an iterator over the keys, most recently used first.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if c.entries == nil {
			return
		}
		keys := c.entries.Keys() // Oldest first.
		for i := len(keys) - 1; i >= 0; i-- {
			if !yield(keys[i]) {
				return
			}
		}
	}
}
