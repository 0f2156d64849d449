// Package lfu implements a frequency-only cache sharing the
// [arc.Policy] contract.
package lfu

import (
	"fmt"
	"iter"

	"github.com/djdv/go-arc"
	"github.com/djdv/go-arc/internal/list"
	"github.com/djdv/go-arc/internal/ring"
)

type (
	page[Key comparable, Value any]   = list.Page[Key, Value]
	bucket[Key comparable, Value any] = list.List[Key, Value]
	// Cache evicts the entry with the lowest access count when full.
	// Ties are broken by recency: the least recently used entry
	// of the lowest count goes first.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		index map[Key]*page[Key, Value]
		// Pages are owned by the bucket of their access count.
		buckets            map[int]*bucket[Key, Value]
		capacity, minCount int
	}
)

const indexHint = 1 << 12

// New creates a [Cache] with the given capacity.
// A capacity of zero declines every insertion.
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < 0 {
		return nil, fmt.Errorf(
			"%w: must be >=0 but %d was requested",
			arc.ErrInvalidCapacity, capacity)
	}
	return &Cache[Key, Value]{
		capacity: capacity,
		index:    make(map[Key]*page[Key, Value], min(capacity, indexHint)),
		buckets:  make(map[int]*bucket[Key, Value]),
	}, nil
}

// Get returns the Value for key and increments its access count;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	page, ok := c.index[key]
	if !ok {
		var zero Value
		return zero, false
	}
	c.increment(page)
	return page.Value, true
}

// Put inserts key with an access count of one,
// evicting the least frequently used entry if the cache is full.
// An existing key is updated and its access count incremented.
func (c *Cache[Key, Value]) Put(key Key, value Value) {
	if c.capacity == 0 {
		return
	}
	if page, ok := c.index[key]; ok {
		page.Value = value
		c.increment(page)
		return
	}
	if len(c.index) >= c.capacity {
		c.evict()
	}
	const firstAccess = 1
	c.link(ring.New(key, value), firstAccess)
	c.minCount = firstAccess
}

// Peek returns the Value for key without counting the access.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	if page, ok := c.index[key]; ok {
		return page.Value, true
	}
	var zero Value
	return zero, false
}

// Contains reports whether key is present without counting the access.
func (c *Cache[Key, _]) Contains(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Count returns the access count of key, or 0 if it is not present.
func (c *Cache[Key, _]) Count(key Key) int {
	if page, ok := c.index[key]; ok {
		return page.Owner
	}
	return 0
}

// Remove deletes key, reporting whether it was present.
func (c *Cache[Key, _]) Remove(key Key) bool {
	page, ok := c.index[key]
	if !ok {
		return false
	}
	c.unlink(page)
	delete(c.index, key)
	return true
}

// Len returns the number of entries.
func (c *Cache[_, _]) Len() int { return len(c.index) }

// Capacity returns the maximum number of entries.
func (c *Cache[_, _]) Capacity() int { return c.capacity }

// Clear discards every entry and access count.
func (c *Cache[_, _]) Clear() {
	clear(c.index)
	clear(c.buckets)
	c.minCount = 0
}

// Keys returns an iterator over the (unordered) keys.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for key := range c.index {
			if !yield(key) {
				return
			}
		}
	}
}

func (c *Cache[Key, Value]) increment(page *page[Key, Value]) {
	count := page.Owner
	c.unlink(page)
	if c.minCount == count && c.buckets[count] == nil {
		c.minCount = count + 1
	}
	c.link(page, count+1)
}

func (c *Cache[Key, Value]) evict() {
	victims, ok := c.buckets[c.minCount]
	if !ok {
		// Stale after Remove; find the lowest populated count.
		c.minCount = c.lowestCount()
		victims = c.buckets[c.minCount]
	}
	victim := victims.Back()
	c.unlink(victim)
	delete(c.index, victim.Name)
}

func (c *Cache[_, _]) lowestCount() int {
	lowest := 0
	for count := range c.buckets {
		if lowest == 0 || count < lowest {
			lowest = count
		}
	}
	return lowest
}

// link pushes a detached page to the front of the count's bucket and indexes it.
func (c *Cache[Key, Value]) link(page *page[Key, Value], count int) {
	pages, ok := c.buckets[count]
	if !ok {
		pages = new(bucket[Key, Value])
		c.buckets[count] = pages
	}
	pages.PushFront(page)
	page.Owner = count
	c.index[page.Name] = page
}

// unlink removes a page from its bucket, dropping the bucket once empty.
func (c *Cache[Key, Value]) unlink(page *page[Key, Value]) {
	pages := c.buckets[page.Owner]
	pages.Remove(page)
	if pages.Len() == 0 {
		delete(c.buckets, page.Owner)
	}
	page.Owner = 0
}
