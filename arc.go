package arc

import (
	"iter"
	"math"

	"github.com/djdv/go-arc/internal/list"
	"github.com/djdv/go-arc/internal/ring"
)

type (
	page[Key comparable, Value any] = list.Page[Key, Value]
	set[Key comparable, Value any]  = list.List[Key, Value]
	// Cache utilizes the Adaptive Replacement Cache algorithm.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		index          map[Key]*page[Key, Value]
		onEvict        func(Key, Value)
		t1, t2, b1, b2 set[Key, Value]
		capacity, p    int
		hits, misses   uint64
	}
)

// Page owners.
const (
	_             = iota
	recent        // T1
	frequent      // T2
	recentGhost   // B1
	frequentGhost // B2
)

const (
	// MinimumCapacity defines the lowest value supported by [New].
	// A zero capacity cache declines every insertion.
	MinimumCapacity = 0
	// MaximumCapacity defines the highest value supported by [New].
	// The directory holds up to twice the capacity in pages,
	// and the adaptation arithmetic must not overflow.
	MaximumCapacity = math.MaxInt / 2

	indexHint = 1 << 12
)

// New creates a [Cache] with the given capacity.
func New[Key comparable, Value any](capacity int, options ...Option[Key, Value]) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity || capacity > MaximumCapacity {
		return nil, capacityError(capacity)
	}
	cache := &Cache[Key, Value]{
		capacity: capacity,
		index:    make(map[Key]*page[Key, Value], min(capacity*2, indexHint)),
	}
	for _, apply := range options {
		apply(cache)
	}
	return cache, nil
}

// Get returns the Value for key if it is resident in the cache
// and records the access; otherwise it returns the zero value and false.
// A hit moves the key to the front of the frequent list.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	page, ok := c.resident(key)
	if !ok {
		c.misses++
		var zero Value
		return zero, false
	}
	c.hits++
	c.move(page, frequent)
	return page.Value, true
}

// Peek returns the Value for key if it is resident,
// without recording the access.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	if page, ok := c.resident(key); ok {
		return page.Value, true
	}
	var zero Value
	return zero, false
}

// Contains reports whether key is resident,
// without recording the access.
func (c *Cache[Key, _]) Contains(key Key) bool {
	_, ok := c.resident(key)
	return ok
}

// Load returns the cached value for key (if resident). Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Put(key, value)
	return value, nil
}

// Put inserts or updates key with value.
//
// A resident key is updated in place and treated as an access.
// A key remembered by one of the ghost lists adapts the
// recent/frequent balance and is readmitted as frequent.
// Any other key is admitted as recent, replacing a resident
// page if the cache is full.
func (c *Cache[Key, Value]) Put(key Key, value Value) {
	if c.capacity == 0 {
		return
	}
	page, found := c.index[key]
	if !found {
		c.admit(key, value)
	} else {
		switch page.Owner {
		case recent, frequent:
			page.Value = value
			c.move(page, frequent)
		case recentGhost:
			c.increaseTarget()
			c.readmit(page, value, false)
		case frequentGhost:
			c.decreaseTarget()
			c.readmit(page, value, true)
		}
	}
	if debugging {
		c.checkInvariants()
	}
}

// Remove deletes key from the cache and from its history.
// It reports whether a resident value was removed.
func (c *Cache[Key, _]) Remove(key Key) bool {
	page, found := c.index[key]
	if !found {
		return false
	}
	wasResident := isResident(page)
	c.unlink(page)
	return wasResident
}

// Len returns the number of resident pages.
func (c *Cache[_, _]) Len() int {
	return c.t1.Len() + c.t2.Len()
}

// Capacity returns the maximum number of resident pages.
func (c *Cache[_, _]) Capacity() int { return c.capacity }

// Clear discards every page, the access history,
// the adaptation target and the hit counters.
func (c *Cache[_, _]) Clear() {
	c.t1.Init()
	c.t2.Init()
	c.b1.Init()
	c.b2.Init()
	clear(c.index)
	c.p = 0
	c.hits, c.misses = 0, 0
}

// Keys returns an iterator over the keys of resident pages.
// Recent pages are yielded before frequent pages,
// each most recently used first.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for page := range c.t1.All() {
			if !yield(page.Name) {
				return
			}
		}
		for page := range c.t2.All() {
			if !yield(page.Name) {
				return
			}
		}
	}
}

func (c *Cache[Key, Value]) resident(key Key) (*page[Key, Value], bool) {
	page, found := c.index[key]
	if !found || !isResident(page) {
		return nil, false
	}
	return page, true
}

func isResident[Key comparable, Value any](page *page[Key, Value]) bool {
	return page.Owner == recent || page.Owner == frequent
}

// admit inserts a key that is neither resident nor remembered.
func (c *Cache[Key, Value]) admit(key Key, value Value) {
	if c.directoryLen() >= 2*c.capacity {
		c.pruneGhosts()
	}
	if c.Len() >= c.capacity {
		c.replace(false)
	}
	c.link(ring.New(key, value), recent)
}

// readmit resurrects a ghost page as a frequent resident page.
func (c *Cache[Key, Value]) readmit(ghost *page[Key, Value], value Value, fromB2 bool) {
	if debugging {
		assert(!isResident(ghost), "readmitting a resident page")
	}
	// Detach first so replacement can never prune the page being readmitted.
	c.unlink(ghost)
	if c.Len() >= c.capacity {
		c.replace(fromB2)
	}
	ghost.Value = value
	c.link(ghost, frequent)
}

func (c *Cache[_, _]) directoryLen() int {
	return c.t1.Len() + c.t2.Len() + c.b1.Len() + c.b2.Len()
}

func (c *Cache[Key, Value]) list(owner int) *set[Key, Value] {
	switch owner {
	case recent:
		return &c.t1
	case frequent:
		return &c.t2
	case recentGhost:
		return &c.b1
	case frequentGhost:
		return &c.b2
	}
	panic("page has no owner")
}

// link pushes a detached page to the front of the owner's list
// and indexes it.
func (c *Cache[Key, Value]) link(page *page[Key, Value], owner int) {
	if debugging {
		assert(page.Detached(), "linking a page that is still in a list")
	}
	c.list(owner).PushFront(page)
	page.Owner = owner
	c.index[page.Name] = page
}

// unlink removes a page from its list and from the index.
func (c *Cache[Key, Value]) unlink(page *page[Key, Value]) {
	c.list(page.Owner).Remove(page)
	page.Owner = 0
	delete(c.index, page.Name)
}

// move relinks an indexed page to the front of the owner's list.
// The page remains its own locator, so the index entry stays valid.
func (c *Cache[Key, Value]) move(page *page[Key, Value], owner int) {
	if page.Owner == owner {
		c.list(owner).MoveToFront(page)
		return
	}
	c.list(page.Owner).Remove(page)
	c.list(owner).PushFront(page)
	page.Owner = owner
}
