// Package ring is a specialized adaption of `container/ring` for use as
// the page type of an ARC directory.
package ring

type (
	// A Ring is an element of a circular list, or ring.
	// Rings do not have a beginning or end; a pointer to any ring element
	// serves as reference to the entire ring. The zero value for a Ring
	// is a one-element ring with a zero Value.
	Ring[Key comparable, Value any] struct {
		next, prev *Ring[Key, Value]
		Value      Value
		Metadata[Key]
	}
	// Metadata stores the directory state of a cache page.
	Metadata[Key comparable] struct {
		// Name is the identifier of the data this metadata is bound to.
		Name Key
		// Owner identifies the ordered set currently holding the page.
		// Zero means the page is not held by any set.
		// The meaning of non-zero values is chosen by the set's user
		// (a list tag for ARC, an access count for LFU).
		Owner int
	}
)

// New returns a detached one-element ring for key.
func New[Key comparable, Value any](key Key, value Value) *Ring[Key, Value] {
	r := &Ring[Key, Value]{
		Value:    value,
		Metadata: Metadata[Key]{Name: key},
	}
	return r.init()
}

func (r *Ring[Key, Value]) init() *Ring[Key, Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Key, Value]) Next() *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Key, Value]) Prev() *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Move moves n elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element. r must not be empty.
func (r *Ring[Key, Value]) Move(n int) *Ring[Key, Value] {
	if r.next == nil {
		return r.init()
	}
	switch {
	case n < 0:
		for ; n < 0; n++ {
			r = r.prev
		}
	case n > 0:
		for ; n > 0; n-- {
			r = r.next
		}
	}
	return r
}

// Link connects ring r with ring s such that r.Next()
// becomes s and returns the original value for r.Next().
// r must not be empty.
//
// If r and s point to the same ring, linking
// them removes the elements between r and s from the ring.
// The removed elements form a subring and the result is a
// reference to that subring.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r. The result points to the element following the
// last element of s after insertion.
func (r *Ring[Key, Value]) Link(s *Ring[Key, Value]) *Ring[Key, Value] {
	n := r.Next()
	if s != nil {
		p := s.Prev()
		// Note: Cannot use multiple assignment because
		// evaluation order of LHS is not specified.
		r.next = s
		s.prev = r
		n.prev = p
		p.next = n
	}
	return n
}

// Unlink removes n elements from the ring r, starting
// at r.Next(). The result is the removed subring.
// r must not be empty and must hold more than n elements.
func (r *Ring[Key, Value]) Unlink(n int) *Ring[Key, Value] {
	if n <= 0 {
		return nil
	}
	return r.Link(r.Move(n + 1))
}

// Detached reports whether r is a one-element ring.
func (r *Ring[Key, Value]) Detached() bool {
	return r.next == nil || r.next == r
}
