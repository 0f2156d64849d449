// Package list implements an ordered set of cache pages.
//
// Pages are linked into a ring around a sentinel element, so every
// operation other than iteration is O(1). The page itself is the
// locator; callers keep their own index from key to page.
package list

import (
	"iter"

	"github.com/djdv/go-arc/internal/ring"
)

type (
	// Page is an element of a [List].
	Page[Key comparable, Value any] = ring.Ring[Key, Value]
	// List is an ordered set of pages, most recently pushed first.
	// The zero value is an empty list ready to use.
	// A List must not be copied after first use.
	List[Key comparable, Value any] struct {
		root Page[Key, Value] // root.Next() is the front, root.Prev() the back.
		len  int
	}
)

// Init empties l. Pages that were linked into l must be discarded
// or re-initialized by the caller.
func (l *List[Key, Value]) Init() *List[Key, Value] {
	l.root = Page[Key, Value]{}
	l.len = 0
	return l
}

// Len returns the number of pages in l.
func (l *List[_, _]) Len() int { return l.len }

// Front returns the most recently pushed page, or nil.
func (l *List[Key, Value]) Front() *Page[Key, Value] {
	if l.len == 0 {
		return nil
	}
	return l.root.Next()
}

// Back returns the least recently pushed page, or nil.
func (l *List[Key, Value]) Back() *Page[Key, Value] {
	if l.len == 0 {
		return nil
	}
	return l.root.Prev()
}

// PushFront links a detached page at the front of l.
func (l *List[Key, Value]) PushFront(page *Page[Key, Value]) {
	l.root.Link(page)
	l.len++
}

// Remove unlinks page from l. page must be an element of l.
func (l *List[Key, Value]) Remove(page *Page[Key, Value]) {
	page.Prev().Unlink(1)
	l.len--
}

// MoveToFront moves page to the front of l. page must be an element of l.
func (l *List[Key, Value]) MoveToFront(page *Page[Key, Value]) {
	if l.root.Next() == page {
		return
	}
	l.Remove(page)
	l.PushFront(page)
}

// PopBack unlinks and returns the back of l, or nil if l is empty.
func (l *List[Key, Value]) PopBack() *Page[Key, Value] {
	page := l.Back()
	if page != nil {
		l.Remove(page)
	}
	return page
}

// All returns an iterator over the pages of l, front to back.
// Yielded pages may be removed from l during iteration.
func (l *List[Key, Value]) All() iter.Seq[*Page[Key, Value]] {
	return func(yield func(*Page[Key, Value]) bool) {
		if l.len == 0 {
			return
		}
		root := &l.root
		for page := root.Next(); page != root; {
			next := page.Next()
			if !yield(page) {
				return
			}
			page = next
		}
	}
}
