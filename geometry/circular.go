package geometry

import "fmt"

// CircularList is an immutable index-wrapping view over a slice.
// Access by any integer index wraps into the backing slice, so the
// list behaves like a ring without the bookkeeping of a linked one.
type CircularList[E comparable] struct {
	wrapped []E
}

// NewCircularList wraps a slice. Rings must contain at least one
// entry.
func NewCircularList[E comparable](wrapped []E) CircularList[E] {
	if len(wrapped) == 0 {
		preconditionf("rings must contain at least one entry")
	}
	return CircularList[E]{wrapped: wrapped}
}

// At returns the element at the wrapped index.
func (l CircularList[E]) At(index int) E {
	return l.wrapped[circularIndex(index, len(l.wrapped))]
}

func (l CircularList[E]) Len() int {
	return len(l.wrapped)
}

// First returns the entry at index 0.
func (l CircularList[E]) First() Entry[E] {
	return Entry[E]{list: l}
}

// circularIndex gives the modular index for length n, but unlike the
// raw modulo operator it only gives non-negative values.
func circularIndex(i, n int) int {
	return (i%n + n) % n
}

// Entry is a position on a CircularList. Next and Prev shift the index
// without wrapping; reduction into the backing slice happens only on
// access, which keeps entries cheap value types with unbounded walks.
type Entry[E comparable] struct {
	list CircularList[E]
	idx  int
}

// Get returns the element this entry points at.
func (e Entry[E]) Get() E {
	return e.list.At(e.idx)
}

func (e Entry[E]) Next() Entry[E] {
	return Entry[E]{list: e.list, idx: e.idx + 1}
}

func (e Entry[E]) Prev() Entry[E] {
	return Entry[E]{list: e.list, idx: e.idx - 1}
}

// EqualContent reports whether both entries point at equal elements,
// regardless of their indices.
func (e Entry[E]) EqualContent(other Entry[E]) bool {
	return e.Get() == other.Get()
}

func (e Entry[E]) String() string {
	return fmt.Sprintf("entry %d of %d: %v", e.idx, e.list.Len(), e.Get())
}
