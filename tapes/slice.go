package tapes

import (
	"slices"

	"github.com/dshills/cassette/tape"
)

// Slice is a tape backed by a plain Go slice. It grows and shrinks freely.
//
// SetItem inserts before the given index, shifting later items up; an index
// at or past the end appends, and a negative index is a no-op. RemoveItem
// shifts later items down.
//
// Slice marshals as a JSON array.
type Slice[T any] []T

var _ tape.MutableTape[int] = (*Slice[int])(nil)

// SliceOf builds a Slice tape holding items. The variadic arguments back
// the tape directly, so a caller-retained slice is shared, not copied.
func SliceOf[T any](items ...T) *Slice[T] {
	s := Slice[T](items)
	return &s
}

// Len returns the number of items.
func (s *Slice[T]) Len() int {
	return len(*s)
}

// Item returns the item at index.
func (s *Slice[T]) Item(index int) (T, bool) {
	if index < 0 || index >= len(*s) {
		var zero T
		return zero, false
	}
	return (*s)[index], true
}

// ItemMut returns a pointer to the item at index. The pointer stays valid
// until the next growing SetItem or RemoveItem.
func (s *Slice[T]) ItemMut(index int) (*T, bool) {
	if index < 0 || index >= len(*s) {
		return nil, false
	}
	return &(*s)[index], true
}

// SetItem inserts item before index, shifting later items up. An index at
// or past the end appends; a negative index is a no-op.
func (s *Slice[T]) SetItem(index int, item T) {
	if index < 0 {
		return
	}
	if index > len(*s) {
		index = len(*s)
	}
	*s = slices.Insert(*s, index, item)
}

// RemoveItem removes and returns the item at index, shifting later items
// down.
func (s *Slice[T]) RemoveItem(index int) (T, bool) {
	if index < 0 || index >= len(*s) {
		var zero T
		return zero, false
	}
	item := (*s)[index]
	*s = slices.Delete(*s, index, index+1)
	return item, true
}

// Clear removes every item, keeping the allocated capacity.
func (s *Slice[T]) Clear() {
	clear(*s)
	*s = (*s)[:0]
}
