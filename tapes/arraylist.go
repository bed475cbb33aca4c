package tapes

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"

	"github.com/dshills/cassette/tape"
)

// ArrayList gives read-capability conformance to a gods array list.
//
// The conformance is read-only for the same reason as BTree: the list
// returns copies of its values, so the pointer access the mutable contract
// requires cannot be provided. Mutate through the wrapped list itself and
// call Clamp on any cursor over it afterwards.
type ArrayList[T comparable] struct {
	list *arraylist.List[T]
}

var _ tape.Tape[int] = (*ArrayList[int])(nil)

// WrapArrayList wraps an existing list. The list is shared, not copied:
// changes made through either side are visible to both.
func WrapArrayList[T comparable](list *arraylist.List[T]) *ArrayList[T] {
	return &ArrayList[T]{list: list}
}

// List returns the wrapped list.
func (l *ArrayList[T]) List() *arraylist.List[T] {
	return l.list
}

// Len returns the number of values in the list.
func (l *ArrayList[T]) Len() int {
	return l.list.Size()
}

// Item returns the value at index.
func (l *ArrayList[T]) Item(index int) (T, bool) {
	return l.list.Get(index)
}
