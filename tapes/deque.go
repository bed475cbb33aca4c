package tapes

import (
	"container/list"
	"encoding/json"

	"github.com/dshills/cassette/tape"
)

// Deque is a double-ended queue tape backed by a doubly linked list.
// PushFront, PushBack, PopFront, and PopBack are O(1); positional access
// walks from the nearer end, so it is O(n) in the worst case.
//
// Each item lives in its own heap cell, which is what lets ItemMut hand
// out a pointer that stays valid across later inserts and removals.
//
// SetItem inserts before the given index, shifting later items up; an index
// at or past the end appends, and a negative index is a no-op.
//
// Deque marshals as a JSON array, front to back.
type Deque[T any] struct {
	items *list.List // element values are *T
}

var _ tape.MutableTape[int] = (*Deque[int])(nil)

// NewDeque builds a Deque tape holding items front to back.
func NewDeque[T any](items ...T) *Deque[T] {
	d := &Deque[T]{items: list.New()}
	for _, item := range items {
		d.PushBack(item)
	}
	return d
}

// node returns the list element at index, walking from the nearer end, or
// nil when index is out of range.
func (d *Deque[T]) node(index int) *list.Element {
	length := d.items.Len()
	if index < 0 || index >= length {
		return nil
	}
	if index < length/2 {
		e := d.items.Front()
		for i := 0; i < index; i++ {
			e = e.Next()
		}
		return e
	}
	e := d.items.Back()
	for i := length - 1; i > index; i-- {
		e = e.Prev()
	}
	return e
}

// Len returns the number of items.
func (d *Deque[T]) Len() int {
	return d.items.Len()
}

// Item returns the item at index, counting from the front.
func (d *Deque[T]) Item(index int) (T, bool) {
	if e := d.node(index); e != nil {
		return *e.Value.(*T), true
	}
	var zero T
	return zero, false
}

// ItemMut returns a pointer to the item at index.
func (d *Deque[T]) ItemMut(index int) (*T, bool) {
	if e := d.node(index); e != nil {
		return e.Value.(*T), true
	}
	return nil, false
}

// SetItem inserts item before index, shifting later items up. An index at
// or past the end appends; a negative index is a no-op.
func (d *Deque[T]) SetItem(index int, item T) {
	if index < 0 {
		return
	}
	if e := d.node(index); e != nil {
		d.items.InsertBefore(&item, e)
		return
	}
	d.items.PushBack(&item)
}

// RemoveItem removes and returns the item at index, shifting later items
// down.
func (d *Deque[T]) RemoveItem(index int) (T, bool) {
	e := d.node(index)
	if e == nil {
		var zero T
		return zero, false
	}
	return *d.items.Remove(e).(*T), true
}

// Clear removes every item.
func (d *Deque[T]) Clear() {
	d.items.Init()
}

// PushFront adds item before the first item.
func (d *Deque[T]) PushFront(item T) {
	d.items.PushFront(&item)
}

// PushBack adds item after the last item.
func (d *Deque[T]) PushBack(item T) {
	d.items.PushBack(&item)
}

// PopFront removes and returns the first item.
func (d *Deque[T]) PopFront() (T, bool) {
	e := d.items.Front()
	if e == nil {
		var zero T
		return zero, false
	}
	return *d.items.Remove(e).(*T), true
}

// PopBack removes and returns the last item.
func (d *Deque[T]) PopBack() (T, bool) {
	e := d.items.Back()
	if e == nil {
		var zero T
		return zero, false
	}
	return *d.items.Remove(e).(*T), true
}

// MarshalJSON implements json.Marshaler.
func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	out := make([]T, 0, d.items.Len())
	for e := d.items.Front(); e != nil; e = e.Next() {
		out = append(out, *e.Value.(*T))
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler, replacing the deque's
// contents.
func (d *Deque[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if d.items == nil {
		d.items = list.New()
	} else {
		d.items.Init()
	}
	for i := range items {
		d.items.PushBack(&items[i])
	}
	return nil
}
