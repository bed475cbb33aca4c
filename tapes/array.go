package tapes

import (
	"encoding/json"

	"github.com/dshills/cassette/tape"
)

// Array is a fixed-length tape: its length is set at construction and no
// mutation changes it.
//
// SetItem overwrites the slot in place; out of range is a no-op.
// RemoveItem shifts later items down one slot, zeroes the final slot, and
// returns the removed item. Clear zeroes every slot. In all three cases
// Len is unchanged.
//
// Array marshals as a JSON array; unmarshaling replaces the contents and
// fixes the length to the decoded item count.
type Array[T any] struct {
	items []T
}

var _ tape.MutableTape[int] = (*Array[int])(nil)

// NewArray builds a zero-filled Array tape of the given length.
func NewArray[T any](length int) *Array[T] {
	if length < 0 {
		length = 0
	}
	return &Array[T]{items: make([]T, length)}
}

// ArrayOf builds an Array tape holding copies of items.
func ArrayOf[T any](items ...T) *Array[T] {
	a := &Array[T]{items: make([]T, len(items))}
	copy(a.items, items)
	return a
}

// Len returns the fixed length.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Item returns the item at index.
func (a *Array[T]) Item(index int) (T, bool) {
	if index < 0 || index >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[index], true
}

// ItemMut returns a pointer to the slot at index.
func (a *Array[T]) ItemMut(index int) (*T, bool) {
	if index < 0 || index >= len(a.items) {
		return nil, false
	}
	return &a.items[index], true
}

// SetItem overwrites the slot at index. Out of range is a no-op.
func (a *Array[T]) SetItem(index int, item T) {
	if index < 0 || index >= len(a.items) {
		return
	}
	a.items[index] = item
}

// RemoveItem removes and returns the item at index. Later items shift down
// one slot and the final slot is zeroed; the length does not change.
func (a *Array[T]) RemoveItem(index int) (T, bool) {
	if index < 0 || index >= len(a.items) {
		var zero T
		return zero, false
	}
	item := a.items[index]
	copy(a.items[index:], a.items[index+1:])
	var zero T
	a.items[len(a.items)-1] = zero
	return item, true
}

// Clear zeroes every slot. The length does not change.
func (a *Array[T]) Clear() {
	clear(a.items)
}

// MarshalJSON implements json.Marshaler.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.items)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	a.items = items
	return nil
}
