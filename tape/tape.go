package tape

// Tape is the read-only capability a backing collection must provide to be
// driven by a cursor. Any ordered, indexable container can satisfy it:
// a slice, a deque, a fixed array, or a third-party structure with indexed
// access.
//
// Implementations must keep Len and Item consistent with each other:
// Item(i) returns an item exactly when 0 <= i < Len().
type Tape[T any] interface {
	// Len returns the number of items currently on the tape.
	Len() int

	// Item returns the item stored at index.
	// The second return value is false when no item exists at index.
	Item(index int) (T, bool)
}

// MutableTape extends Tape with mutation. Satisfying it unlocks the
// mutating head operations of the cursor package.
//
// SetItem and RemoveItem may change Len. Whether SetItem overwrites the
// existing item or inserts before it, shifting the rest of the tape, is
// decided and documented by each implementation; the cursor never assumes
// one meaning.
type MutableTape[T any] interface {
	Tape[T]

	// ItemMut returns a pointer to the item stored at index, for in-place
	// mutation. The second return value is false when no item exists at
	// index.
	ItemMut(index int) (*T, bool)

	// SetItem stores item at index. Overwrite-in-place versus
	// insert-and-shift is implementation-defined.
	SetItem(index int, item T)

	// RemoveItem removes and returns the item at index.
	// The second return value is false when no item exists at index, in
	// which case the tape is unchanged.
	RemoveItem(index int) (T, bool)

	// Clear removes every item from the tape.
	Clear()
}
