package cursor

import (
	"errors"
	"fmt"

	"github.com/dshills/cassette/tape"
)

// ErrOutOfRange is returned by Seek when the requested position falls
// outside [0, Len()], or when computing it would overflow.
var ErrOutOfRange = errors.New("seek position out of range")

// Cursor pairs a tape with a single movable position, the head.
//
// The head is a logical index into the tape and is kept within
// [0, Len()] by every cursor operation; Len() itself is a valid position,
// addressing the end of the tape one past the last item. The one way to
// break the invariant is to shrink the tape through Inner and skip Clamp
// afterwards — that is a logic error on the caller's side, and the fallout
// is confined to wrong results or failed seeks from this cursor, never
// memory unsafety.
//
// Mutating head operations live as package-level functions (Set, Remove,
// Clear, ItemMut) constrained on tape.MutableTape, so a cursor over a
// read-only tape rejects them at compile time.
//
// Cursor is not safe for concurrent use; callers that share one must
// synchronize around the whole cursor.
type Cursor[T any, Tape tape.Tape[T]] struct {
	inner Tape
	pos   int
}

// New wraps a tape in a cursor positioned at 0.
//
// The item type usually cannot be inferred from the tape alone, so callers
// name it explicitly:
//
//	c := cursor.New[int](tapes.SliceOf(1, 2, 3))
func New[T any, Tape tape.Tape[T]](inner Tape) *Cursor[T, Tape] {
	return &Cursor[T, Tape]{inner: inner}
}

// Position returns the head's current index.
//
// Unless the caller has shrunk the tape out from under the cursor, the
// returned value satisfies 0 <= Position() <= Inner().Len().
func (c *Cursor[T, Tape]) Position() int {
	return c.pos
}

// Inner returns the backing tape.
//
// This is the documented escape hatch: mutating the tape through it is
// fine, but if the tape shrinks below the current position the caller must
// call Clamp before the next seek or read, or those operations may fail in
// surprising (though safe) ways.
func (c *Cursor[T, Tape]) Inner() Tape {
	return c.inner
}

// Unwrap detaches and returns the backing tape, leaving the cursor empty.
// The cursor must not be used again after Unwrap.
func (c *Cursor[T, Tape]) Unwrap() Tape {
	inner := c.inner
	var zero Tape
	c.inner = zero
	c.pos = 0
	return inner
}

// Seek moves the head as described by the directive.
//
// The tape's length is read fresh on every call; nothing is cached. The
// candidate position is valid when 0 <= candidate <= Len(). On success the
// head moves and the new position is returned. On failure — a candidate
// out of range, or offset arithmetic that would overflow — the head does
// not move and ErrOutOfRange is returned.
func (c *Cursor[T, Tape]) Seek(from SeekFrom) (int, error) {
	length := c.inner.Len()

	var target int
	var ok bool
	switch from.whence {
	case SeekStart:
		target, ok = from.offset, from.offset >= 0
	case SeekEnd:
		target, ok = addChecked(length, from.offset)
	case SeekCurrent:
		target, ok = addChecked(c.pos, from.offset)
	}

	if !ok || target > length {
		return 0, ErrOutOfRange
	}

	c.pos = target
	return target, nil
}

// SeekRelative moves the head by offset from its current position.
// Equivalent to Seek(Current(offset)).
func (c *Cursor[T, Tape]) SeekRelative(offset int) (int, error) {
	return c.Seek(Current(offset))
}

// Forward moves the head one position toward the end.
// It reports whether the move happened.
func (c *Cursor[T, Tape]) Forward() bool {
	_, err := c.SeekRelative(1)
	return err == nil
}

// Backward moves the head one position toward the start.
// It reports whether the move happened.
func (c *Cursor[T, Tape]) Backward() bool {
	_, err := c.SeekRelative(-1)
	return err == nil
}

// SeekToStart moves the head to position 0. It cannot fail.
func (c *Cursor[T, Tape]) SeekToStart() {
	_, _ = c.Seek(Start(0))
}

// SeekToEnd moves the head to the tape's length, one past the last item.
// It cannot fail.
func (c *Cursor[T, Tape]) SeekToEnd() {
	_, _ = c.Seek(End(0))
}

// SeekToLastItem moves the head to the last item's index, or to 0 when the
// tape is empty. It cannot fail.
func (c *Cursor[T, Tape]) SeekToLastItem() {
	length := c.inner.Len()
	if length == 0 {
		_, _ = c.Seek(Start(0))
		return
	}
	_, _ = c.Seek(Start(length - 1))
}

// Clamp forces the head back within [0, Len()]. It cannot fail and is
// idempotent. Its purpose is recovery after the caller shrank the tape
// through Inner; no other operation ever normalizes the position.
func (c *Cursor[T, Tape]) Clamp() {
	c.pos = min(c.pos, c.inner.Len())
}

// Item returns the item at the head. The second return value is false when
// the head is at or past the tape's length.
func (c *Cursor[T, Tape]) Item() (T, bool) {
	return c.inner.Item(c.pos)
}

// String returns a human-readable summary of the cursor.
func (c *Cursor[T, Tape]) String() string {
	return fmt.Sprintf("Cursor(pos=%d, len=%d)", c.pos, c.inner.Len())
}

// ItemMut returns a pointer to the item at the cursor's head, for in-place
// mutation. The second return value is false when the head is at or past
// the tape's length. The head does not move.
func ItemMut[T any, Tape tape.MutableTape[T]](c *Cursor[T, Tape]) (*T, bool) {
	return c.inner.ItemMut(c.pos)
}

// Set stores item at the cursor's head by delegating to the tape's
// SetItem. Whether that overwrites or inserts is the tape's call; see the
// adapter's documentation. The head does not move.
func Set[T any, Tape tape.MutableTape[T]](c *Cursor[T, Tape], item T) {
	c.inner.SetItem(c.pos, item)
}

// Remove removes and returns the item at the cursor's head. The second
// return value is false when the head is at or past the tape's length.
//
// Removal may shift later indices down, per the tape's own semantics; the
// head is not adjusted, so after a successful Remove it addresses whatever
// item slid into its place.
func Remove[T any, Tape tape.MutableTape[T]](c *Cursor[T, Tape]) (T, bool) {
	return c.inner.RemoveItem(c.pos)
}

// Clear empties the tape and resets the head to 0, since every prior index
// is invalidated.
func Clear[T any, Tape tape.MutableTape[T]](c *Cursor[T, Tape]) {
	c.inner.Clear()
	c.pos = 0
}

// Equal reports whether two cursors are at the same position over tapes
// with identical contents.
func Equal[T comparable, Tape tape.Tape[T]](a, b *Cursor[T, Tape]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.pos != b.pos {
		return false
	}
	length := a.inner.Len()
	if length != b.inner.Len() {
		return false
	}
	for i := 0; i < length; i++ {
		av, _ := a.inner.Item(i)
		bv, _ := b.inner.Item(i)
		if av != bv {
			return false
		}
	}
	return true
}

// addChecked adds a signed offset to a non-negative base, failing on
// overflow or a negative result.
func addChecked(base, offset int) (int, bool) {
	sum := base + offset
	if offset > 0 && sum < base {
		return 0, false
	}
	if sum < 0 {
		return 0, false
	}
	return sum, true
}
