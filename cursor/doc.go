// Package cursor provides a positioned cursor over any ordered, indexable
// collection.
//
// A Cursor owns a backing tape (anything satisfying tape.Tape) and a single
// movable position, the head. The cursor never needs to know the tape's
// concrete representation; it drives it entirely through the capability
// contracts of the tape package.
//
// The cursor package provides:
//
//   - Seek directives (Start, End, Current) resolved by one overflow-safe
//     algorithm that fails without side effects
//   - Derived seeks: SeekToStart, SeekToEnd, SeekToLastItem, Forward,
//     Backward, SeekRelative
//   - Clamp, the one operation allowed to normalize a drifted position
//   - Head-relative reads and, for mutable tapes, writes
//   - JSON encoding for directives and cursors
//
// The head ranges over [0, Len()]: the tape's length is itself a valid
// position, addressing the end of the tape, distinct from "past the end",
// which is not.
//
// Basic usage:
//
//	c := cursor.New[int](tapes.SliceOf(0, 1, 2, 3, 4))
//
//	pos, err := c.Seek(cursor.Start(3))  // pos == 3
//	item, ok := c.Item()                 // item == 3, ok == true
//
//	c.SeekToEnd()
//	_, ok = c.Item()                     // ok == false: head is past the last item
//
//	_, err = c.Seek(cursor.Current(1))   // err == cursor.ErrOutOfRange, head unmoved
//
// Mutation requires a tape satisfying tape.MutableTape and goes through
// package-level functions, so the capability check happens at compile time:
//
//	cursor.Set(c, 42)     // delegate SetItem at the head
//	cursor.Remove(c)      // remove the item at the head
//	cursor.Clear(c)       // empty the tape, head back to 0
//
// A cursor is single-owner and does no locking; share one only behind
// external synchronization.
package cursor
