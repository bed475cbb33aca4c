// Package tapes provides ready-made tape conformances for common
// sequential containers, so they can be driven by the cursor package.
//
// Fully mutable tapes (satisfy tape.MutableTape):
//
//   - Slice: a plain Go slice; SetItem inserts and shifts
//   - Deque: a double-ended queue; SetItem inserts and shifts
//   - Array: fixed length; SetItem overwrites in place
//
// Read-only tapes (satisfy tape.Tape):
//
//   - BTree: a tidwall/btree generic B-tree, indexed in sort order
//   - ArrayList: a gods array list
//
// What "set item at position" means is decided per adapter and documented
// on each type; the cursor core deliberately assumes nothing about it.
//
// The read-only wrappers share the underlying container rather than
// copying it, which makes them a view: mutate the container directly, then
// Clamp any cursor that was sitting past the new length.
package tapes
