// Package tape defines the capability contracts a backing collection must
// satisfy to be wrapped by a cursor.
//
// Two contracts exist:
//
//   - Tape: read-only indexed access (Len, Item)
//   - MutableTape: Tape plus mutation (ItemMut, SetItem, RemoveItem, Clear)
//
// The split is deliberate. A cursor over a plain Tape can seek and read; the
// mutating operations in the cursor package require a MutableTape and are
// rejected at compile time otherwise. Containers that can only hand out
// copies of their items (most ordered structures) satisfy Tape alone, and
// that is enough to drive them.
//
// Ready-made conformances for common containers live in the tapes package.
package tape
