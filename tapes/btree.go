package tapes

import (
	"github.com/tidwall/btree"

	"github.com/dshills/cassette/tape"
)

// BTree gives read-capability conformance to a tidwall/btree generic
// B-tree. Index 0 is the least item and indexing follows the tree's sort
// order, so a cursor walks the tree smallest to largest.
//
// The conformance is read-only: the tree hands out copies of its items,
// and positional insertion has no meaning in a sorted structure. Mutate
// through the wrapped tree itself and call Clamp on any cursor over it
// afterwards.
type BTree[T any] struct {
	tree *btree.BTreeG[T]
}

var _ tape.Tape[int] = (*BTree[int])(nil)

// WrapBTree wraps an existing tree. The tree is shared, not copied:
// changes made through either side are visible to both.
func WrapBTree[T any](tree *btree.BTreeG[T]) *BTree[T] {
	return &BTree[T]{tree: tree}
}

// Tree returns the wrapped tree.
func (b *BTree[T]) Tree() *btree.BTreeG[T] {
	return b.tree
}

// Len returns the number of items in the tree.
func (b *BTree[T]) Len() int {
	return b.tree.Len()
}

// Item returns the index-th item in sort order.
func (b *BTree[T]) Item(index int) (T, bool) {
	if index < 0 || index >= b.tree.Len() {
		var zero T
		return zero, false
	}
	return b.tree.GetAt(index)
}
