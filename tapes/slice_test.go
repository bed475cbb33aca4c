package tapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceItem(t *testing.T) {
	s := SliceOf(10, 20, 30)

	assert.Equal(t, 3, s.Len())

	item, ok := s.Item(1)
	require.True(t, ok)
	assert.Equal(t, 20, item)

	_, ok = s.Item(3)
	assert.False(t, ok)
	_, ok = s.Item(-1)
	assert.False(t, ok)
}

func TestSliceItemMut(t *testing.T) {
	s := SliceOf(10, 20, 30)

	p, ok := s.ItemMut(2)
	require.True(t, ok)
	*p = 33

	item, _ := s.Item(2)
	assert.Equal(t, 33, item)

	_, ok = s.ItemMut(3)
	assert.False(t, ok)
}

func TestSliceSetItemInserts(t *testing.T) {
	s := SliceOf(1, 2, 4)

	s.SetItem(2, 3)
	assert.Equal(t, Slice[int]{1, 2, 3, 4}, *s)

	// At or past the end appends.
	s.SetItem(4, 5)
	s.SetItem(99, 6)
	assert.Equal(t, Slice[int]{1, 2, 3, 4, 5, 6}, *s)

	// Negative is a no-op.
	s.SetItem(-1, 0)
	assert.Equal(t, 6, s.Len())
}

func TestSliceRemoveItem(t *testing.T) {
	s := SliceOf(1, 2, 3)

	item, ok := s.RemoveItem(1)
	require.True(t, ok)
	assert.Equal(t, 2, item)
	assert.Equal(t, Slice[int]{1, 3}, *s)

	_, ok = s.RemoveItem(2)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestSliceClear(t *testing.T) {
	s := SliceOf("a", "b")
	s.Clear()
	assert.Equal(t, 0, s.Len())

	_, ok := s.Item(0)
	assert.False(t, ok)
}
