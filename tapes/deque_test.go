package tapes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain collects a deque's items front to back through the read contract.
func drain[T any](d *Deque[T]) []T {
	out := make([]T, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		item, _ := d.Item(i)
		out = append(out, item)
	}
	return out
}

func TestDequeEnds(t *testing.T) {
	d := NewDeque(2, 3)
	d.PushFront(1)
	d.PushBack(4)

	assert.Equal(t, []int{1, 2, 3, 4}, drain(d))

	front, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 4, back)

	assert.Equal(t, []int{2, 3}, drain(d))
}

func TestDequePopEmpty(t *testing.T) {
	d := NewDeque[int]()

	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
}

func TestDequeItem(t *testing.T) {
	// Enough items that indexing walks from both ends.
	d := NewDeque(0, 1, 2, 3, 4, 5, 6, 7)

	for i := 0; i < 8; i++ {
		item, ok := d.Item(i)
		require.True(t, ok, "index %d", i)
		assert.Equal(t, i, item)
	}

	_, ok := d.Item(8)
	assert.False(t, ok)
	_, ok = d.Item(-1)
	assert.False(t, ok)
}

func TestDequeItemMutStable(t *testing.T) {
	d := NewDeque(1, 2, 3)

	p, ok := d.ItemMut(1)
	require.True(t, ok)

	// The pointer survives surrounding inserts and removals.
	d.PushFront(0)
	d.SetItem(3, 99)
	_, _ = d.RemoveItem(0)

	*p = 22
	assert.Equal(t, []int{1, 22, 99, 3}, drain(d))
}

func TestDequeSetItemInserts(t *testing.T) {
	d := NewDeque(1, 3)

	d.SetItem(1, 2)
	assert.Equal(t, []int{1, 2, 3}, drain(d))

	d.SetItem(3, 4)
	d.SetItem(99, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, drain(d))

	d.SetItem(-1, 0)
	assert.Equal(t, 5, d.Len())
}

func TestDequeRemoveItem(t *testing.T) {
	d := NewDeque("a", "b", "c")

	item, ok := d.RemoveItem(1)
	require.True(t, ok)
	assert.Equal(t, "b", item)
	assert.Equal(t, []string{"a", "c"}, drain(d))

	_, ok = d.RemoveItem(5)
	assert.False(t, ok)
}

func TestDequeClear(t *testing.T) {
	d := NewDeque(1, 2, 3)
	d.Clear()
	assert.Equal(t, 0, d.Len())

	d.PushBack(7)
	assert.Equal(t, []int{7}, drain(d))
}

func TestDequeJSON(t *testing.T) {
	d := NewDeque(1, 2, 3)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(data))

	var decoded Deque[int]
	require.NoError(t, json.Unmarshal([]byte(`[4,5]`), &decoded))
	assert.Equal(t, []int{4, 5}, drain(&decoded))
}
