package tapes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cassette/cursor"
	"github.com/dshills/cassette/tape"
	"github.com/dshills/cassette/tapes"
)

// seekReadTape runs the shared seek/read checks against any mutable tape
// holding [1, 2, 3].
func seekReadTape[Tape tape.MutableTape[int]](t *testing.T, tp Tape) {
	t.Helper()

	c := cursor.New[int](tp)

	pos, err := c.Seek(cursor.End(-1))
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	item, ok := c.Item()
	require.True(t, ok)
	assert.Equal(t, 3, item)

	_, err = c.Seek(cursor.Current(2))
	assert.ErrorIs(t, err, cursor.ErrOutOfRange)
	assert.Equal(t, 2, c.Position())

	p, ok := cursor.ItemMut(c)
	require.True(t, ok)
	*p = 33
	item, _ = c.Item()
	assert.Equal(t, 33, item)

	cursor.Clear(c)
	assert.Equal(t, 0, c.Position())
}

func TestCursorOverSlice(t *testing.T) {
	seekReadTape(t, tapes.SliceOf(1, 2, 3))
}

func TestCursorOverDeque(t *testing.T) {
	seekReadTape(t, tapes.NewDeque(1, 2, 3))
}

func TestCursorOverArray(t *testing.T) {
	seekReadTape(t, tapes.ArrayOf(1, 2, 3))
}

func TestCursorRemoveSemanticsDiffer(t *testing.T) {
	// Same cursor operation, adapter-defined outcome: the slice shrinks,
	// the fixed array keeps its length and zero-fills.
	sc := cursor.New[int](tapes.SliceOf(1, 2, 3))
	_, err := sc.Seek(cursor.Start(1))
	require.NoError(t, err)
	item, ok := cursor.Remove(sc)
	require.True(t, ok)
	assert.Equal(t, 2, item)
	assert.Equal(t, 2, sc.Inner().Len())

	ac := cursor.New[int](tapes.ArrayOf(1, 2, 3))
	_, err = ac.Seek(cursor.Start(1))
	require.NoError(t, err)
	item, ok = cursor.Remove(ac)
	require.True(t, ok)
	assert.Equal(t, 2, item)
	assert.Equal(t, 3, ac.Inner().Len())

	last, _ := ac.Inner().Item(2)
	assert.Equal(t, 0, last)
}
