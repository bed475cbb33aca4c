package cursor_test

import (
	"fmt"

	"github.com/dshills/cassette/cursor"
	"github.com/dshills/cassette/tapes"
)

func ExampleCursor() {
	c := cursor.New[string](tapes.SliceOf("a", "b", "c"))

	pos, _ := c.Seek(cursor.End(-1))
	item, _ := c.Item()
	fmt.Println(pos, item)
	// Output: 2 c
}

func ExampleCursor_Seek() {
	c := cursor.New[int](tapes.SliceOf(10, 20, 30))

	// The length itself is a valid position; one past it is not.
	pos, err := c.Seek(cursor.Start(3))
	fmt.Println(pos, err)

	_, err = c.Seek(cursor.Current(1))
	fmt.Println(err)
	// Output:
	// 3 <nil>
	// seek position out of range
}

func ExampleSet() {
	c := cursor.New[int](tapes.SliceOf(1, 2, 4))

	_, _ = c.Seek(cursor.Start(2))
	cursor.Set(c, 3) // the slice tape inserts, shifting 4 up

	fmt.Println(*c.Inner())
	// Output: [1 2 3 4]
}
