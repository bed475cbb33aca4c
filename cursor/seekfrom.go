package cursor

import "fmt"

// Whence selects the reference point a seek offset is measured from.
type Whence uint8

const (
	// SeekStart measures from the beginning of the tape. The offset is the
	// absolute target index.
	SeekStart Whence = iota
	// SeekEnd measures from the tape's length, one past the last item.
	SeekEnd
	// SeekCurrent measures from the cursor's current position.
	SeekCurrent
)

// String returns the name of the reference point.
func (w Whence) String() string {
	switch w {
	case SeekStart:
		return "start"
	case SeekEnd:
		return "end"
	case SeekCurrent:
		return "current"
	default:
		return fmt.Sprintf("whence(%d)", uint8(w))
	}
}

// SeekFrom describes a single seek request: a reference point and an offset
// from it. It is a plain value and carries no cursor state; build one with
// Start, End, or Current and hand it to Cursor.Seek.
//
// SeekFrom is comparable, so two directives can be checked with ==.
type SeekFrom struct {
	whence Whence
	offset int
}

// Start requests an absolute move to index.
//
//   - Start(0) addresses the first item
//   - Start(5) addresses the sixth item
//
// A negative index is out of range for every tape.
func Start(index int) SeekFrom {
	return SeekFrom{whence: SeekStart, offset: index}
}

// End requests a move relative to the tape's length.
//
//   - End(0) addresses the position just after the last item
//   - End(-1) addresses the last item, if one exists
//
// Any positive offset is out of range.
func End(offset int) SeekFrom {
	return SeekFrom{whence: SeekEnd, offset: offset}
}

// Current requests a move relative to the cursor's position.
//
//   - Current(0) stays put
//   - Current(-2) moves back two indices
//   - Current(5) moves forward five indices
func Current(offset int) SeekFrom {
	return SeekFrom{whence: SeekCurrent, offset: offset}
}

// Whence returns the directive's reference point.
func (s SeekFrom) Whence() Whence {
	return s.whence
}

// Offset returns the directive's offset from its reference point.
func (s SeekFrom) Offset() int {
	return s.offset
}

// String returns a human-readable representation of the directive.
func (s SeekFrom) String() string {
	switch s.whence {
	case SeekStart:
		return fmt.Sprintf("Start(%d)", s.offset)
	case SeekEnd:
		return fmt.Sprintf("End(%d)", s.offset)
	case SeekCurrent:
		return fmt.Sprintf("Current(%d)", s.offset)
	default:
		return fmt.Sprintf("SeekFrom(%s, %d)", s.whence, s.offset)
	}
}
