package cursor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SeekFrom encodes as a single-key object naming the addressing mode:
//
//	{"start": 3}
//	{"end": -1}
//	{"current": 2}
//
// Cursor encodes as the tape alongside the head position:
//
//	{"tape": [1, 2, 3], "pos": 1}
//
// Cursor encoding requires the tape type itself to be JSON-marshalable;
// the slice, deque, and array adapters in the tapes package all are.

// jsonKey returns the object key used for this addressing mode, or "" for
// an invalid Whence.
func (w Whence) jsonKey() string {
	switch w {
	case SeekStart:
		return "start"
	case SeekEnd:
		return "end"
	case SeekCurrent:
		return "current"
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler.
func (s SeekFrom) MarshalJSON() ([]byte, error) {
	key := s.whence.jsonKey()
	if key == "" {
		return nil, fmt.Errorf("seek directive has invalid whence %d", s.whence)
	}
	out, err := sjson.SetBytes([]byte(`{}`), key, s.offset)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SeekFrom) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("seek directive is not valid JSON")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return errors.New("seek directive must be a JSON object")
	}

	found := false
	for _, w := range []Whence{SeekStart, SeekEnd, SeekCurrent} {
		v := parsed.Get(w.jsonKey())
		if !v.Exists() {
			continue
		}
		if found {
			return errors.New("seek directive names more than one addressing mode")
		}
		if v.Type != gjson.Number {
			return fmt.Errorf("seek directive %q must be a number", w.jsonKey())
		}
		*s = SeekFrom{whence: w, offset: int(v.Int())}
		found = true
	}
	if !found {
		return errors.New("seek directive names no addressing mode")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c *Cursor[T, Tape]) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(c.inner)
	if err != nil {
		return nil, err
	}
	out, err := sjson.SetRawBytes([]byte(`{}`), "tape", inner)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, "pos", c.pos)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The decoded position must be non-negative, but is otherwise taken as-is;
// a position past the decoded tape's length is the same caller
// responsibility as any other out-of-band drift, and Clamp repairs it.
func (c *Cursor[T, Tape]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("cursor is not valid JSON")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return errors.New("cursor must be a JSON object")
	}

	tp := parsed.Get("tape")
	pos := parsed.Get("pos")
	if !tp.Exists() || !pos.Exists() {
		return errors.New(`cursor needs "tape" and "pos" fields`)
	}
	if pos.Type != gjson.Number || pos.Int() < 0 {
		return errors.New(`cursor "pos" must be a non-negative number`)
	}

	var inner Tape
	if err := json.Unmarshal([]byte(tp.Raw), &inner); err != nil {
		return err
	}

	c.inner = inner
	c.pos = int(pos.Int())
	return nil
}
