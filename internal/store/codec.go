package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ErrCorrupted is returned when a snapshot parses but is not a title -> task
// object, or does not parse at all.
var ErrCorrupted = errors.New("corrupted")

// record is the on-disk shape of a task: {"d": "...", "c": true}.
type record struct {
	D string `json:"d"`
	C bool   `json:"c,omitempty"`
}

// Decode parses a snapshot. Keys keep their document order.
func Decode(data []byte) (*Store, error) {
	// gjson accepts raw invalid UTF-8, which Encode would rewrite as U+FFFD.
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrCorrupted)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrCorrupted)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object of tasks, got %s", ErrCorrupted, kindOf(root))
	}

	s := New()
	var derr error
	root.ForEach(func(key, value gjson.Result) bool {
		t, err := decodeTask(value)
		if err != nil {
			derr = fmt.Errorf("%w: task %q: %s", ErrCorrupted, key.String(), err)
			return false
		}
		s.put(key.String(), t)
		return true
	})
	if derr != nil {
		return nil, derr
	}
	return s, nil
}

func decodeTask(v gjson.Result) (Task, error) {
	if !v.IsObject() {
		return Task{}, fmt.Errorf("expected an object, got %s", kindOf(v))
	}
	d := v.Get("d")
	if !d.Exists() {
		return Task{}, errors.New(`missing field "d"`)
	}
	if d.Type != gjson.String {
		return Task{}, fmt.Errorf(`field "d" must be a string, got %s`, kindOf(d))
	}
	t := Task{Description: d.String()}
	if c := v.Get("c"); c.Exists() {
		switch c.Type {
		case gjson.True:
			t.Completed = true
		case gjson.False:
		default:
			return Task{}, fmt.Errorf(`field "c" must be a boolean, got %s`, kindOf(c))
		}
	}
	return t, nil
}

func kindOf(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	}
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	default:
		return "null"
	}
}

// Encode writes the full store as a single JSON object in insertion order.
func Encode(s *Store) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, title := range s.titles {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(title)
		if err != nil {
			return nil, err
		}
		t := s.tasks[title]
		v, err := json.Marshal(record{D: t.Description, C: t.Completed})
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
