package sqm

import (
	"bytes"
	"encoding/json"
	"iter"
	"strconv"
)

// Value is a node in a parsed document: a [Number], a [String], an [*Object]
// or a [*Sequence].
type Value interface {
	isValue()
}

// Number is a numeric scalar.
type Number float64

// String is a textual scalar.
type String string

func (Number) isValue()    {}
func (String) isValue()    {}
func (*Object) isValue()   {}
func (*Sequence) isValue() {}

// An Object maps keys to values, remembering the order in which keys were
// first written.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: map[string]Value{}}
}

// Set stores v under key. Replacing an existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

func (o *Object) Len() int {
	return len(o.keys)
}

// All iterates over the key value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Lookup walks path from o. Objects are indexed by key and sequences by
// decimal index. An empty path returns o itself.
func (o *Object) Lookup(path ...string) (Value, bool) {
	var current Value = o
	for _, key := range path {
		switch c := current.(type) {
		case *Object:
			v, ok := c.Get(key)
			if !ok {
				return nil, false
			}
			current = v
		case *Sequence:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= c.Len() {
				return nil, false
			}
			current = c.Index(i)
		default:
			return nil, false
		}
	}
	return current, true
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// A Sequence is an ordered list of values.
type Sequence struct {
	items []Value
}

// NewSequence returns a Sequence containing items.
func NewSequence(items ...Value) *Sequence {
	return &Sequence{items: items}
}

func (s *Sequence) Append(v Value) {
	s.items = append(s.items, v)
}

func (s *Sequence) Len() int {
	return len(s.items)
}

// Index returns the i'th item. It panics if i is out of range.
func (s *Sequence) Index(i int) Value {
	return s.items[i]
}

// All iterates over the items in order.
func (s *Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s *Sequence) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

// Interface converts v into plain Go values: map[string]any for objects,
// []any for sequences, float64 for numbers and string for strings.
func Interface(v Value) any {
	switch v := v.(type) {
	case *Object:
		m := make(map[string]any, v.Len())
		for k, item := range v.All() {
			m[k] = Interface(item)
		}
		return m
	case *Sequence:
		s := make([]any, 0, v.Len())
		for _, item := range v.All() {
			s = append(s, Interface(item))
		}
		return s
	case Number:
		return float64(v)
	case String:
		return string(v)
	}
	return nil
}
