// Package value extracts the data a SWON document describes: an ordered
// tree of maps, arrays and scalars. Comments and layout are dropped.
package value

import (
	"iter"
	"slices"
	"strconv"
)

// Kind identifies the type of a Value.
type Kind uint8

const (
	KindMap Kind = iota
	KindArray
	KindString
	KindInteger
	KindBool
	KindNull
	KindHole
	KindTypedString
	KindCode
)

var kindNames = [...]string{
	KindMap:         "map",
	KindArray:       "array",
	KindString:      "string",
	KindInteger:     "integer",
	KindBool:        "bool",
	KindNull:        "null",
	KindHole:        "hole",
	KindTypedString: "typed string",
	KindCode:        "code",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a node of an extracted document.
type Value interface {
	Kind() Kind
}

// Map is an insertion-ordered string-keyed map.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

func (m *Map) Kind() Kind { return KindMap }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string { return slices.Clone(m.keys) }

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v under key. A new key goes last; an existing key keeps its
// position.
func (m *Map) Set(key string, v Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Lookup follows a path of map keys from m.
func (m *Map) Lookup(path ...string) (Value, bool) {
	var cur Value = m
	for _, key := range path {
		next, ok := cur.(*Map)
		if !ok {
			return nil, false
		}
		if cur, ok = next.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Array is an ordered list of values.
type Array struct {
	Items []Value
}

func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of items.
func (a *Array) Len() int { return len(a.Items) }

// Append adds v at the end.
func (a *Array) Append(v Value) { a.Items = append(a.Items, v) }

// String is a string value.
type String string

func (String) Kind() Kind { return KindString }

// Integer is a signed integer value.
type Integer int64

func (Integer) Kind() Kind { return KindInteger }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Null is the null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Hole is a placeholder left for a later layer to fill in.
type Hole struct{}

func (Hole) Kind() Kind { return KindHole }

// TypedString is a string tagged with a type name, as in regex"a+".
type TypedString struct {
	Type  string
	Value string
}

func (TypedString) Kind() Kind { return KindTypedString }

// Code is inline code or the body of a fenced code block.
type Code struct {
	// Language is the tag of the code, or a guess for untagged blocks.
	// Untagged inline code has no language.
	Language string
	Content  string
	// Block is true for fenced code blocks.
	Block bool
}

func (Code) Kind() Kind { return KindCode }

// Equal reports whether a and b hold the same data. Map entry order is
// significant.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *Map:
		b := b.(*Map)
		if !slices.Equal(a.keys, b.keys) {
			return false
		}
		for _, k := range a.keys {
			if !Equal(a.entries[k], b.entries[k]) {
				return false
			}
		}
		return true
	case *Array:
		b := b.(*Array)
		return slices.EqualFunc(a.Items, b.Items, Equal)
	default:
		return a == b
	}
}
