package linkedlist

import (
	"bytes"
	"encoding"
	"encoding/json"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// An Equality decides when two payloads count as the same value. Delete,
// IndexOf, Contains and RemoveDuplicates all go through the list's Equality.
type Equality[T any] interface {
	Equal(a T, b T) bool
}

// A Keyer is an Equality that can also map a value to a comparable key, such
// that equal values have equal keys. RemoveDuplicates and Intersection use
// keys for hashed membership; ok is false for values that have no key and
// must be compared with Equal instead.
type Keyer[T any] interface {
	Equality[T]
	Key(v T) (key any, ok bool)
}

type comparableEquality[T comparable] struct{}

// Comparable compares with ==. Interface payloads holding values that == would
// panic on (slices, maps, functions) are compared with reflect.DeepEqual
// instead and have no key.
func Comparable[T comparable]() Keyer[T] {
	return comparableEquality[T]{}
}

// hashable reports whether == and map keys work on v's dynamic value.
func hashable(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.Comparable()
}

func (comparableEquality[T]) Equal(a T, b T) bool {
	if !hashable(a) || !hashable(b) {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func (comparableEquality[T]) Key(v T) (any, bool) {
	if !hashable(v) {
		return nil, false
	}
	return v, true
}

// map keys come out sorted, so maps compare independent of insertion order
var canonicalJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonEquality[T any] struct{}

// JSON treats two values as equal iff their canonical JSON encodings are
// identical. Slices compare element by element in order; maps and structs
// compare by content. Values the encoding does not fully capture fall back to
// reflect.DeepEqual and have no key: values that cannot be encoded (channels,
// functions, NaN) and structs with unexported or `json:"-"` fields.
func JSON[T any]() Keyer[T] {
	return jsonEquality[T]{}
}

// encode returns v's canonical encoding, or false if it does not identify v.
func (jsonEquality[T]) encode(v T) ([]byte, bool) {
	if hidesFields(reflect.ValueOf(v), make(map[uintptr]bool)) {
		return nil, false
	}
	enc, err := canonicalJSON.Marshal(v)
	if err != nil {
		return nil, false
	}
	return enc, true
}

func (e jsonEquality[T]) Equal(a T, b T) bool {
	ea, okA := e.encode(a)
	eb, okB := e.encode(b)
	if !okA || !okB {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ea, eb)
}

func (e jsonEquality[T]) Key(v T) (any, bool) {
	enc, ok := e.encode(v)
	if !ok {
		return nil, false
	}
	return string(enc), true
}

var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// hidesFields reports whether v holds a struct field that JSON encoding drops.
// Types with their own marshaling are trusted to encode their full state.
// visited holds the pointers already walked, so cyclic values terminate.
func hidesFields(v reflect.Value, visited map[uintptr]bool) bool {
	if !v.IsValid() {
		return false
	}
	t := v.Type()
	if t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || visited[v.Pointer()] {
			return false
		}
		visited[v.Pointer()] = true
		return hidesFields(v.Elem(), visited)
	case reflect.Interface:
		return hidesFields(v.Elem(), visited)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Tag.Get("json") == "-" {
				return true
			}
			if !f.IsExported() && (!f.Anonymous || indirect(f.Type).Kind() != reflect.Struct) {
				return true
			}
			if hidesFields(v.Field(i), visited) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		// []byte encodes as base64
		if t.Elem().Kind() == reflect.Uint8 {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if hidesFields(v.Index(i), visited) {
				return true
			}
		}
	case reflect.Map:
		it := v.MapRange()
		for it.Next() {
			if hidesFields(it.Key(), visited) || hidesFields(it.Value(), visited) {
				return true
			}
		}
	}
	return false
}

func indirect(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

type funcEquality[T any] struct {
	eq func(a T, b T) bool
}

// EqualFunc adapts a comparison function. It has no keys, so RemoveDuplicates
// on such a list is quadratic.
func EqualFunc[T any](eq func(a T, b T) bool) Equality[T] {
	return funcEquality[T]{eq: eq}
}

func (f funcEquality[T]) Equal(a T, b T) bool {
	return f.eq(a, b)
}

// seen is a membership set over an Equality, hashed where keys exist.
type seen[T any] struct {
	eq     Equality[T]
	keyer  Keyer[T]
	keys   map[any]struct{}
	others []T
}

func newSeen[T any](eq Equality[T]) *seen[T] {
	s := &seen[T]{eq: eq, keys: make(map[any]struct{})}
	if k, ok := eq.(Keyer[T]); ok {
		s.keyer = k
	}
	return s
}

func (s *seen[T]) contains(v T) bool {
	if s.keyer != nil {
		if key, ok := s.keyer.Key(v); ok {
			_, found := s.keys[key]
			return found
		}
	}
	for _, o := range s.others {
		if s.eq.Equal(o, v) {
			return true
		}
	}
	return false
}

func (s *seen[T]) add(v T) {
	if s.keyer != nil {
		if key, ok := s.keyer.Key(v); ok {
			s.keys[key] = struct{}{}
			return
		}
	}
	s.others = append(s.others, v)
}
