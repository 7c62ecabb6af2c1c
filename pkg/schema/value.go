package schema

import (
	"reflect"
)

// Value is the payload of an entity property. The set of implementations is
// closed: Text, Integer, Number, Boolean, *Entity, Sequence and Opaque.
type Value interface {
	isValue()
}

// Text holds a string value
type Text string

// Integer holds an integral number value
type Integer int64

// Number holds a floating point number value
type Number float64

// Boolean holds a truth value
type Boolean bool

// Sequence is an ordered list of values. Markup formats render it as repeated
// occurrences of the same property, JSON-LD as an array.
type Sequence []Value

// Opaque wraps any value that is neither a scalar, an entity nor a sequence.
// Renderers encode it using its textual form, or JSON when it has none.
type Opaque struct {
	V any
}

func (Text) isValue()     {}
func (Integer) isValue()  {}
func (Number) isValue()   {}
func (Boolean) isValue()  {}
func (Sequence) isValue() {}
func (Opaque) isValue()   {}
func (*Entity) isValue()  {}

// ValueOf converts a loosely typed Go value into a Value
func ValueOf(v any) Value {
	switch typed := v.(type) {
	case Value:
		return typed
	case string:
		return Text(typed)
	case bool:
		return Boolean(typed)
	case int:
		return Integer(typed)
	case int8:
		return Integer(typed)
	case int16:
		return Integer(typed)
	case int32:
		return Integer(typed)
	case int64:
		return Integer(typed)
	case uint8:
		return Integer(typed)
	case uint16:
		return Integer(typed)
	case uint32:
		return Integer(typed)
	case float32:
		return Number(typed)
	case float64:
		return Number(typed)
	case []Value:
		return Sequence(typed)
	case []string:
		seq := make(Sequence, 0, len(typed))
		for _, s := range typed {
			seq = append(seq, Text(s))
		}
		return seq
	case []any:
		seq := make(Sequence, 0, len(typed))
		for _, item := range typed {
			seq = append(seq, ValueOf(item))
		}
		return seq
	case []*Entity:
		seq := make(Sequence, 0, len(typed))
		for _, e := range typed {
			seq = append(seq, e)
		}
		return seq
	}

	// uint64, uint and uintptr may not fit an int64 and any other slice type
	// is still a sequence, so these go through reflection
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= 1<<63-1 {
			return Integer(int64(u))
		}
		return Number(float64(u))
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// byte slices are data, not sequences
			return Opaque{V: v}
		}
		seq := make(Sequence, 0, rv.Len())
		for i := range rv.Len() {
			seq = append(seq, ValueOf(rv.Index(i).Interface()))
		}
		return seq
	}

	return Opaque{V: v}
}
