package schema

import (
	"fmt"
	"strconv"
)

// Kind identifies the primitive type a field accepts.
type Kind int

// Supported primitive kinds.
const (
	KindNumber Kind = iota
	KindString
	KindBool
)

// String returns the kind name as it appears in error messages.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged variant over the supported primitives. It holds exactly
// one number, string, or boolean, discriminated by Kind.
type Value struct {
	kind    Kind
	num     float64
	str     string
	boolean bool
}

// NumberValue wraps a float64 in a number Value.
func NumberValue(v float64) Value {
	return Value{kind: KindNumber, num: v} //nolint:exhaustruct // variant holds one arm
}

// StringValue wraps a string in a string Value.
func StringValue(v string) Value {
	return Value{kind: KindString, str: v} //nolint:exhaustruct // variant holds one arm
}

// BoolValue wraps a bool in a boolean Value.
func BoolValue(v bool) Value {
	return Value{kind: KindBool, boolean: v} //nolint:exhaustruct // variant holds one arm
}

// Kind returns the discriminant of the variant.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns the numeric arm. It is only meaningful when Kind is KindNumber.
func (v Value) Number() float64 {
	return v.num
}

// Text returns the string arm. It is only meaningful when Kind is KindString.
func (v Value) Text() string {
	return v.str
}

// Bool returns the boolean arm. It is only meaningful when Kind is KindBool.
func (v Value) Bool() bool {
	return v.boolean
}

// String renders the held primitive the way it appears in error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.boolean)
	default:
		return fmt.Sprintf("value(kind=%d)", int(v.kind))
	}
}

// FromAny lifts a raw decoded value into a Value of the wanted kind.
// Decoders disagree on the Go type they produce for numeric literals, so all
// of int, int64, uint64, float32 and float64 are accepted as numbers. The
// second return value reports whether the runtime type matched the kind.
func FromAny(kind Kind, raw any) (Value, bool) {
	switch kind {
	case KindNumber:
		if n, ok := asFloat(raw); ok {
			return NumberValue(n), true
		}
	case KindString:
		if s, ok := raw.(string); ok {
			return StringValue(s), true
		}
	case KindBool:
		if b, ok := raw.(bool); ok {
			return BoolValue(b), true
		}
	}

	return Value{}, false //nolint:exhaustruct // zero Value on mismatch
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
