package token

import "strconv"

// ValueKind tags the payload held by a Value.
type ValueKind uint8

const (
	NoValue ValueKind = iota
	IntValue
	FloatValue
	StringValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case StringValue:
		return "string"
	default:
		return "none"
	}
}

// Value is the decoded literal of a token. The zero Value holds nothing.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	s    string
}

// Int returns a Value holding an integer.
func Int(v int64) Value { return Value{kind: IntValue, i: v} }

// Float returns a Value holding a floating-point number.
func Float(v float64) Value { return Value{kind: FloatValue, f: v} }

// String returns a Value holding decoded string contents.
func String(v string) Value { return Value{kind: StringValue, s: v} }

// Kind returns which payload v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer payload and whether v holds one.
func (v Value) Int() (int64, bool) { return v.i, v.kind == IntValue }

// Float returns the floating-point payload and whether v holds one.
func (v Value) Float() (float64, bool) { return v.f, v.kind == FloatValue }

// Str returns the string payload and whether v holds one.
func (v Value) Str() (string, bool) { return v.s, v.kind == StringValue }

// Interface returns the payload as int64, float64, string, or nil.
func (v Value) Interface() any {
	switch v.kind {
	case IntValue:
		return v.i
	case FloatValue:
		return v.f
	case StringValue:
		return v.s
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case IntValue:
		return strconv.FormatInt(v.i, 10)
	case FloatValue:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case StringValue:
		return strconv.Quote(v.s)
	}
	return ""
}
