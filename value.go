// value.go — the runtime value model.
//
// Value is a tagged sum covering the whole dynamic value space of the
// language: nil, booleans, IEEE double numbers, strings, and the internal
// "unassigned" sentinel a `var x;` declaration stores until first assignment.
// Values are immutable; assignment replaces the binding, never the value.
package lox

import (
	"math"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil        ValueTag = iota // nil (no payload)
	VTBool                       // bool
	VTNum                        // float64
	VTStr                        // string
	VTUnassigned                 // declared-but-uninitialized sentinel (no payload)
)

// Value is the universal runtime carrier. Tag determines which Go type Data
// holds: bool for VTBool, float64 for VTNum, string for VTStr, nil otherwise.
type Value struct {
	Tag  ValueTag
	Data any
}

// Nil is the singleton nil value.
var Nil = Value{Tag: VTNil}

// Unassigned is the sentinel stored for `var x;` with no initializer. It is
// distinct from Nil but is otherwise handled as an ordinary stored value:
// reading it is not an error.
var Unassigned = Value{Tag: VTUnassigned}

// Primitive constructors.
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// Truthy implements the language's boolean coercion: nil and false are
// falsy, every other value (including 0 and "") is truthy. The unassigned
// sentinel counts as an absent value and is falsy as well.
func Truthy(v Value) bool {
	switch v.Tag {
	case VTNil, VTUnassigned:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equal compares two values with value equality. Nil is equal only to nil.
// Comparing values of different kinds is false, never a type error.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	// Payload-less tags (nil, unassigned) compare equal by tag alone.
	return a.Data == b.Data
}

// Stringify renders a value in its display form: "nil" for nil (and for the
// unassigned sentinel, which prints as an absent value), numbers without a
// trailing ".0" when integral, booleans and strings in their natural form.
func Stringify(v Value) string {
	switch v.Tag {
	case VTNil, VTUnassigned:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		f := v.Data.(float64)
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case VTStr:
		return v.Data.(string)
	default:
		return "<unknown>"
	}
}
