package data

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Value represents a template data value, which may be one of the enumerated types.
// Undefined is the result of any lookup that finds nothing.
type Value interface {
	// Truthy returns true according to the template definition of truthy and falsy values.
	Truthy() bool

	// String formats this value for display in rendered output.
	String() string

	// Equals returns true if the two values are equal.  Specifically, if:
	// - They are comparable: they have the same Type, or they are Int and Float
	// - (Primitives) They have the same value
	// - (Lists, Maps, Funcs) They are the same instance
	// Uncomparable types and unequal values return false.
	Equals(other Value) bool
}

// Value types
type (
	Undefined struct{}
	Null      struct{}
	Bool      bool
	Int       int64
	Float     float64
	String    string
	List      []Value

	// Func is a helper that may be invoked from an expression.  It receives
	// its arguments already resolved.
	Func func(args []Value) Value
)

// Index retrieves a value from this list, or Undefined if out of bounds.
func (v List) Index(i int) Value {
	if !(0 <= i && i < len(v)) {
		return Undefined{}
	}
	return v[i]
}

// Truthy ----------

func (v Undefined) Truthy() bool { return false }
func (v Null) Truthy() bool      { return false }
func (v Bool) Truthy() bool      { return bool(v) }
func (v Int) Truthy() bool       { return v != 0 }
func (v Float) Truthy() bool     { return v != 0.0 && !math.IsNaN(float64(v)) }
func (v String) Truthy() bool    { return v != "" }
func (v List) Truthy() bool      { return true }
func (v Func) Truthy() bool      { return true }

// String ----------

func (v Undefined) String() string { return "" }
func (v Null) String() string      { return "" }
func (v Bool) String() string      { return strconv.FormatBool(bool(v)) }
func (v Int) String() string       { return strconv.FormatInt(int64(v), 10) }
func (v String) String() string    { return string(v) }
func (v Func) String() string      { return "" }

func (v Float) String() string {
	var f = float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (v List) String() string {
	var items = make([]string, len(v))
	for i, item := range v {
		items[i] = item.String()
	}
	return strings.Join(items, ",")
}

// Equals ----------

func (v Undefined) Equals(other Value) bool {
	_, ok := other.(Undefined)
	return ok
}

func (v Null) Equals(other Value) bool {
	_, ok := other.(Null)
	return ok
}

func (v Bool) Equals(other Value) bool {
	if o, ok := other.(Bool); ok {
		return bool(v) == bool(o)
	}
	return false
}

func (v String) Equals(other Value) bool {
	if o, ok := other.(String); ok {
		return string(v) == string(o)
	}
	return false
}

func (v List) Equals(other Value) bool {
	if o, ok := other.(List); ok {
		return len(v) == len(o) &&
			reflect.ValueOf(v).Pointer() == reflect.ValueOf(o).Pointer()
	}
	return false
}

func (v Func) Equals(other Value) bool {
	if o, ok := other.(Func); ok {
		return reflect.ValueOf(v).Pointer() == reflect.ValueOf(o).Pointer()
	}
	return false
}

func (v Int) Equals(other Value) bool {
	switch o := other.(type) {
	case Int:
		return v == o
	case Float:
		return float64(v) == float64(o)
	}
	return false
}

func (v Float) Equals(other Value) bool {
	switch o := other.(type) {
	case Int:
		return float64(v) == float64(o)
	case Float:
		return v == o
	}
	return false
}

// Member returns the member of v named by key, or Undefined if there is none.
//
// Maps are indexed by the display form of key.  Lists and strings are indexed
// by integral numbers, and all three report their size under "length".
// Anything else has no members.
func Member(v, key Value) Value {
	switch v := v.(type) {
	case *Map:
		if key.String() == "length" && !v.Has("length") {
			return Int(v.Len())
		}
		return v.Key(key.String())
	case List:
		if i, ok := toIndex(key); ok {
			return v.Index(i)
		}
		if key.String() == "length" {
			return Int(len(v))
		}
	case String:
		if i, ok := toIndex(key); ok {
			if 0 <= i && i < len(v) {
				return v[i : i+1]
			}
			return Undefined{}
		}
		if key.String() == "length" {
			return Int(len(v))
		}
	}
	return Undefined{}
}

// toIndex converts key to a list index, if it represents an integer.
func toIndex(key Value) (int, bool) {
	switch key := key.(type) {
	case Int:
		return int(key), true
	case Float:
		if float64(key) == math.Trunc(float64(key)) {
			return int(key), true
		}
	case String:
		if i, err := strconv.Atoi(string(key)); err == nil {
			return i, true
		}
	}
	return 0, false
}
