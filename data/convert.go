package data

import (
	"fmt"
	"reflect"
	"sort"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	timeType  = reflect.TypeOf(time.Time{})
	valueType = reflect.TypeOf((*Value)(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// New converts the given data into a template data value, using
// DefaultStructOptions for structs.
func New(value interface{}) Value {
	return NewWith(DefaultStructOptions, value)
}

// NewWith converts the given data value to a template data value, using the
// provided StructOptions for any structs encountered.
//
// Go maps have no order, so their entries are stored sorted by key.  Struct
// fields keep their declaration order.  Go functions become Funcs whose
// arguments are converted back to the function's parameter types.
func NewWith(convert StructOptions, value interface{}) Value {
	// quick return if we're passed an existing data.Value
	if val, ok := value.(Value); ok {
		return val
	}

	if value == nil {
		return Null{}
	}

	// drill through pointers and interfaces to the underlying type
	var v = reflect.ValueOf(value)
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if !v.IsValid() {
		return Null{}
	}

	if v.Type() == timeType {
		return String(v.Interface().(time.Time).Format(convert.TimeFormat))
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(v.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(v.Float())
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.String:
		return String(v.String())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Null{}
		}
		var slice = make(List, v.Len())
		for i := 0; i < v.Len(); i++ {
			slice[i] = NewWith(convert, v.Index(i).Interface())
		}
		return slice
	case reflect.Map:
		var keys = make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			if key.Kind() != reflect.String {
				panic("map keys must be strings")
			}
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		var m = &Map{items: make(map[string]Value, len(keys))}
		for _, k := range keys {
			m.Set(k, NewWith(convert, v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())).Interface()))
		}
		return m
	case reflect.Struct:
		return convert.Data(v.Interface())
	case reflect.Func:
		if v.IsNil() {
			return Null{}
		}
		return convert.Func(v)
	default:
		panic(fmt.Errorf("unexpected data type: %T (%v)", value, value))
	}
}

var DefaultStructOptions = StructOptions{
	LowerCamel: true,
	TimeFormat: time.RFC3339,
}

// StructOptions provides flexibility in conversion of structs to the
// data.Map format.
type StructOptions struct {
	LowerCamel bool   // if true, convert field names to lowerCamel.
	TimeFormat string // format string for time.Time. (if empty, use ISO-8601)
}

func (c StructOptions) Data(obj interface{}) *Map {
	var m = &Map{items: make(map[string]Value)}
	var v = reflect.ValueOf(obj)
	var valType = v.Type()
	for i := 0; i < valType.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		var key = valType.Field(i).Name
		if c.LowerCamel {
			var firstRune, size = utf8.DecodeRuneInString(key)
			key = string(unicode.ToLower(firstRune)) + key[size:]
		}
		m.Set(key, NewWith(c, v.Field(i).Interface()))
	}
	return m
}

// Func wraps the Go function fn as a helper.  Missing arguments are passed as
// zero values and surplus arguments are dropped, unless fn is variadic.  The
// first result becomes the helper's value; a non-nil trailing error result is
// raised as a panic, for the renderer to report.
func (c StructOptions) Func(fn reflect.Value) Func {
	var fnType = fn.Type()
	return func(args []Value) Value {
		var (
			numIn = fnType.NumIn()
			in    []reflect.Value
		)
		for i := 0; i < numIn; i++ {
			if fnType.IsVariadic() && i == numIn-1 {
				var elem = fnType.In(i).Elem()
				for _, arg := range args[min(i, len(args)):] {
					in = append(in, ToGo(arg, elem))
				}
				break
			}
			var arg Value = Undefined{}
			if i < len(args) {
				arg = args[i]
			}
			in = append(in, ToGo(arg, fnType.In(i)))
		}

		var out = fn.Call(in)
		if n := len(out); n > 0 && fnType.Out(n-1) == errorType {
			if err, _ := out[n-1].Interface().(error); err != nil {
				panic(err)
			}
			out = out[:n-1]
		}
		if len(out) == 0 {
			return Undefined{}
		}
		return NewWith(c, out[0].Interface())
	}
}

// ToGo converts v to a reflect.Value of type t.  Values that can not be
// represented as t become t's zero value.
func ToGo(v Value, t reflect.Type) reflect.Value {
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		if native := Interface(v); native != nil {
			return reflect.ValueOf(native)
		}
		return reflect.Zero(t)
	}
	if reflect.TypeOf(v).AssignableTo(t) {
		return reflect.ValueOf(v)
	}

	var result = reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		result.SetString(v.String())
	case reflect.Bool:
		result.SetBool(v.Truthy())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f, ok := toFloat(v); ok {
			result.SetInt(int64(f))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f, ok := toFloat(v); ok && f >= 0 {
			result.SetUint(uint64(f))
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat(v); ok {
			result.SetFloat(f)
		}
	case reflect.Slice:
		if list, ok := v.(List); ok {
			var slice = reflect.MakeSlice(t, len(list), len(list))
			for i, item := range list {
				slice.Index(i).Set(ToGo(item, t.Elem()))
			}
			result.Set(slice)
		}
	case reflect.Map:
		if m, ok := v.(*Map); ok && t.Key().Kind() == reflect.String {
			var goMap = reflect.MakeMapWithSize(t, m.Len())
			for _, k := range m.Keys() {
				goMap.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), ToGo(m.Key(k), t.Elem()))
			}
			result.Set(goMap)
		}
	}
	return result
}

// Interface returns the plain Go representation of v: nil, bool, int64,
// float64, string, []interface{}, map[string]interface{}, or the Func itself.
func Interface(v Value) interface{} {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case String:
		return string(v)
	case List:
		var slice = make([]interface{}, len(v))
		for i, item := range v {
			slice[i] = Interface(item)
		}
		return slice
	case *Map:
		var m = make(map[string]interface{}, v.Len())
		for _, k := range v.Keys() {
			m[k] = Interface(v.Key(k))
		}
		return m
	case Func:
		return v
	}
	return nil
}

func toFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	case Bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
