package data

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

type AInt struct{ A int }

var jan1, _ = time.Parse(time.RFC3339, "2014-01-01T00:00:00Z")

func TestNew(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected interface{}
	}{
		// basic types
		{nil, nil},
		{true, true},
		{int(0), int64(0)},
		{uint32(7), int64(7)},
		{float32(0.5), float64(0.5)},
		{"", ""},
		{[]string{"a"}, []interface{}{"a"}},
		{[2]int{1, 2}, []interface{}{int64(1), int64(2)}},
		{map[string]string{}, map[string]interface{}{}},
		{map[string]interface{}{"a": nil}, map[string]interface{}{"a": nil}},
		{map[string]interface{}{"a": []int{1}}, map[string]interface{}{"a": []interface{}{int64(1)}}},

		// pointers
		{pInt(5), int64(5)},
		{&jan1, jan1.Format(time.RFC3339)},

		// structs, with unexported fields skipped and names lowerCamel.
		{struct {
			A  Int
			PI *int
			no Int
			T  time.Time
		}{Int(5), pInt(2), 5, jan1},
			map[string]interface{}{"a": int64(5), "pI": int64(2), "t": jan1.Format(time.RFC3339)}},
		{[]*struct{ PI *AInt }{{nil}},
			[]interface{}{map[string]interface{}{"pI": nil}}},
	}

	for _, test := range tests {
		output := Interface(New(test.input))
		if !reflect.DeepEqual(test.expected, output) {
			t.Errorf("%#v =>\n %#v, expected:\n%#v", test.input, output, test.expected)
		}
	}
}

func TestNewMapSortsGoMapKeys(t *testing.T) {
	var m = New(map[string]int{"b": 1, "c": 2, "a": 3}).(*Map)
	if keys := strings.Join(m.Keys(), ""); keys != "abc" {
		t.Errorf("keys = %q, expected abc", keys)
	}
}

func TestNewStructFieldOrder(t *testing.T) {
	var m = New(struct{ Zed, Alpha string }{"z", "a"}).(*Map)
	if keys := strings.Join(m.Keys(), ","); keys != "zed,alpha" {
		t.Errorf("keys = %q, expected zed,alpha", keys)
	}
}

func TestFunc(t *testing.T) {
	tests := []struct {
		name     string
		fn       interface{}
		args     []Value
		expected Value
	}{
		{"string arg",
			func(name string) string { return "Hi " + name },
			[]Value{String("Sam")}, String("Hi Sam")},
		{"missing args are zero",
			func(a string, b int) string { return a + "|" + strings.Repeat("x", b) },
			[]Value{String("a")}, String("a|")},
		{"surplus args dropped",
			func(a bool) bool { return !a },
			[]Value{Bool(true), String("ignored")}, Bool(false)},
		{"numbers",
			func(a int, b float64) float64 { return float64(a) + b },
			[]Value{Float(2), Float(0.5)}, Float(2.5)},
		{"value passthrough",
			func(v Value) Value { return v },
			[]Value{List{Int(1)}}, List{Int(1)}},
		{"empty interface",
			func(v interface{}) string { return reflect.TypeOf(v).String() },
			[]Value{Float(1)}, String("float64")},
		{"variadic",
			func(sep string, parts ...string) string { return strings.Join(parts, sep) },
			[]Value{String("-"), String("a"), Int(1)}, String("a-1")},
		{"no result",
			func() {},
			nil, Undefined{}},
		{"slice param",
			func(items []int) int { return len(items) },
			[]Value{List{Int(1), Int(2)}}, Int(2)},
	}

	for _, test := range tests {
		var fn, ok = New(test.fn).(Func)
		if !ok {
			t.Errorf("%s: expected a Func", test.name)
			continue
		}
		var actual = fn(test.args)
		if !reflect.DeepEqual(Interface(actual), Interface(test.expected)) {
			t.Errorf("%s: got %#v, expected %#v", test.name, actual, test.expected)
		}
	}
}

func TestFuncError(t *testing.T) {
	var boom = errors.New("boom")
	var fn = New(func() (string, error) { return "", boom }).(Func)
	defer func() {
		if r := recover(); r != boom {
			t.Errorf("expected panic with %v, got %v", boom, r)
		}
	}()
	fn(nil)
}

func pInt(i int) *int {
	return &i
}
