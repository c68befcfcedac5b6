package timepicker

import "github.com/robfig/curly/data"

// Input types.
const (
	Spinbox   = "spinbox"
	Selectbox = "selectbox"
)

// Time formats whose single-digit values are padded with a zero.
const (
	FormatHour   = "hh"
	FormatMinute = "mm"
)

// Helpers are the helpers used by the fragments.
var Helpers = map[string]data.Func{
	"formatTime": data.New(FormatTime).(data.Func),
	"disabled":   disabled,
	"isSpinbox":  data.New(func(inputType string) bool { return inputType == Spinbox }).(data.Func),
}

// FormatTime prints value, zero-padded to two digits if format is "hh" or
// "mm".
func FormatTime(value data.Value, format string) string {
	var s = value.String()
	if (format == FormatHour || format == FormatMinute) && len(s) == 1 {
		return "0" + s
	}
	return s
}

// disabled returns " disabled" if the list element at index is truthy.
func disabled(args []data.Value) data.Value {
	if len(args) < 2 {
		return data.String("")
	}
	if data.Member(args[0], args[1]).Truthy() {
		return data.String(" disabled")
	}
	return data.String("")
}

// MeridiemHour converts an hour of the day to the 12-hour clock.
func MeridiemHour(hour int) int {
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return hour
}

// Range returns the integers from start to end, inclusive.  The range runs
// downward if start is greater than end.
func Range(start, end int) []int {
	var step = 1
	if start > end {
		step = -1
	}
	var result = make([]int, 0, abs(end-start)+1)
	for i := start; ; i += step {
		result = append(result, i)
		if i == end {
			break
		}
	}
	return result
}

// stepped returns the values of r that are a multiple of step apart from its
// first value.
func stepped(r []int, step int) []int {
	if step <= 1 {
		return r
	}
	var result []int
	for i := 0; i < len(r); i += step {
		result = append(result, r[i])
	}
	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
