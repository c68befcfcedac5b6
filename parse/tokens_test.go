package parse

import "testing"

func TestNumber(t *testing.T) {
	var tests = []struct {
		input string
		value float64
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{"1.", 1, true},
		{"007", 7, true},
		{".5", 0, false},
		{"1e3", 0, false},
		{"-", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, test := range tests {
		var value, ok = Number(test.input)
		if ok != test.ok || value != test.value {
			t.Errorf("Number(%q) = %v, %v; expected %v, %v", test.input, value, ok, test.value, test.ok)
		}
	}
}

func TestBool(t *testing.T) {
	if v, ok := Bool("true"); !v || !ok {
		t.Errorf("true")
	}
	if v, ok := Bool("false"); v || !ok {
		t.Errorf("false")
	}
	if _, ok := Bool("True"); ok {
		t.Errorf("True should not be a literal")
	}
}

func TestBracket(t *testing.T) {
	var tests = []struct {
		input, name, key string
		ok               bool
	}{
		{"a[b]", "a", "b", true},
		{"disabledItems[@index]", "disabledItems", "@index", true},
		{"a[b][c]", "a[b]", "c", true},
		{"a.b[0]", "a.b", "0", true},
		{"a[]", "", "", false},
		{"[b]", "", "", false},
		{"a[b]c", "", "", false},
		{"ab", "", "", false},
	}
	for _, test := range tests {
		var name, key, ok = Bracket(test.input)
		if ok != test.ok || name != test.name || key != test.key {
			t.Errorf("Bracket(%q) = %q, %q, %v", test.input, name, key, ok)
		}
	}
}

func TestPath(t *testing.T) {
	var tests = []struct {
		input, base, member string
		ok                  bool
	}{
		{"user.name", "user", "name", true},
		{"a.b.c", "a.b", "c", true},
		{"@this.length", "@this", "length", true},
		{"a[b].c", "a[b]", "c", true},
		{".a", "", "", false},
		{"a.", "", "", false},
		{"plain", "", "", false},
	}
	for _, test := range tests {
		var base, member, ok = Path(test.input)
		if ok != test.ok || base != test.base || member != test.member {
			t.Errorf("Path(%q) = %q, %q, %v", test.input, base, member, ok)
		}
	}
}
