package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type splitTest struct {
	name  string
	input string
	texts []string
}

var splitTests = []splitTest{
	{"empty", "", []string{""}},
	{"text", "now is the time", []string{"now is the time"}},
	{"variable", `<div class="{{className}}">`, []string{`<div class="`, "className", `">`}},
	{"trimmed", "<span>{{ content }}</span>", []string{"<span>", "content", "</span>"}},
	{"wide whitespace", "{{\t  a  \n}}", []string{"", "a", ""}},
	{"helper", "{{getClassNames disabled prefix}}", []string{"", "getClassNames disabled prefix", ""}},
	{"adjacent", "{{a}}{{b}}", []string{"", "a", "", "b", ""}},
	{"block", "{{if x}}Y{{/if}}", []string{"", "if x", "Y", "/if", ""}},
	{"specials", "{{@this}}{{a[b]}}{{-3.5}}{{user.name}}", []string{"", "@this", "", "a[b]", "", "-3.5", "", "user.name", ""}},
	{"not a tag", "{{ a! }} {b} {{}}", []string{"{{ a! }} {b} {{}}"}},
	{"unterminated", "{{a", []string{"{{a"}},
	{"triple braces", "{{{a}}}", []string{"{", "a", "}"}},
}

func TestSplit(t *testing.T) {
	for _, test := range splitTests {
		var segs = Split(test.input)
		if diff := cmp.Diff(test.texts, segs.Texts()); diff != "" {
			t.Errorf("%s: split mismatch (-want +got):\n%s", test.name, diff)
		}
		if len(segs)%2 != 1 {
			t.Errorf("%s: expected an odd number of segments, got %d", test.name, len(segs))
		}
	}
}

func TestSplitPositions(t *testing.T) {
	var segs = Split("ab{{ x }}cd{{/if}}")
	var expected = Segments{
		{"ab", 0},
		{"x", 2},
		{"cd", 9},
		{"/if", 11},
		{"", 18},
	}
	if diff := cmp.Diff(expected, segs); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinLines(t *testing.T) {
	var input = "<div>\n    <span>{{a}}</span>\n\n  </div>\n"
	if actual := JoinLines(input); actual != "<div><span>{{a}}</span></div>" {
		t.Errorf("got %q", actual)
	}
	if actual := JoinLines("no breaks  here"); actual != "no breaks  here" {
		t.Errorf("got %q", actual)
	}
}
