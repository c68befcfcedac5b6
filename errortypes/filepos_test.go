package errortypes_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/robfig/curly/errortypes"
)

func TestIsErrFilePos(t *testing.T) {
	var tests = []struct {
		name string
		in   error
		out  bool
	}{
		{
			name: "nil",
			out:  false,
		},
		{
			name: "errors.New",
			in:   errors.New("an error"),
			out:  false,
		},
		{
			name: "new ErrFilePos",
			in:   errortypes.NewErrFilePosf("spinbox.curly", 1, 2, "message"),
			out:  true,
		},
		{
			name: "wrapped ErrFilePos",
			in:   fmt.Errorf("compiling: %w", errortypes.NewErrFilePosf("spinbox.curly", 1, 2, "message")),
			out:  true,
		},
	}
	for _, test := range tests {
		got := errortypes.IsErrFilePos(test.in)
		if got != test.out {
			t.Errorf("%s: Expected %v, got %v", test.name, test.out, got)
		}
	}
}

func TestToErrFilePos(t *testing.T) {
	var tests = []struct {
		name             string
		in               error
		expectNil        bool
		expectedFilename string
		expectedLine     int
		expectedCol      int
	}{
		{
			name:      "nil",
			expectNil: true,
		},
		{
			name:      "errors.New",
			in:        errors.New("an error"),
			expectNil: true,
		},
		{
			name:             "new ErrFilePos",
			in:               errortypes.NewErrFilePosf("meridiem.curly", 3, 7, "if needs {{/if}} expression"),
			expectNil:        false,
			expectedFilename: "meridiem.curly",
			expectedLine:     3,
			expectedCol:      7,
		},
	}
	for _, test := range tests {
		got := errortypes.ToErrFilePos(test.in)
		if test.expectNil && got != nil {
			t.Errorf("%s: expected ErrFilePos to be nil", test.name)
		}
		if !test.expectNil {
			if got == nil {
				t.Errorf("%s: expected ErrFilePos to be non-nil", test.name)
				return
			}
			if got.File() != test.expectedFilename {
				t.Errorf("%s: expected file '%s', got '%s'", test.name, test.expectedFilename, got.File())
			}
			if got.Line() != test.expectedLine {
				t.Errorf("%s: expected line %d, got %d", test.name, test.expectedLine, got.Line())
			}
			if got.Col() != test.expectedCol {
				t.Errorf("%s: expected col %d, got %d", test.name, test.expectedCol, got.Col())
			}
		}
	}
}

func TestErrFilePosMessage(t *testing.T) {
	var err = errortypes.NewErrFilePosf("a.curly", 2, 5, "%s needs {{/%s}} expression", "each", "each")
	if err.Error() != "a.curly:2:5: each needs {{/each}} expression" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
