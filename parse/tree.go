package parse

import (
	"strings"

	"github.com/robfig/curly/errortypes"
)

// Tree is a named, split template source.
type Tree struct {
	Name     string   // name provided for the input, used in errors
	Source   string   // the full input text
	Segments Segments // the split input
}

// New splits src without checking its blocks.  Unbalanced blocks are
// reported when the tree is rendered.
func New(name, src string) *Tree {
	return &Tree{name, src, Split(src)}
}

// Parse splits src and verifies that every block is closed.
func Parse(name, src string) (*Tree, error) {
	var t = New(name, src)
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}

// Check verifies that every block opened in the tree is closed within the
// block that encloses it.  The error names the first offending opener.
func (t *Tree) Check() error {
	return t.check(t.Segments)
}

func (t *Tree) check(segs Segments) error {
	for i := 1; i < len(segs); i += 2 {
		var head = segs[i].Head()
		if !IsBlock(head) {
			continue
		}
		var end = FindClose(segs, i)
		if end < 0 {
			return t.UnclosedError(segs[i])
		}
		if err := t.check(segs[i+1 : end]); err != nil {
			return err
		}
		i = end
	}
	return nil
}

// UnclosedError returns the error for a block opened by seg that has no
// closing tag.
func (t *Tree) UnclosedError(seg Segment) error {
	var keyword = seg.Head()
	return t.Errorf(seg.Pos, "%s needs {{/%s}} expression", keyword, keyword)
}

// Errorf returns an error positioned at pos.
func (t *Tree) Errorf(pos Pos, format string, args ...interface{}) error {
	return errortypes.NewErrFilePosf(t.Name, t.LineNumber(pos), t.ColumnNumber(pos), format, args...)
}

// LineNumber reports the 1-based line of pos.
func (t *Tree) LineNumber(pos Pos) int {
	return 1 + strings.Count(t.Source[:pos], "\n")
}

// ColumnNumber reports the 1-based column of pos within its line.
func (t *Tree) ColumnNumber(pos Pos) int {
	return int(pos) - strings.LastIndex(t.Source[:pos], "\n")
}
