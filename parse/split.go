// Package parse splits a template source into its literal and tag segments,
// and answers the questions the renderer asks about them: what a token means
// and where a block ends.
//
// Splitting never fails.  Text that does not form a well-formed tag is kept
// as literal text.
package parse

import (
	"regexp"
	"strings"
)

// Pos is a byte offset into a template source.
type Pos int

// Segment is a piece of a split source.
type Segment struct {
	Text string // literal text, or the trimmed body of a tag
	Pos  Pos    // offset of the text, or of the tag's opening "{{"
}

// Fields returns the whitespace-separated tokens of a tag body.
func (s Segment) Fields() []string {
	return strings.Fields(s.Text)
}

// Head returns the first token of a tag body.
func (s Segment) Head() string {
	var fields = s.Fields()
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Segments is a split template source.  Literal text occupies the even
// indices and tag bodies the odd indices, so the length is always odd.
// A Segments value is never modified once split; sub-slices taken from an
// even index keep the same layout.
type Segments []Segment

// Texts returns the text of every segment.
func (s Segments) Texts() []string {
	var texts = make([]string, len(s))
	for i, seg := range s {
		texts[i] = seg.Text
	}
	return texts
}

const tokenChars = `[A-Za-z0-9_.@\[\]\-]+`

// tagRegexp matches "{{ body }}", capturing the body without surrounding
// whitespace.  A body is an optional "/" followed by space-separated tokens.
var tagRegexp = regexp.MustCompile(`\{\{\s*(/?` + tokenChars + `(?:[ \t]+` + tokenChars + `)*)\s*\}\}`)

// Split splits src on its tags.
func Split(src string) Segments {
	var (
		segs Segments
		pos  = 0
	)
	for _, loc := range tagRegexp.FindAllStringSubmatchIndex(src, -1) {
		segs = append(segs,
			Segment{src[pos:loc[0]], Pos(pos)},
			Segment{src[loc[2]:loc[3]], Pos(loc[0])})
		pos = loc[1]
	}
	return append(segs, Segment{src[pos:], Pos(pos)})
}

var lineBreakRegexp = regexp.MustCompile(`\n\s*`)

// JoinLines removes every line break along with the indentation that follows
// it, so templates may be laid out over several lines without the layout
// leaking into the output.
func JoinLines(src string) string {
	return lineBreakRegexp.ReplaceAllString(src, "")
}
