package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRegexp  = regexp.MustCompile(`^-?\d+\.?\d*$`)
	bracketRegexp = regexp.MustCompile(`^(.+)\[([^\[\]]+)\]$`)
)

// Bool reports whether tok is a boolean literal, and its value.
func Bool(tok string) (value, ok bool) {
	switch tok {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Number reports whether tok is a decimal literal: an optional "-", digits,
// and an optional fractional part.
func Number(tok string) (float64, bool) {
	if !numberRegexp.MatchString(tok) {
		return 0, false
	}
	var f, err = strconv.ParseFloat(strings.TrimSuffix(tok, "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bracket splits a "name[key]" token.  The name may itself end in a bracket
// access, so "a[b][c]" yields ("a[b]", "c").
func Bracket(tok string) (name, key string, ok bool) {
	var m = bracketRegexp.FindStringSubmatch(tok)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Path splits a dotted member access at its last dot, so "a.b.c" yields
// ("a.b", "c").  Both sides must be non-empty.
func Path(tok string) (base, member string, ok bool) {
	var i = strings.LastIndex(tok, ".")
	if i <= 0 || i == len(tok)-1 {
		return "", "", false
	}
	return tok[:i], tok[i+1:], true
}
