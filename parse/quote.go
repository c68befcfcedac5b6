package parse

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var unescapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
}

// Unquote takes a string literal in single or double quotes (including the
// surrounding quotes) and returns the unquoted string.  Backslash escapes
// \\ \' \" \n \r \t \b \f and \uNNNN are understood.
func Unquote(s string) (string, error) {
	n := len(s)
	if n < 2 {
		return "", errors.New("too short a string")
	}

	var quote = s[0]
	if (quote != '\'' && quote != '"') || s[n-1] != quote {
		return "", errors.New("string not surrounded by quotes")
	}

	s = s[1 : n-1]
	if !strings.ContainsRune(s, '\\') && !strings.ContainsRune(s, rune(quote)) {
		return s, nil
	}

	var escaping = false
	var result = make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if escaping {
			if r == 'u' {
				if i+4 > len(s) {
					return "", errors.New("error scanning unicode escape, expect \\uNNNN")
				}
				num, err := strconv.ParseUint(s[i:i+4], 16, 16)
				if err != nil {
					return "", err
				}
				r = rune(num)
				i += 4
			} else {
				replacement, ok := unescapes[r]
				if !ok {
					return "", errors.New("unrecognized escape code: \\" + string(r))
				}
				r = replacement
			}
			result = append(result, r)
			escaping = false
			continue
		}

		switch {
		case r == '\\':
			escaping = true
		case r == rune(quote):
			return "", errors.New("unescaped quote in string")
		default:
			result = append(result, r)
		}
	}
	if escaping {
		return "", errors.New("string ends in an escape")
	}
	return string(result), nil
}
