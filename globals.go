package curly

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robfig/curly/data"
	"github.com/robfig/curly/parse"
)

// ParseGlobals parses the given input, expecting the form:
//  <global_name> = <literal>
//
// Furthermore:
//  - Empty lines and lines beginning with '//' are ignored.
//  - <literal> must be null, a boolean, a number, or a single- or
//    double-quoted string.
func ParseGlobals(input io.Reader) (*data.Map, error) {
	var (
		globals = data.NewMap()
		scanner = bufio.NewScanner(input)
		lineNum = 0
	)
	for scanner.Scan() {
		lineNum++
		var line = strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "//") {
			continue
		}
		var eq = strings.Index(line, "=")
		if eq == -1 {
			return nil, fmt.Errorf("line %d: no equals on line: %q", lineNum, line)
		}
		var (
			name = strings.TrimSpace(line[:eq])
			expr = strings.TrimSpace(line[eq+1:])
		)
		if name == "" {
			return nil, fmt.Errorf("line %d: missing global name: %q", lineNum, line)
		}
		var value, err = parseLiteral(expr)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", lineNum, name, err)
		}
		globals.Set(name, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return globals, nil
}

func parseLiteral(expr string) (data.Value, error) {
	if expr == "null" {
		return data.Null{}, nil
	}
	if b, ok := parse.Bool(expr); ok {
		return data.Bool(b), nil
	}
	if i, err := strconv.ParseInt(expr, 10, 64); err == nil {
		return data.Int(i), nil
	}
	if f, ok := parse.Number(expr); ok {
		return data.Float(f), nil
	}
	if strings.HasPrefix(expr, "'") || strings.HasPrefix(expr, `"`) {
		var s, err = parse.Unquote(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid string %s: %w", expr, err)
		}
		return data.String(s), nil
	}
	return nil, fmt.Errorf("not a literal: %s", expr)
}
