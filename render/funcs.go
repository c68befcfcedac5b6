package render

import (
	"log"
	"os"
	"sort"
	"strings"

	"github.com/robfig/curly/data"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Logger collects output from the log helper.
var Logger = log.New(os.Stderr, "[curly] ", 0)

// Funcs contains the builtin helpers.  They sit beneath the render context,
// so a context key of the same name hides them.
// Callers may add their own helpers to this map as well.
var Funcs = map[string]data.Func{
	"not":          funcNot,
	"eq":           funcEq,
	"length":       funcLength,
	"isNonnull":    funcIsNonnull,
	"join":         funcJoin,
	"formatNumber": funcFormatNumber,
	"log":          funcLog,
}

// funcScope returns funcs as a scope layer, in name order.
func funcScope(funcs map[string]data.Func) *data.Map {
	var names = make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	var m = new(data.Map)
	for _, name := range names {
		m.Set(name, funcs[name])
	}
	return m
}

// arg returns the i'th argument, or Undefined if it was not given.
func arg(args []data.Value, i int) data.Value {
	if i < len(args) {
		return args[i]
	}
	return data.Undefined{}
}

func funcNot(args []data.Value) data.Value {
	return data.Bool(!arg(args, 0).Truthy())
}

func funcEq(args []data.Value) data.Value {
	return data.Bool(arg(args, 0).Equals(arg(args, 1)))
}

func funcLength(args []data.Value) data.Value {
	return data.Member(arg(args, 0), data.String("length"))
}

func funcIsNonnull(args []data.Value) data.Value {
	switch arg(args, 0).(type) {
	case data.Null, data.Undefined:
		return data.Bool(false)
	}
	return data.Bool(true)
}

func funcJoin(args []data.Value) data.Value {
	var list, ok = arg(args, 0).(data.List)
	if !ok {
		return data.Undefined{}
	}
	var sep = ","
	if s, ok := arg(args, 1).(data.String); ok {
		sep = string(s)
	}
	var items = make([]string, len(list))
	for i, item := range list {
		items[i] = item.String()
	}
	return data.String(strings.Join(items, sep))
}

// funcFormatNumber formats a number with the grouping and decimal marks of a
// locale (default "en").  Non-numbers print as they are.
func funcFormatNumber(args []data.Value) data.Value {
	var value float64
	switch v := arg(args, 0).(type) {
	case data.Int:
		value = float64(v)
	case data.Float:
		value = float64(v)
	default:
		return data.String(v.String())
	}

	var locale = "en"
	if s, ok := arg(args, 1).(data.String); ok && s != "" {
		locale = string(s)
	}
	var tag, err = language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	var p = message.NewPrinter(tag)
	return data.String(p.Sprintf("%v", number.Decimal(value)))
}

func funcLog(args []data.Value) data.Value {
	var parts = make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	Logger.Print(strings.Join(parts, " "))
	return data.Undefined{}
}
