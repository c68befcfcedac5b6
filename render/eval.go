package render

import (
	"github.com/robfig/curly/data"
	"github.com/robfig/curly/parse"
)

// Eval resolves an expression against context.  The first token names a
// value; if that value is a Func it is called with the remaining tokens
// resolved as arguments, otherwise the remaining tokens are ignored.
func Eval(tokens []string, context *data.Map) data.Value {
	return newScope(context).eval(tokens)
}

// Resolve resolves a single token against context, without calling it.
func Resolve(token string, context *data.Map) data.Value {
	return newScope(context).resolve(token)
}

func (s scope) eval(tokens []string) data.Value {
	if len(tokens) == 0 {
		return data.Undefined{}
	}
	var head = s.resolve(tokens[0])
	var fn, ok = head.(data.Func)
	if !ok {
		return head
	}
	var args = make([]data.Value, len(tokens)-1)
	for i, tok := range tokens[1:] {
		args[i] = s.resolve(tok)
	}
	if result := fn(args); result != nil {
		return result
	}
	return data.Undefined{}
}

// resolve tries, in order: a key in scope, a boolean literal, a bracket
// access, a number literal, and a dotted member access.
func (s scope) resolve(tok string) data.Value {
	if val, ok := s.lookup(tok); ok {
		if val == nil {
			return data.Undefined{}
		}
		return val
	}
	if b, ok := parse.Bool(tok); ok {
		return data.Bool(b)
	}
	if name, key, ok := parse.Bracket(tok); ok {
		return data.Member(s.resolve(name), s.resolve(key))
	}
	if f, ok := parse.Number(tok); ok {
		return data.Float(f)
	}
	if base, member, ok := parse.Path(tok); ok {
		return data.Member(s.resolve(base), data.String(member))
	}
	return data.Undefined{}
}
