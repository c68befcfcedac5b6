package render

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/robfig/curly/data"
	"github.com/robfig/curly/errortypes"
	"github.com/robfig/curly/parse"
)

// state represents the state of an execution.
type state struct {
	tree    *parse.Tree // the template being rendered
	wr      io.Writer
	pos     parse.Pos // position of the current tag, for errors
	context scope     // variable scope
}

// Execute renders tree against context, using the default helpers, and
// writes the output to wr.  Nothing is written if rendering fails.
func Execute(wr io.Writer, tree *parse.Tree, context *data.Map) error {
	return execute(wr, tree, newScope(funcScope(Funcs), context))
}

func execute(wr io.Writer, tree *parse.Tree, context scope) (err error) {
	var buf bytes.Buffer
	var s = &state{tree: tree, wr: &buf, context: context}
	if err = s.run(); err != nil {
		return err
	}
	_, err = buf.WriteTo(wr)
	return err
}

func (s *state) run() (err error) {
	defer s.errRecover(&err)
	s.walk(s.tree.Segments)
	return nil
}

// at marks the state to be on the tag at pos, for error reporting.
func (s *state) at(pos parse.Pos) {
	s.pos = pos
}

// errorf formats the error and terminates processing.
func (s *state) errorf(format string, args ...interface{}) {
	panic(s.tree.Errorf(s.pos, format, args...))
}

// errRecover is the handler that turns panics into returns from the top
// level of Execute.
func (s *state) errRecover(errp *error) {
	if e := recover(); e != nil {
		var line = s.tree.LineNumber(s.pos)
		switch e := e.(type) {
		case runtime.Error:
			*errp = fmt.Errorf("template %s:%d: %v\n%v", s.tree.Name, line, e, string(debug.Stack()))
		case error:
			if errortypes.IsErrFilePos(e) {
				*errp = e
				return
			}
			*errp = fmt.Errorf("template %s:%d: %w", s.tree.Name, line, e)
		default:
			*errp = fmt.Errorf("template %s:%d: %v", s.tree.Name, line, e)
		}
	}
}

// walk renders the segments in order.  Literal text is copied, expressions
// are evaluated and printed, and each block is handed its body and skipped
// past as a unit.
func (s *state) walk(segs parse.Segments) {
	for i := 0; i < len(segs); i++ {
		if i%2 == 0 {
			s.write(segs[i].Text)
			continue
		}

		s.at(segs[i].Pos)
		var fields = segs[i].Fields()
		if !parse.IsBlock(fields[0]) {
			s.write(s.context.eval(fields).String())
			continue
		}

		var end = parse.FindClose(segs, i)
		if end < 0 {
			panic(s.tree.UnclosedError(segs[i]))
		}
		var args, body = fields[1:], segs[i+1 : end]
		switch fields[0] {
		case parse.KeywordIf:
			s.walkIf(args, body)
		case parse.KeywordEach:
			s.walkEach(args, body)
		case parse.KeywordWith:
			s.walkWith(args, body)
		}
		i = end
	}
}

func (s *state) write(str string) {
	if _, err := io.WriteString(s.wr, str); err != nil {
		s.errorf("%s", err)
	}
}

// walkIf renders the first branch whose condition is truthy.  Conditions
// after it are not evaluated.
func (s *state) walkIf(args []string, body parse.Segments) {
	for _, branch := range parse.Branches(args, body) {
		if branch.Else || s.context.eval(branch.Cond).Truthy() {
			s.walk(branch.Body)
			return
		}
	}
}

// walkEach renders the body once per element of a list or entry of a map,
// with the element bound to @this and its position to @index or @key.
// Any other value renders nothing.
func (s *state) walkEach(args []string, body parse.Segments) {
	var parent = s.context
	switch coll := parent.eval(args).(type) {
	case data.List:
		for i, item := range coll {
			s.context = parent.augment(new(data.Map).
				Set(IndexKey, data.Int(i)).
				Set(ThisKey, item))
			s.walk(body)
		}
	case *data.Map:
		for _, k := range coll.Keys() {
			s.context = parent.augment(new(data.Map).
				Set(KeyKey, data.String(k)).
				Set(ThisKey, coll.Key(k)))
			s.walk(body)
		}
	}
	s.context = parent
}

// walkWith renders the body once with the alias bound to the value of the
// expression before "as".  Without an alias the body renders in the
// enclosing scope.
func (s *state) walkWith(args []string, body parse.Segments) {
	var expr, alias, ok = parse.Alias(args)
	if !ok {
		s.walk(body)
		return
	}
	var parent = s.context
	s.context = parent.augment(new(data.Map).Set(alias, parent.eval(expr)))
	s.walk(body)
	s.context = parent
}
