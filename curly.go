package curly

import (
	"bytes"
	"fmt"
	"io"

	"github.com/robfig/curly/data"
	"github.com/robfig/curly/parse"
	"github.com/robfig/curly/render"
)

// templateName identifies sources rendered directly, in error messages.
const templateName = "template"

// Template renders source against context and returns the output.
//
// The source is rendered as given; see parse.JoinLines to drop the line
// breaks used to lay it out.  A nil context renders against an empty one.
// If a block is left unclosed, or a helper fails, an error is returned and
// no output is produced.
func Template(source string, context *data.Map) (string, error) {
	var buf bytes.Buffer
	if err := render.Execute(&buf, parse.New(templateName, source), context); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustTemplate is like Template but panics if the source can not be rendered.
func MustTemplate(source string, context *data.Map) string {
	var out, err = Template(source, context)
	if err != nil {
		panic(err)
	}
	return out
}

// Render renders source to w, using obj as the context.  obj may be a
// *data.Map, or any Go map or struct, which is converted with data.New.
func Render(w io.Writer, source string, obj interface{}) error {
	var context *data.Map
	if obj != nil {
		var ok bool
		context, ok = data.New(obj).(*data.Map)
		if !ok {
			return fmt.Errorf("invalid data type. expected map/struct, got %T", obj)
		}
	}
	return render.Execute(w, parse.New(templateName, source), context)
}
