package render

import (
	"errors"
	"io"

	"github.com/robfig/curly/data"
)

var ErrTemplateNotFound = errors.New("template not found")

// Renderer provides parameters to template execution.
type Renderer struct {
	tofu *Tofu     // a registry of all templates in a bundle
	name string    // name of the template to render
	ij   *data.Map // injected data, beneath the context
}

// Inject sets data visible to the template beneath its context, such as
// values computed once per request.
func (r *Renderer) Inject(ij *data.Map) *Renderer {
	r.ij = ij
	return r
}

// Execute applies the template to the specified context, and writes the
// output to wr.  Lookups search the context, then injected data, then the
// registry globals, then the helpers.
func (r Renderer) Execute(wr io.Writer, context *data.Map) error {
	if r.tofu == nil || r.tofu.registry == nil {
		return errors.New("template registry required")
	}
	if r.name == "" {
		return errors.New("template name required")
	}

	var tree, ok = r.tofu.registry.Template(r.name)
	if !ok {
		return ErrTemplateNotFound
	}
	return execute(wr, tree, newScope(
		funcScope(r.tofu.funcs),
		r.tofu.registry.Globals,
		r.ij,
		context))
}
