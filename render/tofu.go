package render

import (
	"fmt"
	"io"

	"github.com/robfig/curly/data"
	"github.com/robfig/curly/template"
)

// Tofu is a registry of templates, ready to render.
type Tofu struct {
	registry *template.Registry
	funcs    map[string]data.Func // helpers by name
}

// NewTofu returns a new instance that is ready to render the given templates,
// with the default helpers.
func NewTofu(registry *template.Registry) *Tofu {
	return &Tofu{registry, Funcs}
}

// AddFuncs makes funcs available to the templates under the given names.
func (tofu *Tofu) AddFuncs(funcs map[string]data.Func) *Tofu {
	var newfuncs = make(map[string]data.Func)
	for k, v := range tofu.funcs {
		newfuncs[k] = v
	}
	for k, v := range funcs {
		newfuncs[k] = v
	}
	tofu.funcs = newfuncs
	return tofu
}

// Render is a convenience function that executes the template of the given
// name, using the given object (converted with data.New) as context, and
// writes the results to the given Writer.
func (tofu Tofu) Render(wr io.Writer, name string, obj interface{}) error {
	var m *data.Map
	if obj != nil {
		var ok bool
		m, ok = data.New(obj).(*data.Map)
		if !ok {
			return fmt.Errorf("invalid data type. expected map/struct, got %T", obj)
		}
	}
	return tofu.NewRenderer(name).Execute(wr, m)
}

// NewRenderer returns a new renderer for the named template.
func (tofu *Tofu) NewRenderer(name string) *Renderer {
	return &Renderer{
		tofu: tofu,
		name: name,
	}
}
