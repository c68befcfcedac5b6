// Package template holds the set of named templates a program renders from.
package template

import (
	"fmt"
	"sort"

	"github.com/robfig/curly/data"
	"github.com/robfig/curly/parse"
)

// Registry is a set of parsed templates, along with the globals that every
// one of them may refer to.  The zero value is ready to use.
type Registry struct {
	Templates map[string]*parse.Tree // templates by name
	Globals   *data.Map              // values visible to all templates, beneath the render context
}

// Add adds the given tree to the registry.  Template names must be unique.
func (r *Registry) Add(tree *parse.Tree) error {
	if r.Templates == nil {
		r.Templates = make(map[string]*parse.Tree)
	}
	if _, ok := r.Templates[tree.Name]; ok {
		return fmt.Errorf("template %q is already defined", tree.Name)
	}
	r.Templates[tree.Name] = tree
	return nil
}

// Template returns the template of the given name.
func (r *Registry) Template(name string) (*parse.Tree, bool) {
	var tree, ok = r.Templates[name]
	return tree, ok
}

// Names returns the names of all templates, sorted.
func (r *Registry) Names() []string {
	var names = make([]string, 0, len(r.Templates))
	for name := range r.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineNumber returns the line on which pos falls within the named template,
// or 0 if there is no such template.
func (r *Registry) LineNumber(name string, pos parse.Pos) int {
	var tree, ok = r.Templates[name]
	if !ok || int(pos) > len(tree.Source) {
		return 0
	}
	return tree.LineNumber(pos)
}
