package render

import "github.com/robfig/curly/data"

// Keys injected by the each block.
const (
	IndexKey = "@index" // position of the current element of a list
	KeyKey   = "@key"   // key of the current entry of a map
	ThisKey  = "@this"  // the current element
)

type scope []*data.Map // a stack of variable scopes, deepest last

func newScope(maps ...*data.Map) scope {
	var s scope
	for _, m := range maps {
		if m != nil {
			s = append(s, m)
		}
	}
	return s
}

// augment returns a child scope with m laid over s.  s itself is unchanged,
// and sibling scopes augmented from the same parent never share storage.
func (s scope) augment(m *data.Map) scope {
	return append(s[:len(s):len(s)], m)
}

// lookup checks the variable scopes, deepest out, for the given key
func (s scope) lookup(k string) (data.Value, bool) {
	for i := range s {
		if val, ok := s[len(s)-i-1].Lookup(k); ok {
			return val, true
		}
	}
	return nil, false
}
