package data

import "strings"

// Map is a mapping of names to values that remembers insertion order.
// Iterating a Map (Keys) visits entries in the order they were first set.
type Map struct {
	keys  []string
	items map[string]Value
}

// NewMap returns a map holding the given alternating key/value pairs.  Values
// are converted with New.  It panics if a key is not a string.
func NewMap(kv ...interface{}) *Map {
	var m = &Map{items: make(map[string]Value, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		var k, ok = kv[i].(string)
		if !ok {
			panic("map keys must be strings")
		}
		m.Set(k, New(kv[i+1]))
	}
	return m
}

// Set binds k to v, keeping the original position of k if it was already set.
func (m *Map) Set(k string, v Value) *Map {
	if m.items == nil {
		m.items = make(map[string]Value)
	}
	if _, ok := m.items[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.items[k] = v
	return m
}

// Key retrieves a value under the named key, or Undefined if it doesn't exist.
func (m *Map) Key(k string) Value {
	if m == nil {
		return Undefined{}
	}
	var result, ok = m.items[k]
	if !ok {
		return Undefined{}
	}
	return result
}

// Lookup returns the value under k and whether it was present.
func (m *Map) Lookup(k string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	var v, ok = m.items[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Map) Has(k string) bool {
	_, ok := m.Lookup(k)
	return ok
}

// Keys returns the keys in insertion order.  The result is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Extend returns a shallow copy of m with the entries of overlay set on top.
// Neither m nor overlay is modified.
func (m *Map) Extend(overlay *Map) *Map {
	var result = &Map{items: make(map[string]Value, m.Len()+overlay.Len())}
	for _, k := range m.Keys() {
		result.Set(k, m.items[k])
	}
	for _, k := range overlay.Keys() {
		result.Set(k, overlay.items[k])
	}
	return result
}

func (m *Map) Truthy() bool { return true }

func (m *Map) String() string {
	var items = make([]string, 0, m.Len())
	for _, k := range m.Keys() {
		items = append(items, k+": "+m.items[k].String())
	}
	return "{" + strings.Join(items, ", ") + "}"
}

func (m *Map) Equals(other Value) bool {
	if o, ok := other.(*Map); ok {
		return m == o
	}
	return false
}
