package data

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML decodes a YAML document whose top level is a mapping.  Mapping
// keys keep their document order.  An empty document yields an empty map.
func ReadYAML(r io.Reader) (*Map, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return NewMap(), nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	var v, err = FromYAML(&doc)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case *Map:
		return v, nil
	case Null:
		return NewMap(), nil
	}
	return nil, fmt.Errorf("yaml document must be a mapping, got %T", v)
}

// FromYAML converts a decoded YAML node into a data value.
func FromYAML(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.SequenceNode:
		var list = make(List, len(node.Content))
		for i, item := range node.Content {
			var v, err = FromYAML(item)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	case yaml.MappingNode:
		var m = NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			var v, err = FromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(node.Content[i].Value, v)
		}
		return m, nil
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	}
	return nil, fmt.Errorf("line %d: unexpected yaml node kind %v", node.Line, node.Kind)
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	var err error
	switch node.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		err = node.Decode(&b)
		return Bool(b), err
	case "!!int":
		var i int64
		err = node.Decode(&i)
		return Int(i), err
	case "!!float":
		var f float64
		err = node.Decode(&f)
		return Float(f), err
	}
	return String(node.Value), nil
}
