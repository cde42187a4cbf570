package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the record as a YAML mapping with columns in
// insertion order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valNode, err := yamlNode(r.values[key])
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the record, preserving document
// key order.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, nodeKind(node))
	}
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		v, err := yamlValue(node.Content[i+1])
		if err != nil {
			return err
		}
		r.Set(key, v)
	}
	return nil
}

// yamlNode builds a yaml.Node for a cell value.
func yamlNode(v Value) (*yaml.Node, error) {
	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	if nested, ok := v.(*Record); ok {
		n, err := nested.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return n.(*yaml.Node), nil
	}
	if elems, ok := v.([]Value); ok {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range elems {
			en, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, en)
		}
		return node, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

// yamlValue converts a yaml.Node into a cell value. Mappings become nested
// records, integers int64, everything else what yaml.v3 decodes naturally.
func yamlValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.MappingNode:
		nested := New()
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		var elems []Value
		for _, c := range node.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return elems, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		if i, ok := v.(int); ok {
			return int64(i), nil
		}
		return v, nil
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "mapping"
	}
}
