package orderedmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = &OrderedMap[int, any]{}
	_ yaml.Unmarshaler = &OrderedMap[int, any]{}
)

// MarshalYAML renders the map as a YAML mapping whose entries appear in
// insertion order.
func (om *OrderedMap[K, V]) MarshalYAML() (any, error) {
	if om == nil || om.list == nil {
		return nil, nil
	}

	node := yaml.Node{
		Kind: yaml.MappingNode,
	}
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(pair.Key); err != nil {
			return nil, err
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(pair.Value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return &node, nil
}

// UnmarshalYAML rebuilds the map from a YAML mapping, binding its entries in
// document order.
func (om *OrderedMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("cannot unmarshal %v into an ordered map", shortNodeKind(node.Kind))
	}

	if om.list == nil {
		om.initialize(len(node.Content) / 2)
	}

	// mapping node content is a flat [key, value, key, value, ...] sequence
	for i := 0; i < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}

		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}

		om.Set(key, value)
	}

	return nil
}

func shortNodeKind(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", kind)
	}
}
