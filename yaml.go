package cosmic

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML is the TreeParser backed by the full YAML library. It decodes
// through yaml.Node rather than into maps so that mapping key order
// survives. For documents within the restricted dialect it produces the
// same tree as Parse.
func ParseYAML(r io.Reader) (*Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(decoded(r)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Node{Kind: KindMapping}, nil
		}
		return nil, err
	}
	return fromYAML(&doc)
}

func fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{Kind: KindMapping}, nil
		}
		return fromYAML(y.Content[0])

	case yaml.AliasNode:
		return fromYAML(y.Alias)

	case yaml.SequenceNode:
		n := &Node{Kind: KindList}
		for _, c := range y.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, item)
		}
		return n, nil

	case yaml.MappingNode:
		n := &Node{Kind: KindMapping}
		for i := 0; i+1 < len(y.Content); i += 2 {
			value, err := fromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			n.set(y.Content[i].Value, value)
		}
		return n, nil

	case yaml.ScalarNode:
		return fromYAMLScalar(y)

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", y.Kind, y.Line)
	}
}

func fromYAMLScalar(y *yaml.Node) (*Node, error) {
	switch y.Tag {
	case "!!null":
		return &Node{Kind: KindNull}, nil
	case "!!bool":
		return &Node{Kind: KindBool, Bool: strings.EqualFold(y.Value, "true")}, nil
	case "!!int":
		i, err := strconv.ParseInt(y.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("integer scalar %q at line %d: %w", y.Value, y.Line, err)
		}
		return &Node{Kind: KindInt, Int: i}, nil
	case "!!float":
		f, err := strconv.ParseFloat(y.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("float scalar %q at line %d: %w", y.Value, y.Line, err)
		}
		return &Node{Kind: KindFloat, Float: f}, nil
	default:
		return &Node{Kind: KindString, Str: y.Value}, nil
	}
}
