package cosmic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
)

// Loader turns configuration files into Measurements. Parser selects the
// tree parsing engine once at construction; the zero value uses the
// built-in dialect parser.
type Loader struct {
	Parser TreeParser
}

// LoadMeasurement reads a measurement definition from a YAML or JSON file
// using the default loader.
func LoadMeasurement(path string) (*Measurement, error) {
	return Loader{}.Load(path)
}

// Load reads path and decodes it into a Measurement. Files with a .json
// extension are decoded as JSON, everything else goes through the
// configured tree parser.
func (l Loader) Load(path string) (*Measurement, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %q: %w", path, err)
	}
	defer fd.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		tree, err := parseJSON(fd)
		if err != nil {
			return nil, fmt.Errorf("parsing configuration %q: %w", path, err)
		}
		return DecodeMeasurement(tree)
	}

	m, err := l.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("parsing configuration %q: %w", path, err)
	}
	return m, nil
}

// Decode parses a measurement definition from r using the configured tree
// parser.
func (l Loader) Decode(r io.Reader) (*Measurement, error) {
	parser := l.Parser
	if parser == nil {
		parser = Parse
	}
	tree, err := parser(r)
	if err != nil {
		return nil, err
	}
	return DecodeMeasurement(tree)
}

// DecodeMeasurement converts a parse tree into a Measurement, validating
// required fields along the way.
func DecodeMeasurement(root *Node) (*Measurement, error) {
	if root == nil || root.Kind != KindMapping {
		return nil, errors.New("measurement configuration must define a mapping with 'system' and 'functional_processes' keys")
	}

	system := &Node{Kind: KindMapping}
	if s, ok := root.get("system"); ok && s.Kind == KindMapping {
		system = s
	}

	m := &Measurement{
		Name:                 "Unnamed System",
		Boundary:             system.stringField("boundary"),
		Description:          system.stringField("description"),
		PersistenceResources: system.stringList("persistence_resources"),
		ExternalActors:       system.stringList("external_actors"),
		ObjectsOfInterest:    root.stringList("objects", "objects_of_interest"),
	}
	if name, ok := system.get("name"); ok {
		m.Name = name.text()
	}

	processes, ok := root.field("functional_processes")
	if ok {
		if processes.Kind != KindList {
			return nil, errors.New("'functional_processes' must be a list of process definitions")
		}
		for _, item := range processes.Items {
			p, err := decodeProcess(item)
			if err != nil {
				return nil, err
			}
			m.Processes = append(m.Processes, p)
		}
	}
	return m, nil
}

func decodeProcess(n *Node) (FunctionalProcess, error) {
	if n.Kind != KindMapping {
		return FunctionalProcess{}, errors.New("functional process definition must be a mapping")
	}
	name, ok := n.get("name")
	if !ok {
		return FunctionalProcess{}, errors.New("functional process definition must include a 'name' field")
	}

	p := FunctionalProcess{
		Name:             strings.TrimSpace(name.text()),
		Description:      n.stringField("description", "purpose"),
		Trigger:          n.stringField("trigger"),
		ObjectOfInterest: n.stringField("object_of_interest", "ooi"),
	}

	if movements, ok := n.field("data_movements"); ok {
		if movements.Kind != KindList {
			return FunctionalProcess{}, fmt.Errorf("'data_movements' of process %q must be a list", p.Name)
		}
		for _, item := range movements.Items {
			mv, err := decodeMovement(item)
			if err != nil {
				return FunctionalProcess{}, fmt.Errorf("process %q: %w", p.Name, err)
			}
			p.Movements = append(p.Movements, mv)
		}
	}

	// Movements inherit the trigger and object of interest of their
	// process when they do not set their own.
	defaults := DataMovement{
		ObjectOfInterest: p.ObjectOfInterest,
		Trigger:          p.Trigger,
	}
	for i := range p.Movements {
		_ = mergo.Merge(&p.Movements[i], defaults)
	}
	return p, nil
}

func decodeMovement(n *Node) (DataMovement, error) {
	if n.Kind != KindMapping {
		return DataMovement{}, errors.New("data movement definition must be a mapping")
	}
	typ, ok := n.get("type")
	if !ok {
		return DataMovement{}, errors.New("data movement definition must include a 'type' field")
	}
	desc, ok := n.get("description")
	if !ok {
		return DataMovement{}, errors.New("data movement definition must include a 'description' field")
	}
	t, err := ParseMovementType(typ.text())
	if err != nil {
		return DataMovement{}, err
	}
	return DataMovement{
		Type:             t,
		Description:      strings.TrimSpace(desc.text()),
		ObjectOfInterest: n.stringField("object_of_interest", "ooi"),
		Trigger:          n.stringField("trigger"),
		CodeReference:    n.stringField("code_reference"),
		Notes:            n.stringField("notes", "additional_notes"),
	}, nil
}

// field returns the first of the given keys that holds a usable value.
// Null values and empty strings do not shadow a later alias.
func (n *Node) field(names ...string) (*Node, bool) {
	for _, name := range names {
		v, ok := n.get(name)
		if !ok || v.Kind == KindNull {
			continue
		}
		if v.Kind == KindString && v.Str == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func (n *Node) stringField(names ...string) string {
	v, ok := n.field(names...)
	if !ok {
		return ""
	}
	return v.text()
}

func (n *Node) stringList(names ...string) []string {
	v, ok := n.field(names...)
	if !ok || v.Kind != KindList {
		return nil
	}
	var out []string
	for _, item := range v.Items {
		out = append(out, item.text())
	}
	return out
}

// parseJSON decodes JSON input into the same tree shape the YAML parsers
// produce, walking the token stream so that object key order is kept.
func parseJSON(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(decoded(r))
	dec.UseNumber()
	n, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected trailing content in JSON document")
	}
	return n, nil
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &Node{Kind: KindMapping}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &Node{Kind: KindList}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Items = append(n.Items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case nil:
		return &Node{Kind: KindNull}, nil
	case bool:
		return &Node{Kind: KindBool, Bool: t}, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return &Node{Kind: KindInt, Int: i}, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindFloat, Float: f}, nil
	case string:
		return &Node{Kind: KindString, Str: t}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}
