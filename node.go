package cosmic

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Node holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMapping
)

// Node is a single value in a parsed configuration tree: a scalar, a list,
// or a mapping with keys in document order.
type Node struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string

	Items   []*Node    // KindList
	Entries []MapEntry // KindMapping
}

type MapEntry struct {
	Key   string
	Value *Node
}

func (n *Node) get(key string) (*Node, bool) {
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// set stores key in the mapping, replacing an existing entry in place so
// that key order reflects first insertion.
func (n *Node) set(key string, v *Node) {
	for i, e := range n.Entries {
		if e.Key == key {
			n.Entries[i].Value = v
			return
		}
	}
	n.Entries = append(n.Entries, MapEntry{Key: key, Value: v})
}

// text renders a scalar node as a plain string.
func (n *Node) text() string {
	switch n.Kind {
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindInt:
		return strconv.FormatInt(n.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case KindString:
		return n.Str
	default:
		return ""
	}
}

// MarshalJSON renders the tree in a canonical form, keeping mapping keys in
// document order.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(n.Bool)
	case KindInt:
		return json.Marshal(n.Int)
	case KindFloat:
		return json.Marshal(n.Float)
	case KindString:
		return json.Marshal(n.Str)
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			bs, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(bs)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			bs, err := e.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(bs)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
}
