package cosmic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A TreeParser reads a configuration document and returns its parse tree.
// Two interchangeable implementations exist: Parse, the built-in parser for
// the restricted dialect, and ParseYAML, backed by a full YAML library.
type TreeParser func(r io.Reader) (*Node, error)

var errMixed = errors.New("mixed list and mapping structures at the same indentation")

// Parse reads a document in the restricted indentation dialect and returns
// its tree. An empty document parses to an empty mapping. The root may be
// any kind of node; callers that require a mapping enforce that themselves.
func Parse(r io.Reader) (*Node, error) {
	raw, err := io.ReadAll(decoded(r))
	if err != nil {
		return nil, err
	}
	lines, err := scanLines(string(raw))
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return &Node{Kind: KindMapping}, nil
	}
	node, _, err := parseBlock(lines, 0, lines[0].indent)
	return node, err
}

// decoded strips a UTF-8 BOM and transparently recodes UTF-16 input, which
// is how configs saved by Windows editors tend to arrive.
func decoded(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// parseBlock parses one indentation block starting at lines[start] and
// returns its value together with the index of the first line it did not
// consume. It stops at the first line shallower than indent. A block is a
// list or a mapping, never both.
func parseBlock(lines []line, start, indent int) (*Node, int, error) {
	var result *Node
	i := start
	for i < len(lines) {
		ln := lines[i]
		if ln.indent < indent {
			break
		}

		if ln.text == "-" || strings.HasPrefix(ln.text, "- ") {
			if result == nil {
				result = &Node{Kind: KindList}
			} else if result.Kind != KindList {
				return nil, 0, errMixed
			}
			rest := strings.TrimSpace(strings.TrimPrefix(ln.text, "-"))
			i++

			item, next, err := parseListItem(lines, i, ln.indent, rest)
			if err != nil {
				return nil, 0, err
			}
			result.Items = append(result.Items, item)
			i = next
			continue
		}

		key, valuePart, _ := strings.Cut(ln.text, ":")
		key = strings.TrimSpace(key)
		if result == nil {
			result = &Node{Kind: KindMapping}
		} else if result.Kind != KindMapping {
			return nil, 0, errMixed
		}
		valuePart = strings.TrimSpace(valuePart)
		i++
		if valuePart != "" {
			result.set(key, coerceScalar(valuePart))
			continue
		}
		value := &Node{Kind: KindNull}
		if i < len(lines) && lines[i].indent > ln.indent {
			var err error
			value, i, err = parseBlock(lines, i, lines[i].indent)
			if err != nil {
				return nil, 0, err
			}
		}
		result.set(key, value)
	}

	if result == nil {
		result = &Node{Kind: KindMapping}
	}
	return result, i, nil
}

// parseListItem parses the remainder of a single list item whose marker sat
// at itemIndent. rest is the text after the marker; start indexes the line
// following it.
func parseListItem(lines []line, start, itemIndent int, rest string) (*Node, int, error) {
	i := start

	if rest == "" {
		if i < len(lines) && lines[i].indent > itemIndent {
			return parseBlock(lines, i, lines[i].indent)
		}
		return &Node{Kind: KindNull}, i, nil
	}

	if key, valuePart, ok := strings.Cut(rest, ":"); ok {
		key = strings.TrimSpace(key)
		valuePart = strings.TrimSpace(valuePart)
		item := &Node{Kind: KindMapping}
		switch {
		case valuePart != "":
			item.set(key, coerceScalar(valuePart))
		case i < len(lines) && lines[i].indent > itemIndent:
			nested, next, err := parseBlock(lines, i, lines[i].indent)
			if err != nil {
				return nil, 0, err
			}
			item.set(key, nested)
			i = next
		default:
			item.set(key, &Node{Kind: KindNull})
		}

		// Further blocks indented past the item marker contribute more
		// keys to the same item, which is how multi-field list entries
		// span lines.
		for i < len(lines) && lines[i].indent > itemIndent {
			extra, next, err := parseBlock(lines, i, lines[i].indent)
			if err != nil {
				return nil, 0, err
			}
			if extra.Kind != KindMapping {
				return nil, 0, fmt.Errorf("list item mappings must contain dictionary structures at consistent indentation")
			}
			for _, e := range extra.Entries {
				item.set(e.Key, e.Value)
			}
			i = next
		}
		return item, i, nil
	}

	item := coerceScalar(rest)
	if i < len(lines) && lines[i].indent > itemIndent {
		nested, next, err := parseBlock(lines, i, lines[i].indent)
		if err != nil {
			return nil, 0, err
		}
		i = next
		if nested.Kind == KindMapping {
			wrapped := &Node{Kind: KindMapping}
			wrapped.set(item.text(), nested)
			item = wrapped
		} else {
			items := []*Node{item}
			if nested.Kind == KindList {
				items = append(items, nested.Items...)
			} else {
				items = append(items, nested)
			}
			item = &Node{Kind: KindList, Items: items}
		}
	}
	return item, i, nil
}
