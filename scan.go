package cosmic

import (
	"fmt"
	"strconv"
	"strings"
)

// line is one non-blank, non-comment input line with its indentation
// stripped off.
type line struct {
	indent int
	text   string
}

// scanLines drops blank lines and full-line # comments and records the
// indentation depth of everything else. Tabs are not a supported
// indentation unit and are rejected outright.
func scanLines(raw string) ([]line, error) {
	var lines []line
	for no, l := range strings.Split(raw, "\n") {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(l, " \t"), "#") {
			continue
		}
		indent := 0
		for indent < len(l) && l[indent] == ' ' {
			indent++
		}
		if indent < len(l) && l[indent] == '\t' {
			return nil, fmt.Errorf("tab character in indentation on line %d", no+1)
		}
		lines = append(lines, line{indent: indent, text: l[indent:]})
	}
	return lines, nil
}

// coerceScalar converts a raw token into a typed scalar node. Unparsable
// tokens degrade to strings; coercion never fails.
func coerceScalar(tok string) *Node {
	if len(tok) >= 2 && tok[0] == tok[len(tok)-1] && (tok[0] == '\'' || tok[0] == '"') {
		return &Node{Kind: KindString, Str: tok[1 : len(tok)-1]}
	}
	switch strings.ToLower(tok) {
	case "true":
		return &Node{Kind: KindBool, Bool: true}
	case "false":
		return &Node{Kind: KindBool}
	case "null":
		return &Node{Kind: KindNull}
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return &Node{Kind: KindInt, Int: i}
	}
	if strings.Contains(tok, ".") {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return &Node{Kind: KindFloat, Float: f}
		}
	}
	return &Node{Kind: KindString, Str: tok}
}
