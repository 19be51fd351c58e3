package treeviz

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/pyunparse/pkg/ast"
)

// Options configures diagram construction.
type Options struct {
	// MaxDepth limits how many levels below the root are drawn. Deeper
	// subtrees are replaced by a single elided node. Zero draws everything.
	MaxDepth int

	// Detailed adds every scalar field to the labels instead of only the
	// identifying ones.
	Detailed bool
}

// Node is one box of the diagram.
type Node struct {
	ID     string
	Label  string
	Elided bool
}

// Edge connects a parent to the child stored in Field.
type Edge struct {
	From, To string
	Field    string
}

// Graph is the diagram of one tree. Nodes appear in depth-first order.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// NodeCount returns the number of boxes in the diagram.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// identifying fields shown even when Options.Detailed is off.
var keyFields = map[string]bool{
	"id":     true,
	"name":   true,
	"attr":   true,
	"arg":    true,
	"module": true,
	"asname": true,
	"level":  true,
	"rest":   true,
}

// Build walks tree and returns its diagram.
func Build(tree ast.Node, opts Options) *Graph {
	b := &builder{opts: opts, g: &Graph{}}
	if v, ok := ast.EncodeValue(tree).(map[string]any); ok {
		b.object(v, 0)
	}
	return b.g
}

type builder struct {
	opts Options
	g    *Graph
	next int
}

func (b *builder) add(label string, elided bool) string {
	id := fmt.Sprintf("n%d", b.next)
	b.next++
	b.g.Nodes = append(b.g.Nodes, Node{ID: id, Label: label, Elided: elided})
	return id
}

func (b *builder) object(o map[string]any, depth int) string {
	kind, _ := o["_type"].(string)
	lines := []string{kind}
	type child struct {
		field string
		obj   map[string]any
	}
	var children []child

	for _, key := range slices.Sorted(maps.Keys(o)) {
		if key == "_type" {
			continue
		}
		switch v := o[key].(type) {
		case nil:
			if isLiteral(kind, key) {
				lines = append(lines, key+": None")
			}
		case []any:
			for i, it := range v {
				field := fmt.Sprintf("%s[%d]", key, i)
				if obj, ok := it.(map[string]any); ok && !isOperator(obj) {
					children = append(children, child{field, obj})
				} else if it != nil {
					lines = append(lines, fmt.Sprintf("%s: %s", field, scalar(it)))
				}
			}
		case map[string]any:
			if isOperator(v) || isLiteral(kind, key) {
				lines = append(lines, fmt.Sprintf("%s: %s", key, scalar(v)))
				continue
			}
			children = append(children, child{key, v})
		default:
			if b.opts.Detailed || keyFields[key] || isLiteral(kind, key) {
				lines = append(lines, fmt.Sprintf("%s: %s", key, scalar(v)))
			}
		}
	}

	id := b.add(strings.Join(lines, "\n"), false)
	if len(children) == 0 {
		return id
	}
	if b.opts.MaxDepth > 0 && depth >= b.opts.MaxDepth {
		elided := b.add(fmt.Sprintf("%d more", len(children)), true)
		b.g.Edges = append(b.g.Edges, Edge{From: id, To: elided})
		return id
	}
	for _, c := range children {
		to := b.object(c.obj, depth+1)
		b.g.Edges = append(b.g.Edges, Edge{From: id, To: to, Field: c.field})
	}
	return id
}

// isOperator reports whether o is a bare operator tag such as {"_type": "Add"}.
func isOperator(o map[string]any) bool {
	if len(o) != 1 {
		return false
	}
	name, _ := o["_type"].(string)
	if _, ok := ast.ParseOperator(name); ok {
		return true
	}
	if _, ok := ast.ParseBoolOperator(name); ok {
		return true
	}
	if _, ok := ast.ParseUnaryOperator(name); ok {
		return true
	}
	_, ok := ast.ParseCmpOperator(name)
	return ok
}

// isLiteral reports whether field of a kind node holds a constant value.
func isLiteral(kind, field string) bool {
	return field == "value" && (kind == "Constant" || kind == "MatchSingleton")
}

// scalar formats a leaf value for a label.
func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case json.Number:
		return v.String()
	case map[string]any:
		kind, _ := v["_type"].(string)
		switch kind {
		case "tuple":
			elts, _ := v["elts"].([]any)
			parts := make([]string, len(elts))
			for i, e := range elts {
				parts[i] = scalar(e)
			}
			return "(" + strings.Join(parts, ", ") + ")"
		case "complex":
			return fmt.Sprintf("complex(%s, %s)", scalar(v["real"]), scalar(v["imag"]))
		case "Ellipsis":
			return "..."
		case "bytes", "str", "int", "float":
			return fmt.Sprintf("%s %s", kind, scalar(firstOf(v, "value", "bytes")))
		}
		return kind
	case nil:
		return "None"
	}
	return fmt.Sprint(v)
}

func firstOf(o map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := o[k]; ok {
			return v
		}
	}
	return nil
}
