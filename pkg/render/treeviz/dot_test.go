package treeviz

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/pyunparse/pkg/ast"
)

// x = a + 1
func sampleTree() *ast.Module {
	return &ast.Module{Body: []ast.Stmt{
		&ast.Assign{
			Targets: []ast.Expr{&ast.Name{ID: "x"}},
			Value: &ast.BinOp{
				Left:  &ast.Name{ID: "a"},
				Op:    ast.Add,
				Right: &ast.Constant{Value: ast.NewInt(1)},
			},
		},
	}}
}

func TestBuild(t *testing.T) {
	g := Build(sampleTree(), Options{})

	wantLabels := []string{
		"Module",
		"Assign",
		"Name\nid: \"x\"",
		"BinOp\nop: Add",
		"Name\nid: \"a\"",
		"Constant\nvalue: 1",
	}
	var labels []string
	for _, n := range g.Nodes {
		labels = append(labels, n.Label)
	}
	for _, want := range wantLabels {
		found := false
		for _, l := range labels {
			if l == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing node %q in %q", want, labels)
		}
	}
	if g.NodeCount() != len(wantLabels) {
		t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), len(wantLabels))
	}
	if len(g.Edges) != len(wantLabels)-1 {
		t.Errorf("got %d edges, want %d", len(g.Edges), len(wantLabels)-1)
	}

	fields := map[string]bool{}
	for _, e := range g.Edges {
		fields[e.Field] = true
	}
	for _, f := range []string{"body[0]", "targets[0]", "value", "left", "right"} {
		if !fields[f] {
			t.Errorf("missing edge field %q", f)
		}
	}
}

func TestBuildMaxDepth(t *testing.T) {
	g := Build(sampleTree(), Options{MaxDepth: 1})

	// Module, Assign and one elided node standing in for Assign's children.
	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", g.NodeCount())
	}
	last := g.Nodes[len(g.Nodes)-1]
	if !last.Elided || last.Label != "2 more" {
		t.Errorf("last node = %+v, want elided \"2 more\"", last)
	}
}

func TestBuildDetailed(t *testing.T) {
	tree := &ast.Constant{Value: ast.Str("s"), Kind: "u"}

	plain := Build(tree, Options{})
	if got := plain.Nodes[0].Label; got != "Constant\nvalue: \"s\"" {
		t.Errorf("label = %q", got)
	}

	detailed := Build(tree, Options{Detailed: true})
	if got := detailed.Nodes[0].Label; !strings.Contains(got, "kind: \"u\"") {
		t.Errorf("detailed label = %q, want kind field", got)
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name  string
		value ast.Value
		want  string
	}{
		{"none", ast.None{}, "None"},
		{"bool", ast.Bool(true), "true"},
		{"ellipsis", ast.Ellipsis{}, "..."},
		{"float", ast.Float(2), "2.0"},
		{"complex", ast.Complex{Real: 1, Imag: 2}, "complex(1.0, 2.0)"},
		{"tuple", ast.ConstTuple{ast.NewInt(1), ast.Str("a")}, "(1, \"a\")"},
		{"bytes", ast.Bytes("hi"), "bytes \"aGk=\""},
		{"int", ast.NewInt(42), "42"},
		{"string", ast.Str("s"), "\"s\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(&ast.Constant{Value: tt.value}, Options{})
			want := "Constant\nvalue: " + tt.want
			if got := g.Nodes[0].Label; got != want {
				t.Errorf("label = %q, want %q", got, want)
			}
		})
	}
}

func TestBuildSingletonPattern(t *testing.T) {
	g := Build(&ast.MatchSingleton{Value: ast.Bool(false)}, Options{})
	if got := g.Nodes[0].Label; got != "MatchSingleton\nvalue: false" {
		t.Errorf("label = %q", got)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(Build(sampleTree(), Options{MaxDepth: 1}))

	for _, want := range []string{
		"digraph AST {",
		`n0 [label="Module"];`,
		`n0 -> n1 [label="body[0]"];`,
		"dashed",
		"n1 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	_, err := Render(context.Background(), sampleTree(), "gif", Options{})
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Render() error = %v, want invalid format", err)
	}
}

func TestRenderDOT(t *testing.T) {
	out, err := Render(context.Background(), sampleTree(), FormatDOT, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "digraph AST {") {
		t.Errorf("Render() = %q", out)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(Build(sampleTree(), Options{})))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), `viewBox="0 0 `) {
		t.Errorf("SVG root not normalized: %.200s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed input without viewBox: %s", got)
	}
}
