package unparse

import (
	"testing"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

func capture(n string) *ast.MatchAs { return &ast.MatchAs{Name: n} }

func value(e ast.Expr) *ast.MatchValue { return &ast.MatchValue{Value: e} }

func TestPatterns(t *testing.T) {
	tests := []struct {
		name string
		pat  ast.Pattern
		want string
	}{
		{"wildcard", &ast.MatchAs{}, "_"},
		{"capture", capture("x"), "x"},
		{"value", value(num(1)), "1"},
		{"dotted value", value(&ast.Attribute{Value: name("Color"), Attr: "RED"}), "Color.RED"},
		{"negative value", value(unary(ast.USub, num(1))), "-1"},
		{"singleton none", &ast.MatchSingleton{Value: ast.None{}}, "None"},
		{"singleton true", &ast.MatchSingleton{Value: ast.Bool(true)}, "True"},
		{"empty sequence", &ast.MatchSequence{}, "[]"},
		{
			"sequence with star",
			&ast.MatchSequence{Patterns: []ast.Pattern{capture("first"), &ast.MatchStar{Name: "rest"}}},
			"[first, *rest]",
		},
		{"anonymous star", &ast.MatchSequence{Patterns: []ast.Pattern{&ast.MatchStar{}}}, "[*_]"},
		{
			"mapping",
			&ast.MatchMapping{
				Keys:     []ast.Expr{str("a"), num(1)},
				Patterns: []ast.Pattern{capture("x"), &ast.MatchAs{}},
				Rest:     "rest",
			},
			"{'a': x, 1: _, **rest}",
		},
		{"mapping rest only", &ast.MatchMapping{Rest: "kw"}, "{**kw}"},
		{"empty mapping", &ast.MatchMapping{}, "{}"},
		{
			"class",
			&ast.MatchClass{
				Cls:         name("Point"),
				Patterns:    []ast.Pattern{value(num(0))},
				KwdAttrs:    []string{"y"},
				KwdPatterns: []ast.Pattern{capture("y")},
			},
			"Point(0, y=y)",
		},
		{
			"class keywords only",
			&ast.MatchClass{Cls: &ast.Attribute{Value: name("m"), Attr: "C"}, KwdAttrs: []string{"a"}, KwdPatterns: []ast.Pattern{capture("b")}},
			"m.C(a=b)",
		},
		{"class empty", &ast.MatchClass{Cls: name("C")}, "C()"},
		{
			"or",
			&ast.MatchOr{Patterns: []ast.Pattern{value(num(1)), value(num(2)), value(num(3))}},
			"1 | 2 | 3",
		},
		{
			"as",
			&ast.MatchAs{Pattern: &ast.MatchSequence{Patterns: []ast.Pattern{capture("a")}}, Name: "whole"},
			"[a] as whole",
		},
		{
			"or under as",
			&ast.MatchAs{Pattern: &ast.MatchOr{Patterns: []ast.Pattern{value(num(1)), value(num(2))}}, Name: "x"},
			"1 | 2 as x",
		},
		{
			"as inside or",
			&ast.MatchOr{Patterns: []ast.Pattern{&ast.MatchAs{Pattern: value(num(1)), Name: "x"}, value(num(2))}},
			"(1 as x) | 2",
		},
		{
			"or inside or",
			&ast.MatchOr{Patterns: []ast.Pattern{
				&ast.MatchOr{Patterns: []ast.Pattern{value(num(1)), value(num(2))}},
				value(num(3)),
			}},
			"(1 | 2) | 3",
		},
		{
			"as inside sequence",
			&ast.MatchSequence{Patterns: []ast.Pattern{&ast.MatchAs{Pattern: value(num(1)), Name: "x"}}},
			"[1 as x]",
		},
		{
			"or inside class",
			&ast.MatchClass{Cls: name("C"), Patterns: []ast.Pattern{
				&ast.MatchOr{Patterns: []ast.Pattern{value(str("a")), value(str("b"))}},
			}},
			"C('a' | 'b')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(tt.pat)
			if err != nil {
				t.Fatalf("Unparse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unparse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchStatement(t *testing.T) {
	tree := &ast.Match{
		Subject: tuple(name("a"), name("b")),
		Cases: []*ast.MatchCase{
			{
				Pattern: &ast.MatchSequence{Patterns: []ast.Pattern{value(num(0)), capture("y")}},
				Body:    body(ret(name("y"))),
			},
			{
				Pattern: capture("p"),
				Guard:   compare(name("p"), ast.Gt, num(1)),
				Body:    body(pass()),
			},
			{
				Pattern: &ast.MatchAs{},
				Body:    body(&ast.Raise{Exc: name("E")}),
			},
		},
	}
	want := lines(
		"match (a, b):",
		"    case [0, y]:",
		"        return y",
		"    case p if p > 1:",
		"        pass",
		"    case _:",
		"        raise E",
	)

	got, err := Unparse(tree)
	if err != nil {
		t.Fatalf("Unparse() error = %v", err)
	}
	if got != want {
		t.Errorf("Unparse() =\n%s\nwant\n%s", got, want)
	}
}

func TestPatternErrors(t *testing.T) {
	tests := []struct {
		name string
		tree ast.Node
	}{
		{"mapping length mismatch", &ast.MatchMapping{Keys: []ast.Expr{str("a")}}},
		{"class keyword mismatch", &ast.MatchClass{Cls: name("C"), KwdAttrs: []string{"a"}}},
		{"missing alternative", &ast.MatchOr{Patterns: []ast.Pattern{nil}}},
		{"case without body", &ast.Match{Subject: name("x"), Cases: []*ast.MatchCase{{Pattern: &ast.MatchAs{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unparse(tt.tree)
			if !errors.Is(err, errors.ErrCodeInvalidNode) {
				t.Errorf("Unparse() error = %v, want %s", err, errors.ErrCodeInvalidNode)
			}
		})
	}
}
