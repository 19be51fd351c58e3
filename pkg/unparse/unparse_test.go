package unparse

import (
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

type failingWriter struct {
	after int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, stderrors.New("disk full")
	}
	w.n++
	return len(p), nil
}

func TestUnparseToSinkError(t *testing.T) {
	tree := module(pass(), pass(), pass())

	err := New().UnparseTo(&failingWriter{after: 2}, tree)
	if !errors.Is(err, errors.ErrCodeSink) {
		t.Fatalf("UnparseTo() error = %v, want %s", err, errors.ErrCodeSink)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("UnparseTo() error = %v, want underlying cause", err)
	}
}

func TestUnparseAcceptedNodes(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{"module", module(pass()), "pass"},
		{"statement list", []ast.Stmt{pass(), &ast.Break{}}, "pass\nbreak"},
		{"statement", ret(nil), "return"},
		{"expression", tuple(name("a"), name("b")), "(a, b)"},
		{"pattern", &ast.MatchAs{}, "_"},
		{"type parameter", &ast.ParamSpec{Name: "P"}, "**P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(tt.node)
			if err != nil {
				t.Fatalf("Unparse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unparse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnparseRejectsForeignValues(t *testing.T) {
	for _, node := range []any{nil, "pass", 42, (*ast.Module)(nil)} {
		if _, err := Unparse(node); !errors.Is(err, errors.ErrCodeInvalidNode) {
			t.Errorf("Unparse(%#v) error = %v, want %s", node, err, errors.ErrCodeInvalidNode)
		}
	}
}

func TestOptions(t *testing.T) {
	u := New()
	if u.Indent() != DefaultIndent || !u.RawStrings() {
		t.Errorf("New() = indent %q raw %v, want defaults", u.Indent(), u.RawStrings())
	}

	u = New(WithIndent(""))
	if u.Indent() != DefaultIndent {
		t.Errorf("WithIndent(\"\") changed indent to %q", u.Indent())
	}

	tree := &ast.While{Test: name("a"), Body: body(
		&ast.If{Test: name("b"), Body: body(exprStmt(str(`\d`)))},
	)}
	got, err := New(WithIndent("\t"), WithRawStrings(false)).Unparse(tree)
	if err != nil {
		t.Fatalf("Unparse() error = %v", err)
	}
	want := "while a:\n\tif b:\n\t\t'\\\\d'"
	if got != want {
		t.Errorf("Unparse() = %q, want %q", got, want)
	}
}

func TestConcurrentUse(t *testing.T) {
	u := New(WithIndent("  "))
	tree := &ast.FunctionDef{Name: "f", Args: &ast.Arguments{Args: []*ast.Parameter{param("x")}}, Body: body(
		ret(bin(name("x"), ast.Mult, num(2))),
	)}
	want := "def f(x):\n  return x * 2"

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := u.Unparse(tree)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Unparse() = %q, want %q", got, want)
	}
}

func TestNilChildNodes(t *testing.T) {
	tests := []struct {
		name string
		tree ast.Node
	}{
		{"keyword", &ast.Call{Func: name("f"), Keywords: []*ast.Keyword{nil}}},
		{"parameter", &ast.FunctionDef{Name: "f", Args: &ast.Arguments{Args: []*ast.Parameter{nil}}, Body: body(pass())}},
		{"keyword-only parameter", &ast.Lambda{Args: &ast.Arguments{KwOnly: []*ast.Parameter{nil}}, Body: name("x")}},
		{"comprehension", &ast.ListComp{Elt: name("x"), Generators: []*ast.Comprehension{nil}}},
		{"handler", &ast.Try{Body: body(pass()), Handlers: []*ast.ExceptHandler{nil}}},
		{"alias", &ast.Import{Names: []*ast.Alias{nil}}},
		{"with item", &ast.With{Items: []*ast.WithItem{nil}, Body: body(pass())}},
		{"match case", &ast.Match{Subject: name("x"), Cases: []*ast.MatchCase{nil}}},
		{"type parameter", &ast.ClassDef{Name: "C", TypeParams: []ast.TypeParam{(*ast.TypeVar)(nil)}, Body: body(pass())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(tt.tree)
			if !errors.Is(err, errors.ErrCodeInvalidNode) {
				t.Errorf("Unparse() error = %v, want %s", err, errors.ErrCodeInvalidNode)
			}
			if got != "" {
				t.Errorf("Unparse() = %q, want empty", got)
			}
		})
	}
}
