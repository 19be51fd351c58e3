package unparse

import (
	"testing"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

func TestExprPrecedence(t *testing.T) {
	a, b, c := name("a"), name("b"), name("c")

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"sum times", bin(bin(a, ast.Add, b), ast.Mult, c), "(a + b) * c"},
		{"sum of product", bin(a, ast.Add, bin(b, ast.Mult, c)), "a + b * c"},
		{"left assoc chain", bin(bin(a, ast.Sub, b), ast.Sub, c), "a - b - c"},
		{"right grouped sub", bin(a, ast.Sub, bin(b, ast.Sub, c)), "a - (b - c)"},
		{"power right", bin(a, ast.Pow, bin(b, ast.Pow, c)), "a ** b ** c"},
		{"power left", bin(bin(a, ast.Pow, b), ast.Pow, c), "(a ** b) ** c"},
		{"neg of power", unary(ast.USub, bin(a, ast.Pow, num(2))), "-a ** 2"},
		{"power of neg", bin(unary(ast.USub, a), ast.Pow, num(2)), "(-a) ** 2"},
		{"power of neg constant", bin(num(-1), ast.Pow, num(2)), "(-1) ** 2"},
		{"shift of or", bin(bin(a, ast.BitOr, b), ast.LShift, c), "(a | b) << c"},
		{"or of and", bin(a, ast.BitOr, bin(b, ast.BitAnd, c)), "a | b & c"},
		{"matmul floordiv", bin(bin(a, ast.MatMult, b), ast.FloorDiv, c), "a @ b // c"},
		{"not compare", unary(ast.Not, compare(a, ast.Eq, b)), "not a == b"},
		{"compare of not", compare(unary(ast.Not, a), ast.Eq, b), "(not a) == b"},
		{"invert", unary(ast.Invert, a), "~a"},
		{"plus", unary(ast.UAdd, a), "+a"},
		{"double neg", unary(ast.USub, unary(ast.USub, a)), "--a"},
		{
			"compare chain",
			&ast.Compare{Left: a, Ops: []ast.CmpOperator{ast.Lt, ast.LtE}, Comparators: []ast.Expr{b, c}},
			"a < b <= c",
		},
		{"nested compare", compare(compare(a, ast.Lt, b), ast.Lt, c), "(a < b) < c"},
		{"is not", compare(a, ast.IsNot, b), "a is not b"},
		{"not in", compare(a, ast.NotIn, b), "a not in b"},
		{"and within or", boolop(ast.Or, boolop(ast.And, a, b), c), "a and b or c"},
		{"or within and", boolop(ast.And, a, boolop(ast.Or, b, c)), "a and (b or c)"},
		{"and of and", boolop(ast.And, boolop(ast.And, a, b), c), "(a and b) and c"},
		{"and of three", boolop(ast.And, a, b, c), "a and b and c"},
		{"not within and", boolop(ast.And, unary(ast.Not, a), b), "not a and b"},
		{"ifexp", &ast.IfExp{Test: c, Body: a, OrElse: b}, "a if c else b"},
		{
			"ifexp in body",
			&ast.IfExp{Test: name("d"), Body: &ast.IfExp{Test: c, Body: a, OrElse: b}, OrElse: name("e")},
			"(a if c else b) if d else e",
		},
		{
			"ifexp in orelse",
			&ast.IfExp{Test: name("d"), Body: name("e"), OrElse: &ast.IfExp{Test: c, Body: a, OrElse: b}},
			"e if d else a if c else b",
		},
		{"ifexp operand", bin(&ast.IfExp{Test: c, Body: a, OrElse: b}, ast.Add, num(1)), "(a if c else b) + 1"},
		{"lambda operand", bin(&ast.Lambda{Body: a}, ast.Add, num(1)), "(lambda: a) + 1"},
		{"await", &ast.Await{Value: call(name("f"))}, "await f()"},
		{"await power", bin(&ast.Await{Value: a}, ast.Pow, b), "await a ** b"},
		{"await of binop", &ast.Await{Value: bin(a, ast.Add, b)}, "await (a + b)"},
		{"walrus operand", bin(&ast.NamedExpr{Target: a, Value: num(1)}, ast.Add, b), "(a := 1) + b"},
		{"call of attribute of binop", call(&ast.Attribute{Value: bin(a, ast.Add, b), Attr: "c"}), "(a + b).c()"},
		{"subscript of call", &ast.Subscript{Value: call(a), Slice: num(0)}, "a()[0]"},
		{"starred binop", call(name("f"), &ast.Starred{Value: bin(a, ast.Add, b)}), "f(*a + b)"},
		{"starred compare", call(name("f"), &ast.Starred{Value: compare(a, ast.Eq, b)}), "f(*(a == b))"},
		{"starred or", call(name("f"), &ast.Starred{Value: bin(a, ast.BitOr, b)}), "f(*a | b)"},
		{"yield operand", bin(&ast.Yield{Value: a}, ast.Add, b), "(yield a) + b"},
		{"tuple in call", call(name("f"), tuple(a, b)), "f((a, b))"},
		{"tuple in comparison", compare(tuple(a), ast.Eq, b), "(a,) == b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(tt.expr)
			if err != nil {
				t.Fatalf("Unparse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unparse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprForms(t *testing.T) {
	a, b, x, y := name("a"), name("b"), name("x"), name("y")
	gen := func(target, iter ast.Expr, ifs ...ast.Expr) []*ast.Comprehension {
		return []*ast.Comprehension{{Target: target, Iter: iter, Ifs: ifs}}
	}

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"empty set", &ast.Set{}, "{*()}"},
		{"set", &ast.Set{Elts: []ast.Expr{a, b}}, "{a, b}"},
		{"empty tuple", tuple(), "()"},
		{"single tuple", tuple(a), "(a,)"},
		{"pair", tuple(a, b), "(a, b)"},
		{"empty list", &ast.List{}, "[]"},
		{"list", &ast.List{Elts: []ast.Expr{a, tuple(b)}}, "[a, (b,)]"},
		{"empty dict", &ast.Dict{}, "{}"},
		{
			"dict with unpack",
			&ast.Dict{Keys: []ast.Expr{str("k"), nil}, Values: []ast.Expr{num(1), name("rest")}},
			"{'k': 1, **rest}",
		},
		{
			"dict unpack of or",
			&ast.Dict{Keys: []ast.Expr{nil}, Values: []ast.Expr{bin(a, ast.BitOr, b)}},
			"{**a | b}",
		},
		{
			"dict unpack of compare",
			&ast.Dict{Keys: []ast.Expr{nil}, Values: []ast.Expr{compare(a, ast.Eq, b)}},
			"{**(a == b)}",
		},
		{"list comp", &ast.ListComp{Elt: x, Generators: gen(x, y, x)}, "[x for x in y if x]"},
		{"set comp", &ast.SetComp{Elt: x, Generators: gen(x, y)}, "{x for x in y}"},
		{
			"dict comp",
			&ast.DictComp{Key: x, Value: y, Generators: gen(tuple(x, y), call(name("items")))},
			"{x: y for x, y in items()}",
		},
		{"generator", &ast.GeneratorExp{Elt: x, Generators: gen(x, y)}, "(x for x in y)"},
		{"generator arg", call(name("f"), &ast.GeneratorExp{Elt: x, Generators: gen(x, y)}), "f((x for x in y))"},
		{
			"async comp",
			&ast.ListComp{Elt: x, Generators: []*ast.Comprehension{{Target: x, Iter: y, IsAsync: true}}},
			"[x async for x in y]",
		},
		{
			"comp iter ifexp",
			&ast.ListComp{Elt: x, Generators: gen(x, &ast.IfExp{Test: a, Body: y, OrElse: b})},
			"[x for x in (y if a else b)]",
		},
		{
			"nested comps",
			&ast.ListComp{Elt: x, Generators: []*ast.Comprehension{
				{Target: y, Iter: a},
				{Target: x, Iter: y, Ifs: []ast.Expr{x, y}},
			}},
			"[x for y in a for x in y if x if y]",
		},
		{
			"call",
			&ast.Call{
				Func:     name("f"),
				Args:     []ast.Expr{a, &ast.Starred{Value: b}},
				Keywords: []*ast.Keyword{{Arg: "k", Value: num(1)}, {Value: name("kw")}},
			},
			"f(a, *b, k=1, **kw)",
		},
		{"call no args", call(name("f")), "f()"},
		{"keywords only", &ast.Call{Func: name("f"), Keywords: []*ast.Keyword{{Arg: "k", Value: tuple(a, b)}}}, "f(k=(a, b))"},
		{"attribute", &ast.Attribute{Value: &ast.Attribute{Value: a, Attr: "b"}, Attr: "c"}, "a.b.c"},
		{"attribute of int", &ast.Attribute{Value: num(1), Attr: "real"}, "1 .real"},
		{"attribute of float", &ast.Attribute{Value: flt(1.5), Attr: "real"}, "1.5.real"},
		{"attribute of negative", &ast.Attribute{Value: num(-1), Attr: "real"}, "(-1).real"},
		{"subscript", &ast.Subscript{Value: a, Slice: b}, "a[b]"},
		{
			"subscript slices",
			&ast.Subscript{Value: a, Slice: tuple(&ast.Slice{Lower: num(1), Upper: num(2)}, &ast.Slice{Step: num(3)})},
			"a[1:2, ::3]",
		},
		{"subscript single tuple", &ast.Subscript{Value: a, Slice: tuple(b)}, "a[b,]"},
		{"subscript empty tuple", &ast.Subscript{Value: a, Slice: tuple()}, "a[()]"},
		{"full slice", &ast.Subscript{Value: a, Slice: &ast.Slice{}}, "a[:]"},
		{"slice upper", &ast.Subscript{Value: a, Slice: &ast.Slice{Upper: num(-1)}}, "a[:-1]"},
		{"slice all", &ast.Subscript{Value: a, Slice: &ast.Slice{Lower: x, Upper: y, Step: num(2)}}, "a[x:y:2]"},
		{"starred in subscript", &ast.Subscript{Value: a, Slice: tuple(&ast.Starred{Value: b})}, "a[*b,]"},
		{"lambda", &ast.Lambda{Body: x}, "lambda: x"},
		{
			"lambda params",
			&ast.Lambda{
				Args: &ast.Arguments{Args: []*ast.Parameter{param("x"), paramDefault("y", num(1))}},
				Body: bin(x, ast.Add, y),
			},
			"lambda x, y=1: x + y",
		},
		{
			"lambda drops annotations",
			&ast.Lambda{
				Args: &ast.Arguments{Args: []*ast.Parameter{{Arg: &ast.Arg{Name: "x", Annotation: name("int")}}}},
				Body: x,
			},
			"lambda x: x",
		},
		{
			"lambda star",
			&ast.Lambda{Args: &ast.Arguments{VarArg: &ast.Arg{Name: "a"}, KwArg: &ast.Arg{Name: "k"}}, Body: a},
			"lambda *a, **k: a",
		},
		{"lambda body tuple", &ast.Lambda{Body: tuple(x, y)}, "lambda: (x, y)"},
		{"yield", &ast.Yield{}, "(yield)"},
		{"yield from", &ast.YieldFrom{Value: call(name("g"))}, "(yield from g())"},
		{"walrus", &ast.NamedExpr{Target: x, Value: num(1)}, "(x := 1)"},
		{"walrus binop", &ast.NamedExpr{Target: x, Value: bin(a, ast.Add, b)}, "(x := (a + b))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(tt.expr)
			if err != nil {
				t.Fatalf("Unparse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unparse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprErrors(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		code errors.Code
	}{
		{"joined string", &ast.JoinedStr{Values: []ast.Expr{str("a")}}, errors.ErrCodeUnsupported},
		{"formatted value", &ast.FormattedValue{Value: name("x"), Conversion: -1}, errors.ErrCodeUnsupported},
		{"nested joined string", bin(name("a"), ast.Add, &ast.JoinedStr{}), errors.ErrCodeUnsupported},
		{"invalid utf8 name", name("a\xffb"), errors.ErrCodeEncoding},
		{"invalid utf8 string", str("a\xffb"), errors.ErrCodeEncoding},
		{"invalid utf8 attribute", &ast.Attribute{Value: name("a"), Attr: "\xc3"}, errors.ErrCodeEncoding},
		{"missing operand", bin(name("a"), ast.Add, nil), errors.ErrCodeInvalidNode},
		{"empty name", name(""), errors.ErrCodeInvalidNode},
		{
			"dict shape",
			&ast.Dict{Keys: []ast.Expr{name("a")}, Values: []ast.Expr{}},
			errors.ErrCodeInvalidNode,
		},
		{
			"compare shape",
			&ast.Compare{Left: name("a"), Ops: []ast.CmpOperator{ast.Lt}},
			errors.ErrCodeInvalidNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(tt.expr)
			if err == nil {
				t.Fatalf("Unparse() = %q, want error", got)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Unparse() error = %v, want code %s", err, tt.code)
			}
			if got != "" {
				t.Errorf("Unparse() text = %q, want empty on error", got)
			}
		})
	}
}
