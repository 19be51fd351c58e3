package unparse

import (
	"unicode/utf8"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

// expr renders e in a context that requires at least level. Children receive
// their own level as an argument, so siblings never observe each other's
// context.
func (p *printer) expr(e ast.Expr, level Precedence) {
	if p.err != nil {
		return
	}
	switch e := e.(type) {
	case nil:
		p.fail(errors.New(errors.ErrCodeInvalidNode, "missing expression"))

	case *ast.BoolOp:
		prec := boolOpPrecedence(e.Op)
		p.requireParens(prec, level, func() {
			sep := " " + boolOpSymbol(e.Op) + " "
			for i, v := range e.Values {
				if i > 0 {
					p.write(sep)
				}
				p.expr(v, prec.Next())
			}
		})

	case *ast.NamedExpr:
		p.requireParens(PrecNamedExpr, level, func() {
			p.expr(e.Target, PrecAtom)
			p.write(" := ")
			p.expr(e.Value, PrecAtom)
		})

	case *ast.BinOp:
		prec := binOpPrecedence[e.Op]
		left, right := prec, prec.Next()
		if e.Op == ast.Pow {
			left, right = prec.Next(), prec
		}
		p.requireParens(prec, level, func() {
			p.expr(e.Left, left)
			p.write(" ", binOpSymbols[e.Op], " ")
			p.expr(e.Right, right)
		})

	case *ast.UnaryOp:
		prec := unaryOpPrecedence[e.Op]
		p.requireParens(prec, level, func() {
			p.write(unaryOpSymbols[e.Op])
			if prec != PrecFactor {
				p.write(" ")
			}
			p.expr(e.Operand, prec)
		})

	case *ast.Lambda:
		p.requireParens(PrecTest, level, func() {
			p.write("lambda")
			if !e.Args.Empty() {
				p.write(" ")
				p.arguments(e.Args, false)
			}
			p.write(": ")
			p.expr(e.Body, PrecTest)
		})

	case *ast.IfExp:
		p.requireParens(PrecTest, level, func() {
			p.expr(e.Body, PrecTest.Next())
			p.write(" if ")
			p.expr(e.Test, PrecTest.Next())
			p.write(" else ")
			p.expr(e.OrElse, PrecTest)
		})

	case *ast.Dict:
		p.dict(e)

	case *ast.Set:
		if len(e.Elts) == 0 {
			// {} is an empty dict.
			p.write("{*()}")
			return
		}
		p.write("{")
		p.exprList(e.Elts, PrecTest)
		p.write("}")

	case *ast.ListComp:
		p.write("[")
		p.expr(e.Elt, PrecTest)
		p.comprehensions(e.Generators)
		p.write("]")

	case *ast.SetComp:
		p.write("{")
		p.expr(e.Elt, PrecTest)
		p.comprehensions(e.Generators)
		p.write("}")

	case *ast.DictComp:
		p.write("{")
		p.expr(e.Key, PrecTest)
		p.write(": ")
		p.expr(e.Value, PrecTest)
		p.comprehensions(e.Generators)
		p.write("}")

	case *ast.GeneratorExp:
		p.write("(")
		p.expr(e.Elt, PrecTest)
		p.comprehensions(e.Generators)
		p.write(")")

	case *ast.Await:
		p.requireParens(PrecAwait, level, func() {
			p.write("await")
			if e.Value != nil {
				p.write(" ")
				p.expr(e.Value, PrecAtom)
			}
		})

	case *ast.Yield:
		p.requireParens(PrecYield, level, func() {
			p.write("yield")
			if e.Value != nil {
				p.write(" ")
				p.expr(e.Value, PrecAtom)
			}
		})

	case *ast.YieldFrom:
		p.requireParens(PrecYield, level, func() {
			p.write("yield from ")
			p.expr(e.Value, PrecAtom)
		})

	case *ast.Compare:
		p.compare(e, level)

	case *ast.Call:
		p.expr(e.Func, PrecAtom)
		p.write("(")
		p.callArgs(e.Args, e.Keywords)
		p.write(")")

	case *ast.FormattedValue:
		p.unsupported("FormattedValue")

	case *ast.JoinedStr:
		p.unsupported("JoinedStr")

	case *ast.Constant:
		p.requireParens(PrecedenceOf(e), level, func() {
			if _, ok := e.Value.(ast.Str); ok && e.Kind == "u" {
				p.write("u")
			}
			p.constant(e.Value, e.Kind == "u")
		})

	case *ast.Attribute:
		p.expr(e.Value, PrecAtom)
		// "1.real" would lex as a float.
		if c, ok := e.Value.(*ast.Constant); ok && isIntLike(c.Value) && !isNegative(c.Value) {
			p.write(" ")
		}
		p.write(".")
		p.ident(e.Attr)

	case *ast.Subscript:
		p.expr(e.Value, PrecAtom)
		p.write("[")
		if t, ok := e.Slice.(*ast.Tuple); ok && len(t.Elts) > 0 {
			p.items(t.Elts)
		} else {
			p.expr(e.Slice, PrecTest)
		}
		p.write("]")

	case *ast.Starred:
		p.write("*")
		p.expr(e.Value, PrecExpr)

	case *ast.Name:
		p.ident(e.ID)

	case *ast.List:
		p.write("[")
		p.exprList(e.Elts, PrecTest)
		p.write("]")

	case *ast.Tuple:
		p.parens(len(e.Elts) == 0 || level > PrecTuple, func() {
			p.items(e.Elts)
		})

	case *ast.Slice:
		if e.Lower != nil {
			p.expr(e.Lower, PrecTest)
		}
		p.write(":")
		if e.Upper != nil {
			p.expr(e.Upper, PrecTest)
		}
		if e.Step != nil {
			p.write(":")
			p.expr(e.Step, PrecTest)
		}

	default:
		p.fail(errors.New(errors.ErrCodeInvalidNode, "unknown expression %T", e))
	}
}

func (p *printer) dict(d *ast.Dict) {
	if len(d.Keys) != len(d.Values) {
		p.fail(errors.New(errors.ErrCodeInvalidNode, "dict has %d keys and %d values", len(d.Keys), len(d.Values)))
		return
	}
	p.write("{")
	for i, v := range d.Values {
		if i > 0 {
			p.write(", ")
		}
		if d.Keys[i] == nil {
			p.write("**")
			p.expr(v, PrecExpr)
			continue
		}
		p.expr(d.Keys[i], PrecTest)
		p.write(": ")
		p.expr(v, PrecTest)
	}
	p.write("}")
}

func (p *printer) compare(c *ast.Compare, level Precedence) {
	if len(c.Ops) != len(c.Comparators) {
		p.fail(errors.New(errors.ErrCodeInvalidNode, "compare has %d operators and %d operands", len(c.Ops), len(c.Comparators)))
		return
	}
	p.requireParens(PrecCmp, level, func() {
		p.expr(c.Left, PrecCmp.Next())
		for i, op := range c.Ops {
			p.write(" ", cmpOpSymbols[op], " ")
			p.expr(c.Comparators[i], PrecCmp.Next())
		}
	})
}

// callArgs writes positional arguments before keywords, comma separated.
func (p *printer) callArgs(args []ast.Expr, keywords []*ast.Keyword) {
	first := true
	comma := func() {
		if !first {
			p.write(", ")
		}
		first = false
	}
	for _, a := range args {
		comma()
		p.expr(a, PrecTest)
	}
	for _, kw := range keywords {
		comma()
		p.keyword(kw)
	}
}

func (p *printer) keyword(kw *ast.Keyword) {
	if kw == nil {
		p.missing("keyword")
		return
	}
	if kw.Arg == "" {
		p.write("**")
	} else {
		p.ident(kw.Arg)
		p.write("=")
	}
	p.expr(kw.Value, PrecTest)
}

func (p *printer) comprehensions(gens []*ast.Comprehension) {
	for _, g := range gens {
		if g == nil {
			p.missing("comprehension")
			return
		}
		if g.IsAsync {
			p.write(" async for ")
		} else {
			p.write(" for ")
		}
		p.expr(g.Target, PrecTuple)
		p.write(" in ")
		p.expr(g.Iter, PrecTest.Next())
		for _, cond := range g.Ifs {
			p.write(" if ")
			p.expr(cond, PrecTest.Next())
		}
	}
}

// constant writes a literal value. Tuples of constants are parenthesised and
// rendered element by element.
func (p *printer) constant(v ast.Value, unicodePrefix bool) {
	switch v := v.(type) {
	case nil, ast.None:
		p.write("None")
	case ast.Ellipsis:
		p.write("...")
	case ast.Bool:
		if v {
			p.write("True")
		} else {
			p.write("False")
		}
	case ast.Int:
		p.write(bigOrZero(v).String())
	case ast.Float:
		p.write(floatLiteral(float64(v)))
	case ast.Complex:
		p.write(complexLiteral(v.Real, v.Imag))
	case ast.Str:
		lit, ok := strLiteral(string(v), p.raw && !unicodePrefix)
		if !ok {
			p.fail(errors.New(errors.ErrCodeEncoding, "string literal is not valid UTF-8: %q", string(v)))
			return
		}
		p.write(lit)
	case ast.Bytes:
		p.write(bytesLiteral(v, p.raw))
	case ast.ConstTuple:
		p.write("(")
		for i, el := range v {
			if i > 0 {
				p.write(", ")
			}
			p.constant(el, false)
		}
		if len(v) == 1 {
			p.write(",")
		}
		p.write(")")
	default:
		p.fail(errors.New(errors.ErrCodeInvalidNode, "unknown constant %T", v))
	}
}

// exprList writes elements separated by ", " with no trailing comma.
func (p *printer) exprList(elts []ast.Expr, level Precedence) {
	for i, e := range elts {
		if i > 0 {
			p.write(", ")
		}
		p.expr(e, level)
	}
}

// items writes tuple elements; a single element keeps its trailing comma.
func (p *printer) items(elts []ast.Expr) {
	if len(elts) == 1 {
		p.expr(elts[0], PrecTest)
		p.write(",")
		return
	}
	p.exprList(elts, PrecTest)
}

func (p *printer) parens(cond bool, body func()) {
	if !cond {
		body()
		return
	}
	p.write("(")
	body()
	p.write(")")
}

func (p *printer) requireParens(prec, level Precedence, body func()) {
	p.parens(level > prec, body)
}

func (p *printer) unsupported(kind string) {
	p.fail(errors.New(errors.ErrCodeUnsupported, "cannot render %s: interpolated strings are not supported", kind))
}

// ident writes an identifier, rejecting text that is not valid UTF-8.
func (p *printer) ident(name string) {
	switch {
	case name == "":
		p.fail(errors.New(errors.ErrCodeInvalidNode, "empty identifier"))
	case !utf8.ValidString(name):
		p.fail(errors.New(errors.ErrCodeEncoding, "identifier is not valid UTF-8: %q", name))
	default:
		p.write(name)
	}
}
