package unparse

import (
	"strings"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

func (p *printer) stmts(body []ast.Stmt) {
	for _, s := range body {
		if p.err != nil {
			return
		}
		p.stmt(s)
	}
}

// body renders a non-empty indented block after a header line.
func (p *printer) body(stmts []ast.Stmt) {
	p.bodyWith("", stmts)
}

func (p *printer) bodyWith(extra string, stmts []ast.Stmt) {
	if len(stmts) == 0 {
		p.fail(errors.New(errors.ErrCodeInvalidNode, "empty block"))
		return
	}
	p.blockWith(extra, func() { p.stmts(stmts) })
}

// stmt renders one statement starting on a new line at the current depth.
func (p *printer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil:
		p.fail(errors.New(errors.ErrCodeInvalidNode, "missing statement"))

	case *ast.FunctionDef:
		p.decorators(s.Decorators)
		if s.IsAsync {
			p.fill("async def ")
		} else {
			p.fill("def ")
		}
		p.ident(s.Name)
		p.typeParams(s.TypeParams)
		p.write("(")
		p.arguments(s.Args, true)
		p.write(")")
		if s.Returns != nil {
			p.write(" -> ")
			p.expr(s.Returns, PrecTest)
		}
		p.bodyWith(typeComment(s.TypeComment), s.Body)

	case *ast.ClassDef:
		p.decorators(s.Decorators)
		p.fill("class ")
		p.ident(s.Name)
		p.typeParams(s.TypeParams)
		p.parens(len(s.Bases) > 0 || len(s.Keywords) > 0, func() {
			p.callArgs(s.Bases, s.Keywords)
		})
		p.body(s.Body)

	case *ast.Return:
		p.fill("return")
		if s.Value != nil {
			p.write(" ")
			p.expr(s.Value, PrecTest)
		}

	case *ast.Delete:
		p.fill("del ")
		p.exprList(s.Targets, PrecTest)

	case *ast.Assign:
		if len(s.Targets) == 0 {
			p.fail(errors.New(errors.ErrCodeInvalidNode, "assignment without targets"))
			return
		}
		p.fill()
		for _, t := range s.Targets {
			p.expr(t, PrecTuple)
			p.write(" = ")
		}
		p.expr(s.Value, PrecTest)
		p.write(typeComment(s.TypeComment))

	case *ast.AugAssign:
		p.fill()
		p.expr(s.Target, PrecTest)
		p.write(" ", binOpSymbols[s.Op], "= ")
		p.expr(s.Value, PrecTest)

	case *ast.AnnAssign:
		p.fill()
		_, isName := s.Target.(*ast.Name)
		p.parens(!s.Simple && isName, func() {
			p.expr(s.Target, PrecTest)
		})
		p.write(": ")
		p.expr(s.Annotation, PrecTest)
		if s.Value != nil {
			p.write(" = ")
			p.expr(s.Value, PrecTest)
		}

	case *ast.TypeAlias:
		p.fill("type ")
		p.expr(s.Name, PrecTest)
		p.typeParams(s.TypeParams)
		p.write(" = ")
		p.expr(s.Value, PrecTest)

	case *ast.For:
		if s.IsAsync {
			p.fill("async for ")
		} else {
			p.fill("for ")
		}
		p.expr(s.Target, PrecTuple)
		p.write(" in ")
		p.expr(s.Iter, PrecTest)
		p.bodyWith(typeComment(s.TypeComment), s.Body)
		p.orElse(s.OrElse)

	case *ast.While:
		p.fill("while ")
		p.expr(s.Test, PrecTest)
		p.body(s.Body)
		p.orElse(s.OrElse)

	case *ast.If:
		p.ifChain(s)

	case *ast.With:
		if s.IsAsync {
			p.fill("async with ")
		} else {
			p.fill("with ")
		}
		for i, item := range s.Items {
			if i > 0 {
				p.write(", ")
			}
			p.withItem(item)
		}
		p.bodyWith(typeComment(s.TypeComment), s.Body)

	case *ast.Match:
		p.fill("match ")
		p.expr(s.Subject, PrecTest)
		if len(s.Cases) == 0 {
			p.fail(errors.New(errors.ErrCodeInvalidNode, "match without cases"))
			return
		}
		p.block(func() {
			for _, c := range s.Cases {
				p.matchCase(c)
			}
		})

	case *ast.Raise:
		p.fill("raise")
		if s.Exc == nil {
			if s.Cause != nil {
				p.fail(errors.New(errors.ErrCodeInvalidNode, "raise has a cause but no exception"))
			}
			return
		}
		p.write(" ")
		p.expr(s.Exc, PrecTest)
		if s.Cause != nil {
			p.write(" from ")
			p.expr(s.Cause, PrecTest)
		}

	case *ast.Try:
		p.try(s, s.IsStar)

	case *ast.Assert:
		p.fill("assert ")
		p.expr(s.Test, PrecTest)
		if s.Msg != nil {
			p.write(", ")
			p.expr(s.Msg, PrecTest)
		}

	case *ast.Import:
		p.fill("import ")
		p.aliases(s.Names)

	case *ast.ImportFrom:
		p.fill("from ")
		p.write(strings.Repeat(".", s.Level))
		if s.Module != "" {
			p.dottedName(s.Module)
		} else if s.Level == 0 {
			p.fail(errors.New(errors.ErrCodeInvalidNode, "import from without module or level"))
			return
		}
		p.write(" import ")
		p.aliases(s.Names)

	case *ast.Global:
		p.fill("global ")
		p.names(s.Names)

	case *ast.Nonlocal:
		p.fill("nonlocal ")
		p.names(s.Names)

	case *ast.ExprStmt:
		p.fill()
		p.expr(s.Value, PrecYield)

	case *ast.Pass:
		p.fill("pass")

	case *ast.Break:
		p.fill("break")

	case *ast.Continue:
		p.fill("continue")

	default:
		p.invalid("statement", s)
	}
}

func (p *printer) decorators(decos []ast.Expr) {
	for _, d := range decos {
		p.fill("@")
		p.expr(d, PrecTest)
	}
}

// ifChain renders an if statement, collapsing every else branch that holds
// exactly one if statement into an elif clause.
func (p *printer) ifChain(s *ast.If) {
	p.fill("if ")
	p.expr(s.Test, PrecTest)
	p.body(s.Body)
	for len(s.OrElse) == 1 {
		next, ok := s.OrElse[0].(*ast.If)
		if !ok {
			break
		}
		s = next
		p.fill("elif ")
		p.expr(s.Test, PrecTest)
		p.body(s.Body)
	}
	p.orElse(s.OrElse)
}

func (p *printer) orElse(stmts []ast.Stmt) {
	if len(stmts) == 0 {
		return
	}
	p.fill("else")
	p.body(stmts)
}

// try renders both try forms. star selects "except*" for every handler of
// this statement only; nested try statements pass their own value.
func (p *printer) try(s *ast.Try, star bool) {
	p.fill("try")
	p.body(s.Body)
	for _, h := range s.Handlers {
		p.handler(h, star)
	}
	if len(s.Handlers) == 0 && len(s.FinalBody) == 0 {
		p.fail(errors.New(errors.ErrCodeInvalidNode, "try without handlers or finally"))
		return
	}
	p.orElse(s.OrElse)
	if len(s.FinalBody) > 0 {
		p.fill("finally")
		p.body(s.FinalBody)
	}
}

func (p *printer) handler(h *ast.ExceptHandler, star bool) {
	if h == nil {
		p.missing("exception handler")
		return
	}
	if star {
		p.fill("except*")
	} else {
		p.fill("except")
	}
	if h.Type != nil {
		p.write(" ")
		p.expr(h.Type, PrecTest)
	}
	if h.Name != "" {
		p.write(" as ")
		p.ident(h.Name)
	}
	p.body(h.Body)
}

func (p *printer) aliases(names []*ast.Alias) {
	for i, a := range names {
		if i > 0 {
			p.write(", ")
		}
		p.alias(a)
	}
}

func (p *printer) names(names []string) {
	for i, n := range names {
		if i > 0 {
			p.write(", ")
		}
		p.ident(n)
	}
}

func typeComment(comment string) string {
	if comment == "" {
		return ""
	}
	return " # type: " + comment
}
