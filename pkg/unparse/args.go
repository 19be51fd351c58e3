package unparse

import "github.com/matzehuels/pyunparse/pkg/ast"

// arguments writes a parameter list without the surrounding parentheses.
// Lambda parameters carry no annotations, so annotate is false for them.
//
// Groups appear in order: positional-only parameters closed by "/", regular
// parameters, "*vararg" (or a bare "*" when keyword-only parameters follow
// without one), keyword-only parameters and "**kwarg".
func (p *printer) arguments(a *ast.Arguments, annotate bool) {
	if a == nil {
		return
	}
	first := true
	comma := func() {
		if !first {
			p.write(", ")
		}
		first = false
	}

	for i, param := range a.PosOnly {
		comma()
		p.parameter(param, annotate)
		if i == len(a.PosOnly)-1 {
			p.write(", /")
		}
	}
	for _, param := range a.Args {
		comma()
		p.parameter(param, annotate)
	}

	if a.VarArg != nil || len(a.KwOnly) > 0 {
		comma()
		p.write("*")
		if a.VarArg != nil {
			p.arg(a.VarArg, annotate)
		}
	}
	for _, param := range a.KwOnly {
		comma()
		p.parameter(param, annotate)
	}

	if a.KwArg != nil {
		comma()
		p.write("**")
		p.arg(a.KwArg, annotate)
	}
}

func (p *printer) parameter(param *ast.Parameter, annotate bool) {
	if param == nil {
		p.missing("parameter")
		return
	}
	p.arg(param.Arg, annotate)
	if param.Default != nil {
		p.write("=")
		p.expr(param.Default, PrecTest)
	}
}

func (p *printer) arg(a *ast.Arg, annotate bool) {
	if a == nil {
		p.ident("")
		return
	}
	p.ident(a.Name)
	if annotate && a.Annotation != nil {
		p.write(": ")
		p.expr(a.Annotation, PrecTest)
	}
}

// typeParams writes "[T, *Ts, **P]" or nothing for an empty list.
func (p *printer) typeParams(params []ast.TypeParam) {
	if len(params) == 0 {
		return
	}
	p.write("[")
	for i, tp := range params {
		if i > 0 {
			p.write(", ")
		}
		p.typeParam(tp)
	}
	p.write("]")
}

func (p *printer) typeParam(tp ast.TypeParam) {
	var def ast.Expr
	switch tp := tp.(type) {
	case *ast.TypeVar:
		if tp == nil {
			p.missing("type parameter")
			return
		}
		p.ident(tp.Name)
		if tp.Bound != nil {
			p.write(": ")
			p.expr(tp.Bound, PrecTest)
		}
		def = tp.Default
	case *ast.TypeVarTuple:
		if tp == nil {
			p.missing("type parameter")
			return
		}
		p.write("*")
		p.ident(tp.Name)
		def = tp.Default
	case *ast.ParamSpec:
		if tp == nil {
			p.missing("type parameter")
			return
		}
		p.write("**")
		p.ident(tp.Name)
		def = tp.Default
	default:
		p.invalid("type parameter", tp)
		return
	}
	if def != nil {
		p.write(" = ")
		p.expr(def, PrecTest)
	}
}

func (p *printer) alias(a *ast.Alias) {
	if a == nil {
		p.missing("alias")
		return
	}
	p.dottedName(a.Name)
	if a.AsName != "" {
		p.write(" as ")
		p.ident(a.AsName)
	}
}

// dottedName writes a module path such as "os.path" or the wildcard "*".
func (p *printer) dottedName(name string) {
	if name == "*" {
		p.write("*")
		return
	}
	p.ident(name)
}

func (p *printer) withItem(w *ast.WithItem) {
	if w == nil {
		p.missing("with item")
		return
	}
	p.expr(w.ContextExpr, PrecTest)
	if w.OptionalVars != nil {
		p.write(" as ")
		p.expr(w.OptionalVars, PrecTest)
	}
}
