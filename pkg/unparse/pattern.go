package unparse

import (
	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

// pattern renders a structural-match pattern. Or-patterns bind like "|" and
// as-patterns like a conditional expression, so both take parentheses when
// nested where a tighter level is required.
func (p *printer) pattern(pat ast.Pattern, level Precedence) {
	if p.err != nil {
		return
	}
	switch pat := pat.(type) {
	case nil:
		p.fail(errors.New(errors.ErrCodeInvalidNode, "missing pattern"))

	case *ast.MatchValue:
		p.expr(pat.Value, PrecTest)

	case *ast.MatchSingleton:
		p.constant(pat.Value, false)

	case *ast.MatchSequence:
		p.write("[")
		p.patternList(pat.Patterns)
		p.write("]")

	case *ast.MatchStar:
		p.write("*")
		p.captureName(pat.Name)

	case *ast.MatchMapping:
		if len(pat.Keys) != len(pat.Patterns) {
			p.fail(errors.New(errors.ErrCodeInvalidNode, "mapping pattern has %d keys and %d patterns", len(pat.Keys), len(pat.Patterns)))
			return
		}
		p.write("{")
		for i, k := range pat.Keys {
			if i > 0 {
				p.write(", ")
			}
			p.expr(k, PrecTest)
			p.write(": ")
			p.pattern(pat.Patterns[i], PrecTest)
		}
		if pat.Rest != "" {
			if len(pat.Keys) > 0 {
				p.write(", ")
			}
			p.write("**")
			p.ident(pat.Rest)
		}
		p.write("}")

	case *ast.MatchClass:
		if len(pat.KwdAttrs) != len(pat.KwdPatterns) {
			p.fail(errors.New(errors.ErrCodeInvalidNode, "class pattern has %d keyword names and %d patterns", len(pat.KwdAttrs), len(pat.KwdPatterns)))
			return
		}
		p.expr(pat.Cls, PrecAtom)
		p.write("(")
		p.patternList(pat.Patterns)
		for i, attr := range pat.KwdAttrs {
			if i > 0 || len(pat.Patterns) > 0 {
				p.write(", ")
			}
			p.ident(attr)
			p.write("=")
			p.pattern(pat.KwdPatterns[i], PrecTest)
		}
		p.write(")")

	case *ast.MatchAs:
		switch {
		case pat.Name == "":
			p.write("_")
		case pat.Pattern == nil:
			p.ident(pat.Name)
		default:
			p.requireParens(PrecTest, level, func() {
				p.pattern(pat.Pattern, PrecExpr)
				p.write(" as ")
				p.ident(pat.Name)
			})
		}

	case *ast.MatchOr:
		p.requireParens(PrecExpr, level, func() {
			for i, alt := range pat.Patterns {
				if i > 0 {
					p.write(" | ")
				}
				p.pattern(alt, PrecExpr.Next())
			}
		})

	default:
		p.invalid("pattern", pat)
	}
}

func (p *printer) patternList(pats []ast.Pattern) {
	for i, pat := range pats {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(pat, PrecTest)
	}
}

// captureName writes a capture target, "_" standing for an unnamed one.
func (p *printer) captureName(name string) {
	if name == "" {
		p.write("_")
		return
	}
	p.ident(name)
}

func (p *printer) matchCase(c *ast.MatchCase) {
	if c == nil {
		p.missing("match case")
		return
	}
	p.fill("case ")
	p.pattern(c.Pattern, PrecTest)
	if c.Guard != nil {
		p.write(" if ")
		p.expr(c.Guard, PrecTest)
	}
	p.body(c.Body)
}
