package unparse

import (
	"math/big"

	"github.com/matzehuels/pyunparse/pkg/ast"
)

// Precedence is the binding power of an expression. A child expression is
// parenthesised when the level required by its context is greater than its
// own precedence.
type Precedence int

// Ranks from loosest to tightest binding.
const (
	PrecNamedExpr Precedence = iota // :=
	PrecTuple                       // a, b
	PrecYield                       // yield, yield from
	PrecTest                        // x if c else y, lambda
	PrecOr                          // or
	PrecAnd                         // and
	PrecNot                         // not
	PrecCmp                         // <, ==, in, is, ...
	PrecExpr                        // |
	PrecBitXor                      // ^
	PrecBitAnd                      // &
	PrecShift                       // <<, >>
	PrecArith                       // +, -
	PrecTerm                        // *, @, /, %, //
	PrecFactor                      // unary +, -, ~
	PrecPower                       // **
	PrecAwait                       // await
	PrecAtom                        // names, literals, displays, calls, ...
)

var precedenceNames = [...]string{
	PrecNamedExpr: "NamedExpr",
	PrecTuple:     "Tuple",
	PrecYield:     "Yield",
	PrecTest:      "Test",
	PrecOr:        "Or",
	PrecAnd:       "And",
	PrecNot:       "Not",
	PrecCmp:       "Cmp",
	PrecExpr:      "Expr",
	PrecBitXor:    "BitXor",
	PrecBitAnd:    "BitAnd",
	PrecShift:     "Shift",
	PrecArith:     "Arith",
	PrecTerm:      "Term",
	PrecFactor:    "Factor",
	PrecPower:     "Power",
	PrecAwait:     "Await",
	PrecAtom:      "Atom",
}

func (p Precedence) String() string {
	if p < 0 || int(p) >= len(precedenceNames) {
		return "Precedence(?)"
	}
	return precedenceNames[p]
}

// Next returns the next tighter rank. Atom is its own successor.
func (p Precedence) Next() Precedence {
	if p >= PrecAtom {
		return PrecAtom
	}
	return p + 1
}

var binOpPrecedence = map[ast.Operator]Precedence{
	ast.Add:      PrecArith,
	ast.Sub:      PrecArith,
	ast.Mult:     PrecTerm,
	ast.MatMult:  PrecTerm,
	ast.Div:      PrecTerm,
	ast.Mod:      PrecTerm,
	ast.FloorDiv: PrecTerm,
	ast.Pow:      PrecPower,
	ast.LShift:   PrecShift,
	ast.RShift:   PrecShift,
	ast.BitOr:    PrecExpr,
	ast.BitXor:   PrecBitXor,
	ast.BitAnd:   PrecBitAnd,
}

var binOpSymbols = map[ast.Operator]string{
	ast.Add:      "+",
	ast.Sub:      "-",
	ast.Mult:     "*",
	ast.MatMult:  "@",
	ast.Div:      "/",
	ast.Mod:      "%",
	ast.FloorDiv: "//",
	ast.Pow:      "**",
	ast.LShift:   "<<",
	ast.RShift:   ">>",
	ast.BitOr:    "|",
	ast.BitXor:   "^",
	ast.BitAnd:   "&",
}

var unaryOpPrecedence = map[ast.UnaryOperator]Precedence{
	ast.Not:    PrecNot,
	ast.Invert: PrecFactor,
	ast.UAdd:   PrecFactor,
	ast.USub:   PrecFactor,
}

var unaryOpSymbols = map[ast.UnaryOperator]string{
	ast.Not:    "not",
	ast.Invert: "~",
	ast.UAdd:   "+",
	ast.USub:   "-",
}

var cmpOpSymbols = map[ast.CmpOperator]string{
	ast.Eq:    "==",
	ast.NotEq: "!=",
	ast.Lt:    "<",
	ast.LtE:   "<=",
	ast.Gt:    ">",
	ast.GtE:   ">=",
	ast.Is:    "is",
	ast.IsNot: "is not",
	ast.In:    "in",
	ast.NotIn: "not in",
}

func boolOpPrecedence(op ast.BoolOperator) Precedence {
	if op == ast.Or {
		return PrecOr
	}
	return PrecAnd
}

func boolOpSymbol(op ast.BoolOperator) string {
	if op == ast.Or {
		return "or"
	}
	return "and"
}

// PrecedenceOf returns the binding power of e as written by the renderer.
//
// Negative numeric constants bind like a unary minus, so "(-1) ** 2" and
// "(-1).real" keep their parentheses.
func PrecedenceOf(e ast.Expr) Precedence {
	switch e := e.(type) {
	case *ast.NamedExpr:
		return PrecNamedExpr
	case *ast.Tuple:
		return PrecTuple
	case *ast.Yield, *ast.YieldFrom:
		return PrecYield
	case *ast.IfExp, *ast.Lambda:
		return PrecTest
	case *ast.BoolOp:
		return boolOpPrecedence(e.Op)
	case *ast.UnaryOp:
		return unaryOpPrecedence[e.Op]
	case *ast.Compare:
		return PrecCmp
	case *ast.BinOp:
		return binOpPrecedence[e.Op]
	case *ast.Await:
		return PrecAwait
	case *ast.Constant:
		if isNegative(e.Value) {
			return PrecFactor
		}
	}
	return PrecAtom
}

func isNegative(v ast.Value) bool {
	switch v := v.(type) {
	case ast.Int:
		return v.Int != nil && v.Sign() < 0
	case ast.Float:
		return v < 0 || (v == 0 && isNegZero(float64(v)))
	}
	return false
}

func isIntLike(v ast.Value) bool {
	switch v.(type) {
	case ast.Int, ast.Bool:
		return true
	}
	return false
}

func bigOrZero(i ast.Int) *big.Int {
	if i.Int == nil {
		return new(big.Int)
	}
	return i.Int
}
