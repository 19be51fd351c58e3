package unparse

import (
	"math/big"

	"github.com/matzehuels/pyunparse/pkg/ast"
)

// Tree builders shared by the tests in this package.

func name(id string) *ast.Name { return &ast.Name{ID: id} }

func num(v int64) *ast.Constant { return &ast.Constant{Value: ast.NewInt(v)} }

func flt(v float64) *ast.Constant { return &ast.Constant{Value: ast.Float(v)} }

func str(s string) *ast.Constant { return &ast.Constant{Value: ast.Str(s)} }

func bigInt(s string) *ast.Constant {
	i, _ := new(big.Int).SetString(s, 10)
	return &ast.Constant{Value: ast.Int{Int: i}}
}

func bin(l ast.Expr, op ast.Operator, r ast.Expr) *ast.BinOp {
	return &ast.BinOp{Left: l, Op: op, Right: r}
}

func unary(op ast.UnaryOperator, e ast.Expr) *ast.UnaryOp {
	return &ast.UnaryOp{Op: op, Operand: e}
}

func boolop(op ast.BoolOperator, values ...ast.Expr) *ast.BoolOp {
	return &ast.BoolOp{Op: op, Values: values}
}

func compare(left ast.Expr, op ast.CmpOperator, right ast.Expr) *ast.Compare {
	return &ast.Compare{Left: left, Ops: []ast.CmpOperator{op}, Comparators: []ast.Expr{right}}
}

func call(fn ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: fn, Args: args} }

func tuple(elts ...ast.Expr) *ast.Tuple { return &ast.Tuple{Elts: elts} }

func param(n string) *ast.Parameter { return &ast.Parameter{Arg: &ast.Arg{Name: n}} }

func paramDefault(n string, def ast.Expr) *ast.Parameter {
	return &ast.Parameter{Arg: &ast.Arg{Name: n}, Default: def}
}

func exprStmt(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Value: e} }

func assign(target, value ast.Expr) *ast.Assign {
	return &ast.Assign{Targets: []ast.Expr{target}, Value: value}
}

func ret(e ast.Expr) *ast.Return { return &ast.Return{Value: e} }

func pass() *ast.Pass { return &ast.Pass{} }

func body(stmts ...ast.Stmt) []ast.Stmt { return stmts }

func module(stmts ...ast.Stmt) *ast.Module { return &ast.Module{Body: stmts} }
