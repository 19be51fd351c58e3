package ast

// Node is implemented by every tree node that can be rendered on its own.
type Node interface {
	node()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern is a structural-match pattern.
type Pattern interface {
	Node
	patternNode()
}

// TypeParam is a type parameter of a generic function, class or type alias.
type TypeParam interface {
	Node
	typeParamNode()
}

// Module is the root of a parsed source file.
type Module struct {
	Body []Stmt
}

func (*Module) node() {}
