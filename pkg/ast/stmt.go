package ast

// FunctionDef is a "def" or "async def" statement.
type FunctionDef struct {
	Name       string
	TypeParams []TypeParam
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr // nil when there is no return annotation
	IsAsync    bool

	TypeComment string
}

// ClassDef is a "class" statement.
type ClassDef struct {
	Name       string
	TypeParams []TypeParam
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Stmt
	Decorators []Expr
}

// Return is "return" with an optional value.
type Return struct {
	Value Expr
}

// Delete is "del t1, t2, ...".
type Delete struct {
	Targets []Expr
}

// Assign is a (possibly chained) assignment "t1 = t2 = value".
type Assign struct {
	Targets     []Expr
	Value       Expr
	TypeComment string
}

// AugAssign is an augmented assignment such as "x += 1".
type AugAssign struct {
	Target Expr
	Op     Operator
	Value  Expr
}

// AnnAssign is an annotated assignment "target: annotation [= value]".
// Simple is false when a plain name target was written in parentheses.
type AnnAssign struct {
	Target     Expr
	Annotation Expr
	Value      Expr
	Simple     bool
}

// TypeAlias is "type Name[params] = value".
type TypeAlias struct {
	Name       Expr
	TypeParams []TypeParam
	Value      Expr
}

// For is a "for" or "async for" loop.
type For struct {
	Target      Expr
	Iter        Expr
	Body        []Stmt
	OrElse      []Stmt
	TypeComment string
	IsAsync     bool
}

// While is a "while" loop with an optional else clause.
type While struct {
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

// If is an "if" statement. An "elif" is an If that is the only statement
// of its parent's OrElse.
type If struct {
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

// With is a "with" or "async with" statement.
type With struct {
	Items       []*WithItem
	Body        []Stmt
	TypeComment string
	IsAsync     bool
}

// Match is a structural-match statement.
type Match struct {
	Subject Expr
	Cases   []*MatchCase
}

// Raise is "raise [exc [from cause]]".
type Raise struct {
	Exc   Expr
	Cause Expr
}

// Try is a "try" statement, or "try" with "except*" handlers when IsStar is set.
type Try struct {
	Body      []Stmt
	Handlers  []*ExceptHandler
	OrElse    []Stmt
	FinalBody []Stmt
	IsStar    bool
}

// Assert is "assert test[, msg]".
type Assert struct {
	Test Expr
	Msg  Expr
}

// Import is "import a, b as c".
type Import struct {
	Names []*Alias
}

// ImportFrom is "from [dots]module import names". Level counts the leading dots.
type ImportFrom struct {
	Module string
	Names  []*Alias
	Level  int
}

// Global is "global a, b".
type Global struct {
	Names []string
}

// Nonlocal is "nonlocal a, b".
type Nonlocal struct {
	Names []string
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	Value Expr
}

// Pass is "pass".
type Pass struct{}

// Break is "break".
type Break struct{}

// Continue is "continue".
type Continue struct{}

func (*FunctionDef) node() {}
func (*ClassDef) node()    {}
func (*Return) node()      {}
func (*Delete) node()      {}
func (*Assign) node()      {}
func (*AugAssign) node()   {}
func (*AnnAssign) node()   {}
func (*TypeAlias) node()   {}
func (*For) node()         {}
func (*While) node()       {}
func (*If) node()          {}
func (*With) node()        {}
func (*Match) node()       {}
func (*Raise) node()       {}
func (*Try) node()         {}
func (*Assert) node()      {}
func (*Import) node()      {}
func (*ImportFrom) node()  {}
func (*Global) node()      {}
func (*Nonlocal) node()    {}
func (*ExprStmt) node()    {}
func (*Pass) node()        {}
func (*Break) node()       {}
func (*Continue) node()    {}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}
func (*AnnAssign) stmtNode()   {}
func (*TypeAlias) stmtNode()   {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*If) stmtNode()          {}
func (*With) stmtNode()        {}
func (*Match) stmtNode()       {}
func (*Raise) stmtNode()       {}
func (*Try) stmtNode()         {}
func (*Assert) stmtNode()      {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*Global) stmtNode()      {}
func (*Nonlocal) stmtNode()    {}
func (*ExprStmt) stmtNode()    {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}
