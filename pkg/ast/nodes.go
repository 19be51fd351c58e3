package ast

// Arguments is the parameter list of a function or lambda.
type Arguments struct {
	PosOnly []*Parameter
	Args    []*Parameter
	VarArg  *Arg
	KwOnly  []*Parameter
	KwArg   *Arg
}

// Empty reports whether the list declares no parameters at all.
func (a *Arguments) Empty() bool {
	return a == nil || (len(a.PosOnly) == 0 && len(a.Args) == 0 && a.VarArg == nil &&
		len(a.KwOnly) == 0 && a.KwArg == nil)
}

// Parameter is a named parameter with an optional default value.
type Parameter struct {
	Arg     *Arg
	Default Expr
}

// Arg is a parameter name with an optional annotation.
type Arg struct {
	Name        string
	Annotation  Expr
	TypeComment string
}

// Keyword is a keyword argument "name=value" or "**value" when Arg is empty.
type Keyword struct {
	Arg   string
	Value Expr
}

// Alias is an imported name "name as asname".
type Alias struct {
	Name   string
	AsName string
}

// Comprehension is a single "for target in iter if ..." clause.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

// ExceptHandler is an "except T as name:" clause.
type ExceptHandler struct {
	Type Expr
	Name string
	Body []Stmt
}

// WithItem is "context_expr as optional_vars".
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr
}

// MatchCase is "case pattern if guard:".
type MatchCase struct {
	Pattern Pattern
	Guard   Expr
	Body    []Stmt
}
