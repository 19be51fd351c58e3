package ast

// MatchValue matches by equality against an expression.
type MatchValue struct {
	Value Expr
}

// MatchSingleton matches None, True or False by identity.
type MatchSingleton struct {
	Value Value
}

// MatchSequence matches a sequence "[p1, p2, *rest]".
type MatchSequence struct {
	Patterns []Pattern
}

// MatchMapping matches "{k1: p1, **rest}". Rest is empty when absent.
type MatchMapping struct {
	Keys     []Expr
	Patterns []Pattern
	Rest     string
}

// MatchClass matches "Cls(p1, kw=p2)". KwdAttrs and KwdPatterns have equal length.
type MatchClass struct {
	Cls         Expr
	Patterns    []Pattern
	KwdAttrs    []string
	KwdPatterns []Pattern
}

// MatchStar is "*name" inside a sequence pattern, or "*_" when Name is empty.
type MatchStar struct {
	Name string
}

// MatchAs is "pattern as name", a bare capture "name" when Pattern is nil, or
// the wildcard "_" when both are empty.
type MatchAs struct {
	Pattern Pattern
	Name    string
}

// MatchOr is "p1 | p2 | ...".
type MatchOr struct {
	Patterns []Pattern
}

func (*MatchValue) node()     {}
func (*MatchSingleton) node() {}
func (*MatchSequence) node()  {}
func (*MatchMapping) node()   {}
func (*MatchClass) node()     {}
func (*MatchStar) node()      {}
func (*MatchAs) node()        {}
func (*MatchOr) node()        {}

func (*MatchValue) patternNode()     {}
func (*MatchSingleton) patternNode() {}
func (*MatchSequence) patternNode()  {}
func (*MatchMapping) patternNode()   {}
func (*MatchClass) patternNode()     {}
func (*MatchStar) patternNode()      {}
func (*MatchAs) patternNode()        {}
func (*MatchOr) patternNode()        {}

// TypeVar is "T", "T: bound" or "T = default".
type TypeVar struct {
	Name    string
	Bound   Expr
	Default Expr
}

// ParamSpec is "**P".
type ParamSpec struct {
	Name    string
	Default Expr
}

// TypeVarTuple is "*Ts".
type TypeVarTuple struct {
	Name    string
	Default Expr
}

func (*TypeVar) node()      {}
func (*ParamSpec) node()    {}
func (*TypeVarTuple) node() {}

func (*TypeVar) typeParamNode()      {}
func (*ParamSpec) typeParamNode()    {}
func (*TypeVarTuple) typeParamNode() {}
