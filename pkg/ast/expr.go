package ast

// BoolOp is "a and b and c" or "a or b". Values has at least two elements.
type BoolOp struct {
	Op     BoolOperator
	Values []Expr
}

// NamedExpr is an assignment expression "target := value".
type NamedExpr struct {
	Target Expr
	Value  Expr
}

// BinOp is a binary operation.
type BinOp struct {
	Left  Expr
	Op    Operator
	Right Expr
}

// UnaryOp is a prefix operation.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
}

// Lambda is an anonymous function expression.
type Lambda struct {
	Args *Arguments
	Body Expr
}

// IfExp is a conditional expression "body if test else orelse".
type IfExp struct {
	Test   Expr
	Body   Expr
	OrElse Expr
}

// Dict is a dictionary display. A nil key marks a "**value" unpacking.
type Dict struct {
	Keys   []Expr
	Values []Expr
}

// Set is a set display.
type Set struct {
	Elts []Expr
}

// ListComp is a list comprehension.
type ListComp struct {
	Elt        Expr
	Generators []*Comprehension
}

// SetComp is a set comprehension.
type SetComp struct {
	Elt        Expr
	Generators []*Comprehension
}

// DictComp is a dictionary comprehension.
type DictComp struct {
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	Elt        Expr
	Generators []*Comprehension
}

// Await is "await value".
type Await struct {
	Value Expr
}

// Yield is "yield" with an optional value.
type Yield struct {
	Value Expr
}

// YieldFrom is "yield from value".
type YieldFrom struct {
	Value Expr
}

// Compare is a comparison chain "left op1 c1 op2 c2 ...".
// Ops and Comparators have equal length.
type Compare struct {
	Left        Expr
	Ops         []CmpOperator
	Comparators []Expr
}

// Call is a function call.
type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// FormattedValue is a single replacement field of an interpolated string.
// The unparser does not render it.
type FormattedValue struct {
	Value      Expr
	Conversion int
	FormatSpec Expr
}

// JoinedStr is an interpolated string. The unparser does not render it.
type JoinedStr struct {
	Values []Expr
}

// Constant is a literal value. Kind is "u" for strings written with a u prefix.
type Constant struct {
	Value Value
	Kind  string
}

// Attribute is "value.attr".
type Attribute struct {
	Value Expr
	Attr  string
}

// Subscript is "value[slice]".
type Subscript struct {
	Value Expr
	Slice Expr
}

// Starred is "*value".
type Starred struct {
	Value Expr
}

// Name is an identifier reference.
type Name struct {
	ID string
}

// List is a list display.
type List struct {
	Elts []Expr
}

// Tuple is a tuple display.
type Tuple struct {
	Elts []Expr
}

// Slice is "lower:upper:step" inside a subscript. Every bound is optional.
type Slice struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

func (*BoolOp) node()         {}
func (*NamedExpr) node()      {}
func (*BinOp) node()          {}
func (*UnaryOp) node()        {}
func (*Lambda) node()         {}
func (*IfExp) node()          {}
func (*Dict) node()           {}
func (*Set) node()            {}
func (*ListComp) node()       {}
func (*SetComp) node()        {}
func (*DictComp) node()       {}
func (*GeneratorExp) node()   {}
func (*Await) node()          {}
func (*Yield) node()          {}
func (*YieldFrom) node()      {}
func (*Compare) node()        {}
func (*Call) node()           {}
func (*FormattedValue) node() {}
func (*JoinedStr) node()      {}
func (*Constant) node()       {}
func (*Attribute) node()      {}
func (*Subscript) node()      {}
func (*Starred) node()        {}
func (*Name) node()           {}
func (*List) node()           {}
func (*Tuple) node()          {}
func (*Slice) node()          {}

func (*BoolOp) exprNode()         {}
func (*NamedExpr) exprNode()      {}
func (*BinOp) exprNode()          {}
func (*UnaryOp) exprNode()        {}
func (*Lambda) exprNode()         {}
func (*IfExp) exprNode()          {}
func (*Dict) exprNode()           {}
func (*Set) exprNode()            {}
func (*ListComp) exprNode()       {}
func (*SetComp) exprNode()        {}
func (*DictComp) exprNode()       {}
func (*GeneratorExp) exprNode()   {}
func (*Await) exprNode()          {}
func (*Yield) exprNode()          {}
func (*YieldFrom) exprNode()      {}
func (*Compare) exprNode()        {}
func (*Call) exprNode()           {}
func (*FormattedValue) exprNode() {}
func (*JoinedStr) exprNode()      {}
func (*Constant) exprNode()       {}
func (*Attribute) exprNode()      {}
func (*Subscript) exprNode()      {}
func (*Starred) exprNode()        {}
func (*Name) exprNode()           {}
func (*List) exprNode()           {}
func (*Tuple) exprNode()          {}
func (*Slice) exprNode()          {}
