package ast

// Operator is a binary arithmetic or bitwise operator.
type Operator int

const (
	Add Operator = iota
	Sub
	Mult
	MatMult
	Div
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	FloorDiv
)

var operatorNames = [...]string{
	Add:      "Add",
	Sub:      "Sub",
	Mult:     "Mult",
	MatMult:  "MatMult",
	Div:      "Div",
	Mod:      "Mod",
	Pow:      "Pow",
	LShift:   "LShift",
	RShift:   "RShift",
	BitOr:    "BitOr",
	BitXor:   "BitXor",
	BitAnd:   "BitAnd",
	FloorDiv: "FloorDiv",
}

// String returns the node name of the operator ("Add", "Pow", ...).
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "Operator(?)"
	}
	return operatorNames[o]
}

// BoolOperator is a short-circuiting boolean operator.
type BoolOperator int

const (
	And BoolOperator = iota
	Or
)

func (o BoolOperator) String() string {
	if o == Or {
		return "Or"
	}
	return "And"
}

// UnaryOperator is a prefix operator.
type UnaryOperator int

const (
	Invert UnaryOperator = iota
	Not
	UAdd
	USub
)

var unaryNames = [...]string{Invert: "Invert", Not: "Not", UAdd: "UAdd", USub: "USub"}

func (o UnaryOperator) String() string {
	if o < 0 || int(o) >= len(unaryNames) {
		return "UnaryOperator(?)"
	}
	return unaryNames[o]
}

// CmpOperator is a comparison operator inside a [Compare] chain.
type CmpOperator int

const (
	Eq CmpOperator = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

var cmpNames = [...]string{
	Eq:    "Eq",
	NotEq: "NotEq",
	Lt:    "Lt",
	LtE:   "LtE",
	Gt:    "Gt",
	GtE:   "GtE",
	Is:    "Is",
	IsNot: "IsNot",
	In:    "In",
	NotIn: "NotIn",
}

func (o CmpOperator) String() string {
	if o < 0 || int(o) >= len(cmpNames) {
		return "CmpOperator(?)"
	}
	return cmpNames[o]
}

func lookup[T ~int](names []string, name string) (T, bool) {
	for i, n := range names {
		if n == name {
			return T(i), true
		}
	}
	return 0, false
}

// ParseOperator returns the binary operator with the given node name.
func ParseOperator(name string) (Operator, bool) {
	return lookup[Operator](operatorNames[:], name)
}

// ParseBoolOperator returns the boolean operator with the given node name.
func ParseBoolOperator(name string) (BoolOperator, bool) {
	return lookup[BoolOperator]([]string{"And", "Or"}, name)
}

// ParseUnaryOperator returns the unary operator with the given node name.
func ParseUnaryOperator(name string) (UnaryOperator, bool) {
	return lookup[UnaryOperator](unaryNames[:], name)
}

// ParseCmpOperator returns the comparison operator with the given node name.
func ParseCmpOperator(name string) (CmpOperator, bool) {
	return lookup[CmpOperator](cmpNames[:], name)
}
