package ast

import "math/big"

// Value is the payload of a [Constant] or [MatchSingleton].
type Value interface {
	value()
}

// None is the null singleton.
type None struct{}

// Ellipsis is the "..." singleton.
type Ellipsis struct{}

// Bool is True or False.
type Bool bool

// Int is an arbitrary-precision integer.
type Int struct {
	*big.Int
}

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	return Int{big.NewInt(v)}
}

// Float is a double-precision float, possibly infinite or NaN.
type Float float64

// Complex is a complex number. Literals in source are always imaginary; a
// non-zero real part only appears in constant-folded trees.
type Complex struct {
	Real float64
	Imag float64
}

// Str is a text string. It may hold invalid UTF-8 when the producer did.
type Str string

// Bytes is a byte string.
type Bytes []byte

// ConstTuple is a tuple of constants, as produced by constant folding.
type ConstTuple []Value

func (None) value()       {}
func (Ellipsis) value()   {}
func (Bool) value()       {}
func (Int) value()        {}
func (Float) value()      {}
func (Complex) value()    {}
func (Str) value()        {}
func (Bytes) value()      {}
func (ConstTuple) value() {}
