package unparse

import (
	"io"
	"strings"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

// DefaultIndent is the indentation unit used unless [WithIndent] is given.
const DefaultIndent = "    "

// Option configures an [Unparser].
type Option func(*Unparser)

// WithIndent sets the indentation unit written once per nesting level.
// An empty unit is ignored.
func WithIndent(indent string) Option {
	return func(u *Unparser) {
		if indent != "" {
			u.indent = indent
		}
	}
}

// WithRawStrings enables or disables raw literals (r'...') for strings and
// bytes that contain backslashes but nothing else needing an escape.
// Raw literals are enabled by default.
func WithRawStrings(enabled bool) Option {
	return func(u *Unparser) {
		u.raw = enabled
	}
}

// Unparser renders syntax trees as source text.
//
// An Unparser only holds options. Every call renders with fresh state, so a
// single Unparser may be shared between goroutines.
type Unparser struct {
	indent string
	raw    bool
}

// New returns an Unparser configured by opts.
func New(opts ...Option) *Unparser {
	u := &Unparser{indent: DefaultIndent, raw: true}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Indent returns the configured indentation unit.
func (u *Unparser) Indent() string { return u.indent }

// RawStrings reports whether raw literals are enabled.
func (u *Unparser) RawStrings() bool { return u.raw }

// Unparse renders node and returns the text. See [Unparser.UnparseTo] for the
// accepted node forms. On error the returned text is empty.
func (u *Unparser) Unparse(node any) (string, error) {
	var b strings.Builder
	if err := u.UnparseTo(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// UnparseTo renders node into w.
//
// node may be an *ast.Module, a []ast.Stmt, a single ast.Stmt, an ast.Expr,
// an ast.Pattern or an ast.TypeParam. Statements are separated by "\n" and the
// output ends without a trailing newline. A standalone expression renders as
// it would on the right-hand side of an assignment.
//
// The returned error carries one of the codes ErrCodeEncoding,
// ErrCodeUnsupported, ErrCodeSink or ErrCodeInvalidNode. Text already written
// to w before the failure is not rolled back.
func (u *Unparser) UnparseTo(w io.Writer, node any) error {
	p := &printer{sink: newSink(w, u.indent), raw: u.raw}
	switch n := node.(type) {
	case *ast.Module:
		if n == nil {
			return errors.New(errors.ErrCodeInvalidNode, "nil module")
		}
		p.stmts(n.Body)
	case []ast.Stmt:
		p.stmts(n)
	case ast.Stmt:
		p.stmt(n)
	case ast.Expr:
		p.expr(n, PrecTest)
	case ast.Pattern:
		p.pattern(n, PrecTest)
	case ast.TypeParam:
		p.typeParam(n)
	default:
		return errors.New(errors.ErrCodeInvalidNode, "cannot render %T", node)
	}
	return p.err
}

// Unparse renders node with default options.
func Unparse(node any) (string, error) {
	return New().Unparse(node)
}

// printer holds the state of a single render.
type printer struct {
	*sink
	raw bool
}

func (p *printer) invalid(family string, node any) {
	p.fail(errors.New(errors.ErrCodeInvalidNode, "unknown %s %T", family, node))
}

// missing records a nil child node.
func (p *printer) missing(what string) {
	p.fail(errors.New(errors.ErrCodeInvalidNode, "missing %s", what))
}
