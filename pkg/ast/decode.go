package ast

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrUnknownNode is returned when a "_type" tag names no known node.
	ErrUnknownNode = errors.New("unknown node type")

	// ErrMissingField is returned when a required field is absent or null.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a field holds a value of the wrong shape.
	ErrInvalidField = errors.New("invalid field")
)

// Decode reads one "_type"-tagged JSON document from r.
//
// The document root may be a Module, an Expression wrapper, any single
// statement, expression or pattern, or a bare JSON array of statements, which
// is returned as a *Module. Errors carry the path of the offending field, for
// example "body[2].value.left: missing required field".
//
// Decode does not close r.
func Decode(r io.Reader) (Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return DecodeValue(raw)
}

// DecodeValue converts an already-unmarshalled JSON value into a node.
// Numbers must have been decoded as json.Number.
func DecodeValue(raw any) (Node, error) {
	d := &decoder{}
	var n Node
	if items, ok := raw.([]any); ok {
		m := &Module{Body: make([]Stmt, 0, len(items))}
		for i, it := range items {
			d.enter(fmt.Sprintf("[%d]", i))
			m.Body = append(m.Body, d.asStmt(it))
			d.leave()
		}
		n = m
	} else {
		n = d.node(raw)
	}
	if d.err != nil {
		return nil, d.err
	}
	return n, nil
}

// decoder walks a generic JSON value. The first failure is kept and every
// later call becomes a no-op.
type decoder struct {
	path []string
	err  error
}

func (d *decoder) enter(seg string) { d.path = append(d.path, seg) }
func (d *decoder) leave()           { d.path = d.path[:len(d.path)-1] }

func (d *decoder) failf(format string, args ...any) {
	if d.err != nil {
		return
	}
	where := strings.TrimPrefix(strings.Join(d.path, ""), ".")
	if where == "" {
		where = "root"
	}
	d.err = fmt.Errorf("%s: %w", where, fmt.Errorf(format, args...))
}

func (d *decoder) object(v any) map[string]any {
	o, ok := v.(map[string]any)
	if !ok {
		d.failf("%w: expected object, got %s", ErrInvalidField, jsonKind(v))
	}
	return o
}

func (d *decoder) node(v any) Node {
	if d.err != nil {
		return nil
	}
	o := d.object(v)
	if o == nil {
		return nil
	}
	t, _ := o["_type"].(string)
	if t == "" {
		d.failf("%w: _type", ErrMissingField)
		return nil
	}
	if n := d.stmt(t, o); n != nil {
		return n
	}
	if n := d.expr(t, o); n != nil {
		return n
	}
	if n := d.pattern(t, o); n != nil {
		return n
	}
	if n := d.typeParam(t, o); n != nil {
		return n
	}
	switch t {
	case "Module", "Interactive":
		return &Module{Body: d.stmts(o, "body")}
	case "Expression":
		return d.reqExpr(o, "body")
	}
	if d.err == nil {
		d.failf("%w: %q", ErrUnknownNode, t)
	}
	return nil
}

func (d *decoder) stmt(t string, o map[string]any) Stmt {
	switch t {
	case "FunctionDef", "AsyncFunctionDef":
		return &FunctionDef{
			Name:       d.reqStr(o, "name"),
			TypeParams: d.typeParams(o, "type_params"),
			Args:       d.arguments(o, "args"),
			Body:       d.stmts(o, "body"),
			Decorators: d.exprs(o, "decorator_list"),
			Returns:    d.exprField(o, "returns"),
			IsAsync:    t == "AsyncFunctionDef",

			TypeComment: d.str(o, "type_comment"),
		}
	case "ClassDef":
		return &ClassDef{
			Name:       d.reqStr(o, "name"),
			TypeParams: d.typeParams(o, "type_params"),
			Bases:      d.exprs(o, "bases"),
			Keywords:   d.keywords(o, "keywords"),
			Body:       d.stmts(o, "body"),
			Decorators: d.exprs(o, "decorator_list"),
		}
	case "Return":
		return &Return{Value: d.exprField(o, "value")}
	case "Delete":
		return &Delete{Targets: d.exprs(o, "targets")}
	case "Assign":
		return &Assign{
			Targets:     d.exprs(o, "targets"),
			Value:       d.reqExpr(o, "value"),
			TypeComment: d.str(o, "type_comment"),
		}
	case "AugAssign":
		return &AugAssign{
			Target: d.reqExpr(o, "target"),
			Op:     d.binOp(o, "op"),
			Value:  d.reqExpr(o, "value"),
		}
	case "AnnAssign":
		return &AnnAssign{
			Target:     d.reqExpr(o, "target"),
			Annotation: d.reqExpr(o, "annotation"),
			Value:      d.exprField(o, "value"),
			Simple:     d.boolean(o, "simple"),
		}
	case "TypeAlias":
		return &TypeAlias{
			Name:       d.reqExpr(o, "name"),
			TypeParams: d.typeParams(o, "type_params"),
			Value:      d.reqExpr(o, "value"),
		}
	case "For", "AsyncFor":
		return &For{
			Target:      d.reqExpr(o, "target"),
			Iter:        d.reqExpr(o, "iter"),
			Body:        d.stmts(o, "body"),
			OrElse:      d.stmts(o, "orelse"),
			TypeComment: d.str(o, "type_comment"),
			IsAsync:     t == "AsyncFor",
		}
	case "While":
		return &While{Test: d.reqExpr(o, "test"), Body: d.stmts(o, "body"), OrElse: d.stmts(o, "orelse")}
	case "If":
		return &If{Test: d.reqExpr(o, "test"), Body: d.stmts(o, "body"), OrElse: d.stmts(o, "orelse")}
	case "With", "AsyncWith":
		return &With{
			Items:       d.withItems(o, "items"),
			Body:        d.stmts(o, "body"),
			TypeComment: d.str(o, "type_comment"),
			IsAsync:     t == "AsyncWith",
		}
	case "Match":
		return &Match{Subject: d.reqExpr(o, "subject"), Cases: d.matchCases(o, "cases")}
	case "Raise":
		return &Raise{Exc: d.exprField(o, "exc"), Cause: d.exprField(o, "cause")}
	case "Try", "TryStar":
		return &Try{
			Body:      d.stmts(o, "body"),
			Handlers:  d.handlers(o, "handlers"),
			OrElse:    d.stmts(o, "orelse"),
			FinalBody: d.stmts(o, "finalbody"),
			IsStar:    t == "TryStar",
		}
	case "Assert":
		return &Assert{Test: d.reqExpr(o, "test"), Msg: d.exprField(o, "msg")}
	case "Import":
		return &Import{Names: d.aliases(o, "names")}
	case "ImportFrom":
		return &ImportFrom{Module: d.str(o, "module"), Names: d.aliases(o, "names"), Level: d.integer(o, "level")}
	case "Global":
		return &Global{Names: d.strs(o, "names")}
	case "Nonlocal":
		return &Nonlocal{Names: d.strs(o, "names")}
	case "Expr":
		return &ExprStmt{Value: d.reqExpr(o, "value")}
	case "Pass":
		return &Pass{}
	case "Break":
		return &Break{}
	case "Continue":
		return &Continue{}
	}
	return nil
}

func (d *decoder) expr(t string, o map[string]any) Expr {
	switch t {
	case "BoolOp":
		return &BoolOp{Op: d.boolOp(o, "op"), Values: d.exprs(o, "values")}
	case "NamedExpr":
		return &NamedExpr{Target: d.reqExpr(o, "target"), Value: d.reqExpr(o, "value")}
	case "BinOp":
		return &BinOp{Left: d.reqExpr(o, "left"), Op: d.binOp(o, "op"), Right: d.reqExpr(o, "right")}
	case "UnaryOp":
		return &UnaryOp{Op: d.unaryOp(o, "op"), Operand: d.reqExpr(o, "operand")}
	case "Lambda":
		return &Lambda{Args: d.arguments(o, "args"), Body: d.reqExpr(o, "body")}
	case "IfExp":
		return &IfExp{Test: d.reqExpr(o, "test"), Body: d.reqExpr(o, "body"), OrElse: d.reqExpr(o, "orelse")}
	case "Dict":
		return &Dict{Keys: d.optExprs(o, "keys"), Values: d.exprs(o, "values")}
	case "Set":
		return &Set{Elts: d.exprs(o, "elts")}
	case "ListComp":
		return &ListComp{Elt: d.reqExpr(o, "elt"), Generators: d.comprehensions(o, "generators")}
	case "SetComp":
		return &SetComp{Elt: d.reqExpr(o, "elt"), Generators: d.comprehensions(o, "generators")}
	case "DictComp":
		return &DictComp{
			Key:        d.reqExpr(o, "key"),
			Value:      d.reqExpr(o, "value"),
			Generators: d.comprehensions(o, "generators"),
		}
	case "GeneratorExp":
		return &GeneratorExp{Elt: d.reqExpr(o, "elt"), Generators: d.comprehensions(o, "generators")}
	case "Await":
		return &Await{Value: d.reqExpr(o, "value")}
	case "Yield":
		return &Yield{Value: d.exprField(o, "value")}
	case "YieldFrom":
		return &YieldFrom{Value: d.reqExpr(o, "value")}
	case "Compare":
		return &Compare{Left: d.reqExpr(o, "left"), Ops: d.cmpOps(o, "ops"), Comparators: d.exprs(o, "comparators")}
	case "Call":
		return &Call{Func: d.reqExpr(o, "func"), Args: d.exprs(o, "args"), Keywords: d.keywords(o, "keywords")}
	case "FormattedValue":
		return &FormattedValue{
			Value:      d.reqExpr(o, "value"),
			Conversion: d.integer(o, "conversion"),
			FormatSpec: d.exprField(o, "format_spec"),
		}
	case "JoinedStr":
		return &JoinedStr{Values: d.exprs(o, "values")}
	case "Constant":
		d.enter(".value")
		v := d.constant(o["value"])
		d.leave()
		return &Constant{Value: v, Kind: d.str(o, "kind")}
	case "Attribute":
		return &Attribute{Value: d.reqExpr(o, "value"), Attr: d.reqStr(o, "attr")}
	case "Subscript":
		return &Subscript{Value: d.reqExpr(o, "value"), Slice: d.reqExpr(o, "slice")}
	case "Starred":
		return &Starred{Value: d.reqExpr(o, "value")}
	case "Name":
		return &Name{ID: d.reqStr(o, "id")}
	case "List":
		return &List{Elts: d.exprs(o, "elts")}
	case "Tuple":
		return &Tuple{Elts: d.exprs(o, "elts")}
	case "Slice":
		return &Slice{Lower: d.exprField(o, "lower"), Upper: d.exprField(o, "upper"), Step: d.exprField(o, "step")}

	// Subscript wrappers written by dumpers running on Python 3.8 and older.
	case "Index":
		return d.reqExpr(o, "value")
	case "ExtSlice":
		return &Tuple{Elts: d.exprs(o, "dims")}
	}
	return nil
}

func (d *decoder) pattern(t string, o map[string]any) Pattern {
	switch t {
	case "MatchValue":
		return &MatchValue{Value: d.reqExpr(o, "value")}
	case "MatchSingleton":
		d.enter(".value")
		v := d.constant(o["value"])
		d.leave()
		return &MatchSingleton{Value: v}
	case "MatchSequence":
		return &MatchSequence{Patterns: d.patterns(o, "patterns")}
	case "MatchMapping":
		return &MatchMapping{Keys: d.exprs(o, "keys"), Patterns: d.patterns(o, "patterns"), Rest: d.str(o, "rest")}
	case "MatchClass":
		return &MatchClass{
			Cls:         d.reqExpr(o, "cls"),
			Patterns:    d.patterns(o, "patterns"),
			KwdAttrs:    d.strs(o, "kwd_attrs"),
			KwdPatterns: d.patterns(o, "kwd_patterns"),
		}
	case "MatchStar":
		return &MatchStar{Name: d.str(o, "name")}
	case "MatchAs":
		return &MatchAs{Pattern: d.patternField(o, "pattern"), Name: d.str(o, "name")}
	case "MatchOr":
		return &MatchOr{Patterns: d.patterns(o, "patterns")}
	}
	return nil
}

func (d *decoder) typeParam(t string, o map[string]any) TypeParam {
	switch t {
	case "TypeVar":
		return &TypeVar{Name: d.reqStr(o, "name"), Bound: d.exprField(o, "bound"), Default: d.exprField(o, "default_value")}
	case "ParamSpec":
		return &ParamSpec{Name: d.reqStr(o, "name"), Default: d.exprField(o, "default_value")}
	case "TypeVarTuple":
		return &TypeVarTuple{Name: d.reqStr(o, "name"), Default: d.exprField(o, "default_value")}
	}
	return nil
}

// =============================================================================
// Typed conversions
// =============================================================================

func (d *decoder) asStmt(v any) Stmt {
	n := d.node(v)
	if n == nil {
		return nil
	}
	s, ok := n.(Stmt)
	if !ok {
		d.failf("%w: %T is not a statement", ErrInvalidField, n)
	}
	return s
}

func (d *decoder) asExpr(v any) Expr {
	n := d.node(v)
	if n == nil {
		return nil
	}
	e, ok := n.(Expr)
	if !ok {
		d.failf("%w: %T is not an expression", ErrInvalidField, n)
	}
	return e
}

func (d *decoder) asOptExpr(v any) Expr {
	if v == nil {
		return nil
	}
	return d.asExpr(v)
}

func (d *decoder) asPattern(v any) Pattern {
	n := d.node(v)
	if n == nil {
		return nil
	}
	p, ok := n.(Pattern)
	if !ok {
		d.failf("%w: %T is not a pattern", ErrInvalidField, n)
	}
	return p
}

func (d *decoder) asTypeParam(v any) TypeParam {
	n := d.node(v)
	if n == nil {
		return nil
	}
	p, ok := n.(TypeParam)
	if !ok {
		d.failf("%w: %T is not a type parameter", ErrInvalidField, n)
	}
	return p
}

func (d *decoder) asString(v any) string {
	s, ok := v.(string)
	if !ok {
		d.failf("%w: expected string, got %s", ErrInvalidField, jsonKind(v))
	}
	return s
}

// each converts every element of the list stored under key. Absent, null and
// empty lists all yield nil.
func each[T any](d *decoder, o map[string]any, key string, conv func(any) T) []T {
	v := o[key]
	if v == nil || d.err != nil {
		return nil
	}
	d.enter("." + key)
	defer d.leave()
	items, ok := v.([]any)
	if !ok {
		d.failf("%w: expected array, got %s", ErrInvalidField, jsonKind(v))
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		d.enter(fmt.Sprintf("[%d]", i))
		out[i] = conv(it)
		d.leave()
	}
	return out
}

// field converts the single value stored under key, or returns the zero value
// when it is absent or null.
func field[T any](d *decoder, o map[string]any, key string, conv func(any) T) T {
	var zero T
	v := o[key]
	if v == nil || d.err != nil {
		return zero
	}
	d.enter("." + key)
	defer d.leave()
	return conv(v)
}

func (d *decoder) stmts(o map[string]any, key string) []Stmt { return each(d, o, key, d.asStmt) }
func (d *decoder) exprs(o map[string]any, key string) []Expr { return each(d, o, key, d.asExpr) }
func (d *decoder) optExprs(o map[string]any, key string) []Expr {
	return each(d, o, key, d.asOptExpr)
}
func (d *decoder) patterns(o map[string]any, key string) []Pattern {
	return each(d, o, key, d.asPattern)
}
func (d *decoder) typeParams(o map[string]any, key string) []TypeParam {
	return each(d, o, key, d.asTypeParam)
}
func (d *decoder) strs(o map[string]any, key string) []string { return each(d, o, key, d.asString) }

func (d *decoder) exprField(o map[string]any, key string) Expr { return field(d, o, key, d.asExpr) }
func (d *decoder) patternField(o map[string]any, key string) Pattern {
	return field(d, o, key, d.asPattern)
}
func (d *decoder) str(o map[string]any, key string) string { return field(d, o, key, d.asString) }

func (d *decoder) required(o map[string]any, key string) bool {
	if o[key] != nil {
		return true
	}
	d.enter("." + key)
	d.failf("%w", ErrMissingField)
	d.leave()
	return false
}

func (d *decoder) reqExpr(o map[string]any, key string) Expr {
	if !d.required(o, key) {
		return nil
	}
	return d.exprField(o, key)
}

func (d *decoder) reqStr(o map[string]any, key string) string {
	if !d.required(o, key) {
		return ""
	}
	return d.str(o, key)
}

func (d *decoder) integer(o map[string]any, key string) int {
	return field(d, o, key, func(v any) int {
		n, ok := v.(json.Number)
		if !ok {
			d.failf("%w: expected integer, got %s", ErrInvalidField, jsonKind(v))
			return 0
		}
		i, err := n.Int64()
		if err != nil {
			d.failf("%w: %v", ErrInvalidField, err)
		}
		return int(i)
	})
}

// boolean accepts JSON booleans and the 0/1 integers Python dumpers emit.
func (d *decoder) boolean(o map[string]any, key string) bool {
	return field(d, o, key, func(v any) bool {
		switch b := v.(type) {
		case bool:
			return b
		case json.Number:
			return b.String() != "0"
		}
		d.failf("%w: expected boolean, got %s", ErrInvalidField, jsonKind(v))
		return false
	})
}

// =============================================================================
// Operators
// =============================================================================

// opName accepts both {"_type": "Add"} and the bare string "Add".
func (d *decoder) opName(o map[string]any, key string) string {
	if !d.required(o, key) {
		return ""
	}
	return field(d, o, key, d.asOpName)
}

func (d *decoder) asOpName(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	obj := d.object(v)
	s, _ := obj["_type"].(string)
	if s == "" && d.err == nil {
		d.failf("%w: _type", ErrMissingField)
	}
	return s
}

func (d *decoder) binOp(o map[string]any, key string) Operator {
	name := d.opName(o, key)
	op, ok := ParseOperator(name)
	if !ok && d.err == nil {
		d.enter("." + key)
		d.failf("%w: operator %q", ErrUnknownNode, name)
		d.leave()
	}
	return op
}

func (d *decoder) boolOp(o map[string]any, key string) BoolOperator {
	name := d.opName(o, key)
	op, ok := ParseBoolOperator(name)
	if !ok && d.err == nil {
		d.enter("." + key)
		d.failf("%w: operator %q", ErrUnknownNode, name)
		d.leave()
	}
	return op
}

func (d *decoder) unaryOp(o map[string]any, key string) UnaryOperator {
	name := d.opName(o, key)
	op, ok := ParseUnaryOperator(name)
	if !ok && d.err == nil {
		d.enter("." + key)
		d.failf("%w: operator %q", ErrUnknownNode, name)
		d.leave()
	}
	return op
}

func (d *decoder) cmpOps(o map[string]any, key string) []CmpOperator {
	return each(d, o, key, func(v any) CmpOperator {
		name := d.asOpName(v)
		op, ok := ParseCmpOperator(name)
		if !ok && d.err == nil {
			d.failf("%w: operator %q", ErrUnknownNode, name)
		}
		return op
	})
}

// =============================================================================
// Auxiliary nodes
// =============================================================================

// arguments normalises the Python layout, where defaults align with the tail
// of posonlyargs+args and kw_defaults pairs with kwonlyargs, into one default
// per parameter.
func (d *decoder) arguments(o map[string]any, key string) *Arguments {
	return field(d, o, key, func(v any) *Arguments {
		ao := d.object(v)
		if ao == nil {
			return nil
		}
		a := &Arguments{
			VarArg: field(d, ao, "vararg", d.asArg),
			KwArg:  field(d, ao, "kwarg", d.asArg),
		}
		posOnly := each(d, ao, "posonlyargs", d.asArg)
		args := each(d, ao, "args", d.asArg)
		defaults := d.exprs(ao, "defaults")
		kwOnly := each(d, ao, "kwonlyargs", d.asArg)
		kwDefaults := d.optExprs(ao, "kw_defaults")
		if d.err != nil {
			return nil
		}

		positional := append(append([]*Arg{}, posOnly...), args...)
		if len(defaults) > len(positional) {
			d.failf("%w: %d defaults for %d positional parameters", ErrInvalidField, len(defaults), len(positional))
			return nil
		}
		offset := len(positional) - len(defaults)
		for i, arg := range positional {
			p := &Parameter{Arg: arg}
			if i >= offset {
				p.Default = defaults[i-offset]
			}
			if i < len(posOnly) {
				a.PosOnly = append(a.PosOnly, p)
			} else {
				a.Args = append(a.Args, p)
			}
		}

		if len(kwDefaults) != 0 && len(kwDefaults) != len(kwOnly) {
			d.failf("%w: %d kw_defaults for %d keyword-only parameters", ErrInvalidField, len(kwDefaults), len(kwOnly))
			return nil
		}
		for i, arg := range kwOnly {
			p := &Parameter{Arg: arg}
			if i < len(kwDefaults) {
				p.Default = kwDefaults[i]
			}
			a.KwOnly = append(a.KwOnly, p)
		}
		return a
	})
}

func (d *decoder) asArg(v any) *Arg {
	o := d.object(v)
	if o == nil {
		return nil
	}
	return &Arg{
		Name:        d.reqStr(o, "arg"),
		Annotation:  d.exprField(o, "annotation"),
		TypeComment: d.str(o, "type_comment"),
	}
}

func (d *decoder) keywords(o map[string]any, key string) []*Keyword {
	return each(d, o, key, func(v any) *Keyword {
		ko := d.object(v)
		if ko == nil {
			return nil
		}
		return &Keyword{Arg: d.str(ko, "arg"), Value: d.reqExpr(ko, "value")}
	})
}

func (d *decoder) aliases(o map[string]any, key string) []*Alias {
	return each(d, o, key, func(v any) *Alias {
		ao := d.object(v)
		if ao == nil {
			return nil
		}
		return &Alias{Name: d.reqStr(ao, "name"), AsName: d.str(ao, "asname")}
	})
}

func (d *decoder) comprehensions(o map[string]any, key string) []*Comprehension {
	return each(d, o, key, func(v any) *Comprehension {
		co := d.object(v)
		if co == nil {
			return nil
		}
		return &Comprehension{
			Target:  d.reqExpr(co, "target"),
			Iter:    d.reqExpr(co, "iter"),
			Ifs:     d.exprs(co, "ifs"),
			IsAsync: d.boolean(co, "is_async"),
		}
	})
}

func (d *decoder) handlers(o map[string]any, key string) []*ExceptHandler {
	return each(d, o, key, func(v any) *ExceptHandler {
		ho := d.object(v)
		if ho == nil {
			return nil
		}
		return &ExceptHandler{Type: d.exprField(ho, "type"), Name: d.str(ho, "name"), Body: d.stmts(ho, "body")}
	})
}

func (d *decoder) withItems(o map[string]any, key string) []*WithItem {
	return each(d, o, key, func(v any) *WithItem {
		wo := d.object(v)
		if wo == nil {
			return nil
		}
		return &WithItem{ContextExpr: d.reqExpr(wo, "context_expr"), OptionalVars: d.exprField(wo, "optional_vars")}
	})
}

func (d *decoder) matchCases(o map[string]any, key string) []*MatchCase {
	return each(d, o, key, func(v any) *MatchCase {
		mo := d.object(v)
		if mo == nil {
			return nil
		}
		var p Pattern
		if d.required(mo, "pattern") {
			p = d.patternField(mo, "pattern")
		}
		return &MatchCase{Pattern: p, Guard: d.exprField(mo, "guard"), Body: d.stmts(mo, "body")}
	})
}

// =============================================================================
// Constants
// =============================================================================

func (d *decoder) constant(v any) Value {
	if d.err != nil {
		return nil
	}
	switch c := v.(type) {
	case nil:
		return None{}
	case bool:
		return Bool(c)
	case string:
		return Str(c)
	case json.Number:
		return d.number(c.String())
	case map[string]any:
		return d.taggedConstant(c)
	}
	d.failf("%w: unsupported constant %s", ErrInvalidField, jsonKind(v))
	return nil
}

func (d *decoder) number(s string) Value {
	if !strings.ContainsAny(s, ".eE") {
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			d.failf("%w: integer %q", ErrInvalidField, s)
			return nil
		}
		return Int{i}
	}
	return Float(d.float(s))
}

// float also accepts the spellings used for values JSON cannot carry.
func (d *decoder) float(s string) float64 {
	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity":
		return math.Inf(1)
	case "-inf", "-infinity":
		return math.Inf(-1)
	case "nan":
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.failf("%w: float %q", ErrInvalidField, s)
	}
	return f
}

func (d *decoder) floatField(o map[string]any, key string) float64 {
	return field(d, o, key, func(v any) float64 {
		switch n := v.(type) {
		case json.Number:
			return d.float(n.String())
		case string:
			return d.float(n)
		}
		d.failf("%w: expected number, got %s", ErrInvalidField, jsonKind(v))
		return 0
	})
}

func (d *decoder) base64Field(o map[string]any, key string) []byte {
	s := d.str(o, key)
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		d.enter("." + key)
		d.failf("%w: %v", ErrInvalidField, err)
		d.leave()
	}
	return b
}

// taggedConstant decodes values that plain JSON cannot express:
//
//	{"_type": "bytes", "value": "<base64>"}
//	{"_type": "str", "bytes": "<base64>"}   text that is not valid UTF-8
//	{"_type": "Ellipsis"}
//	{"_type": "complex", "real": 0, "imag": 3}
//	{"_type": "tuple", "elts": [...]}
//	{"_type": "int", "value": "123456789012345678901234567890"}
//	{"_type": "float", "value": "inf"}
func (d *decoder) taggedConstant(o map[string]any) Value {
	t, _ := o["_type"].(string)
	switch t {
	case "bytes":
		return Bytes(d.base64Field(o, "value"))
	case "str":
		if o["bytes"] != nil {
			return Str(d.base64Field(o, "bytes"))
		}
		return Str(d.str(o, "value"))
	case "Ellipsis", "ellipsis":
		return Ellipsis{}
	case "complex":
		return Complex{Real: d.floatField(o, "real"), Imag: d.floatField(o, "imag")}
	case "tuple":
		return ConstTuple(each(d, o, "elts", d.constant))
	case "int":
		return d.number(d.reqStr(o, "value"))
	case "float":
		return Float(d.floatField(o, "value"))
	}
	d.failf("%w: constant tag %q", ErrUnknownNode, t)
	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
