package ast

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type object = map[string]any

// Encode writes n to w as indented "_type"-tagged JSON that [Decode] reads
// back into an equal tree.
func Encode(w io.Writer, n Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(EncodeValue(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// EncodeValue converts n into generic JSON values (maps, slices, strings,
// json.Number, bools and nil). Output is deterministic, which makes it
// suitable as a canonical form for hashing.
func EncodeValue(n Node) any {
	switch n := n.(type) {
	case nil:
		return nil
	case *Module:
		return object{"_type": "Module", "body": encodeStmts(n.Body), "type_ignores": []any{}}
	case Stmt:
		return encodeStmt(n)
	case Expr:
		return encodeExpr(n)
	case Pattern:
		return encodePattern(n)
	case TypeParam:
		return encodeTypeParam(n)
	}
	return nil
}

func encodeStmt(s Stmt) any {
	switch s := s.(type) {
	case nil:
		return nil
	case *FunctionDef:
		t := "FunctionDef"
		if s.IsAsync {
			t = "AsyncFunctionDef"
		}
		return object{
			"_type":          t,
			"name":           s.Name,
			"type_params":    encodeList(s.TypeParams, encodeTypeParam),
			"args":           encodeArguments(s.Args),
			"body":           encodeStmts(s.Body),
			"decorator_list": encodeExprs(s.Decorators),
			"returns":        encodeExpr(s.Returns),
			"type_comment":   optString(s.TypeComment),
		}
	case *ClassDef:
		return object{
			"_type":          "ClassDef",
			"name":           s.Name,
			"type_params":    encodeList(s.TypeParams, encodeTypeParam),
			"bases":          encodeExprs(s.Bases),
			"keywords":       encodeList(s.Keywords, encodeKeyword),
			"body":           encodeStmts(s.Body),
			"decorator_list": encodeExprs(s.Decorators),
		}
	case *Return:
		return object{"_type": "Return", "value": encodeExpr(s.Value)}
	case *Delete:
		return object{"_type": "Delete", "targets": encodeExprs(s.Targets)}
	case *Assign:
		return object{
			"_type":        "Assign",
			"targets":      encodeExprs(s.Targets),
			"value":        encodeExpr(s.Value),
			"type_comment": optString(s.TypeComment),
		}
	case *AugAssign:
		return object{
			"_type":  "AugAssign",
			"target": encodeExpr(s.Target),
			"op":     object{"_type": s.Op.String()},
			"value":  encodeExpr(s.Value),
		}
	case *AnnAssign:
		simple := 0
		if s.Simple {
			simple = 1
		}
		return object{
			"_type":      "AnnAssign",
			"target":     encodeExpr(s.Target),
			"annotation": encodeExpr(s.Annotation),
			"value":      encodeExpr(s.Value),
			"simple":     simple,
		}
	case *TypeAlias:
		return object{
			"_type":       "TypeAlias",
			"name":        encodeExpr(s.Name),
			"type_params": encodeList(s.TypeParams, encodeTypeParam),
			"value":       encodeExpr(s.Value),
		}
	case *For:
		t := "For"
		if s.IsAsync {
			t = "AsyncFor"
		}
		return object{
			"_type":        t,
			"target":       encodeExpr(s.Target),
			"iter":         encodeExpr(s.Iter),
			"body":         encodeStmts(s.Body),
			"orelse":       encodeStmts(s.OrElse),
			"type_comment": optString(s.TypeComment),
		}
	case *While:
		return object{"_type": "While", "test": encodeExpr(s.Test), "body": encodeStmts(s.Body), "orelse": encodeStmts(s.OrElse)}
	case *If:
		return object{"_type": "If", "test": encodeExpr(s.Test), "body": encodeStmts(s.Body), "orelse": encodeStmts(s.OrElse)}
	case *With:
		t := "With"
		if s.IsAsync {
			t = "AsyncWith"
		}
		return object{
			"_type":        t,
			"items":        encodeList(s.Items, encodeWithItem),
			"body":         encodeStmts(s.Body),
			"type_comment": optString(s.TypeComment),
		}
	case *Match:
		return object{"_type": "Match", "subject": encodeExpr(s.Subject), "cases": encodeList(s.Cases, encodeMatchCase)}
	case *Raise:
		return object{"_type": "Raise", "exc": encodeExpr(s.Exc), "cause": encodeExpr(s.Cause)}
	case *Try:
		t := "Try"
		if s.IsStar {
			t = "TryStar"
		}
		return object{
			"_type":     t,
			"body":      encodeStmts(s.Body),
			"handlers":  encodeList(s.Handlers, encodeHandler),
			"orelse":    encodeStmts(s.OrElse),
			"finalbody": encodeStmts(s.FinalBody),
		}
	case *Assert:
		return object{"_type": "Assert", "test": encodeExpr(s.Test), "msg": encodeExpr(s.Msg)}
	case *Import:
		return object{"_type": "Import", "names": encodeList(s.Names, encodeAlias)}
	case *ImportFrom:
		return object{"_type": "ImportFrom", "module": optString(s.Module), "names": encodeList(s.Names, encodeAlias), "level": s.Level}
	case *Global:
		return object{"_type": "Global", "names": encodeStrings(s.Names)}
	case *Nonlocal:
		return object{"_type": "Nonlocal", "names": encodeStrings(s.Names)}
	case *ExprStmt:
		return object{"_type": "Expr", "value": encodeExpr(s.Value)}
	case *Pass:
		return object{"_type": "Pass"}
	case *Break:
		return object{"_type": "Break"}
	case *Continue:
		return object{"_type": "Continue"}
	}
	return nil
}

func encodeExpr(e Expr) any {
	switch e := e.(type) {
	case nil:
		return nil
	case *BoolOp:
		return object{"_type": "BoolOp", "op": object{"_type": e.Op.String()}, "values": encodeExprs(e.Values)}
	case *NamedExpr:
		return object{"_type": "NamedExpr", "target": encodeExpr(e.Target), "value": encodeExpr(e.Value)}
	case *BinOp:
		return object{"_type": "BinOp", "left": encodeExpr(e.Left), "op": object{"_type": e.Op.String()}, "right": encodeExpr(e.Right)}
	case *UnaryOp:
		return object{"_type": "UnaryOp", "op": object{"_type": e.Op.String()}, "operand": encodeExpr(e.Operand)}
	case *Lambda:
		return object{"_type": "Lambda", "args": encodeArguments(e.Args), "body": encodeExpr(e.Body)}
	case *IfExp:
		return object{"_type": "IfExp", "test": encodeExpr(e.Test), "body": encodeExpr(e.Body), "orelse": encodeExpr(e.OrElse)}
	case *Dict:
		return object{"_type": "Dict", "keys": encodeExprs(e.Keys), "values": encodeExprs(e.Values)}
	case *Set:
		return object{"_type": "Set", "elts": encodeExprs(e.Elts)}
	case *ListComp:
		return object{"_type": "ListComp", "elt": encodeExpr(e.Elt), "generators": encodeList(e.Generators, encodeComprehension)}
	case *SetComp:
		return object{"_type": "SetComp", "elt": encodeExpr(e.Elt), "generators": encodeList(e.Generators, encodeComprehension)}
	case *DictComp:
		return object{
			"_type":      "DictComp",
			"key":        encodeExpr(e.Key),
			"value":      encodeExpr(e.Value),
			"generators": encodeList(e.Generators, encodeComprehension),
		}
	case *GeneratorExp:
		return object{"_type": "GeneratorExp", "elt": encodeExpr(e.Elt), "generators": encodeList(e.Generators, encodeComprehension)}
	case *Await:
		return object{"_type": "Await", "value": encodeExpr(e.Value)}
	case *Yield:
		return object{"_type": "Yield", "value": encodeExpr(e.Value)}
	case *YieldFrom:
		return object{"_type": "YieldFrom", "value": encodeExpr(e.Value)}
	case *Compare:
		ops := make([]any, len(e.Ops))
		for i, op := range e.Ops {
			ops[i] = object{"_type": op.String()}
		}
		return object{"_type": "Compare", "left": encodeExpr(e.Left), "ops": ops, "comparators": encodeExprs(e.Comparators)}
	case *Call:
		return object{
			"_type":    "Call",
			"func":     encodeExpr(e.Func),
			"args":     encodeExprs(e.Args),
			"keywords": encodeList(e.Keywords, encodeKeyword),
		}
	case *FormattedValue:
		return object{
			"_type":       "FormattedValue",
			"value":       encodeExpr(e.Value),
			"conversion":  e.Conversion,
			"format_spec": encodeExpr(e.FormatSpec),
		}
	case *JoinedStr:
		return object{"_type": "JoinedStr", "values": encodeExprs(e.Values)}
	case *Constant:
		return object{"_type": "Constant", "value": encodeConstant(e.Value), "kind": optString(e.Kind)}
	case *Attribute:
		return object{"_type": "Attribute", "value": encodeExpr(e.Value), "attr": e.Attr}
	case *Subscript:
		return object{"_type": "Subscript", "value": encodeExpr(e.Value), "slice": encodeExpr(e.Slice)}
	case *Starred:
		return object{"_type": "Starred", "value": encodeExpr(e.Value)}
	case *Name:
		return object{"_type": "Name", "id": e.ID}
	case *List:
		return object{"_type": "List", "elts": encodeExprs(e.Elts)}
	case *Tuple:
		return object{"_type": "Tuple", "elts": encodeExprs(e.Elts)}
	case *Slice:
		return object{"_type": "Slice", "lower": encodeExpr(e.Lower), "upper": encodeExpr(e.Upper), "step": encodeExpr(e.Step)}
	}
	return nil
}

func encodePattern(p Pattern) any {
	switch p := p.(type) {
	case nil:
		return nil
	case *MatchValue:
		return object{"_type": "MatchValue", "value": encodeExpr(p.Value)}
	case *MatchSingleton:
		return object{"_type": "MatchSingleton", "value": encodeConstant(p.Value)}
	case *MatchSequence:
		return object{"_type": "MatchSequence", "patterns": encodeList(p.Patterns, encodePattern)}
	case *MatchMapping:
		return object{
			"_type":    "MatchMapping",
			"keys":     encodeExprs(p.Keys),
			"patterns": encodeList(p.Patterns, encodePattern),
			"rest":     optString(p.Rest),
		}
	case *MatchClass:
		return object{
			"_type":        "MatchClass",
			"cls":          encodeExpr(p.Cls),
			"patterns":     encodeList(p.Patterns, encodePattern),
			"kwd_attrs":    encodeStrings(p.KwdAttrs),
			"kwd_patterns": encodeList(p.KwdPatterns, encodePattern),
		}
	case *MatchStar:
		return object{"_type": "MatchStar", "name": optString(p.Name)}
	case *MatchAs:
		return object{"_type": "MatchAs", "pattern": encodePattern(p.Pattern), "name": optString(p.Name)}
	case *MatchOr:
		return object{"_type": "MatchOr", "patterns": encodeList(p.Patterns, encodePattern)}
	}
	return nil
}

func encodeTypeParam(p TypeParam) any {
	switch p := p.(type) {
	case *TypeVar:
		return object{"_type": "TypeVar", "name": p.Name, "bound": encodeExpr(p.Bound), "default_value": encodeExpr(p.Default)}
	case *ParamSpec:
		return object{"_type": "ParamSpec", "name": p.Name, "default_value": encodeExpr(p.Default)}
	case *TypeVarTuple:
		return object{"_type": "TypeVarTuple", "name": p.Name, "default_value": encodeExpr(p.Default)}
	}
	return nil
}

// encodeArguments writes the Python layout back: positional defaults are
// collected from the first defaulted parameter onward.
func encodeArguments(a *Arguments) any {
	if a == nil {
		a = &Arguments{}
	}
	positional := append(append([]*Parameter{}, a.PosOnly...), a.Args...)
	defaults := []any{}
	for i, p := range positional {
		if p.Default != nil {
			for _, q := range positional[i:] {
				defaults = append(defaults, encodeExpr(q.Default))
			}
			break
		}
	}
	kwDefaults := make([]any, len(a.KwOnly))
	for i, p := range a.KwOnly {
		kwDefaults[i] = encodeExpr(p.Default)
	}
	param := func(p *Parameter) any { return encodeArg(p.Arg) }
	return object{
		"_type":       "arguments",
		"posonlyargs": encodeList(a.PosOnly, param),
		"args":        encodeList(a.Args, param),
		"vararg":      encodeArg(a.VarArg),
		"kwonlyargs":  encodeList(a.KwOnly, param),
		"kw_defaults": kwDefaults,
		"kwarg":       encodeArg(a.KwArg),
		"defaults":    defaults,
	}
}

func encodeArg(a *Arg) any {
	if a == nil {
		return nil
	}
	return object{
		"_type":        "arg",
		"arg":          a.Name,
		"annotation":   encodeExpr(a.Annotation),
		"type_comment": optString(a.TypeComment),
	}
}

func encodeKeyword(k *Keyword) any {
	return object{"_type": "keyword", "arg": optString(k.Arg), "value": encodeExpr(k.Value)}
}

func encodeAlias(a *Alias) any {
	return object{"_type": "alias", "name": a.Name, "asname": optString(a.AsName)}
}

func encodeComprehension(c *Comprehension) any {
	isAsync := 0
	if c.IsAsync {
		isAsync = 1
	}
	return object{
		"_type":    "comprehension",
		"target":   encodeExpr(c.Target),
		"iter":     encodeExpr(c.Iter),
		"ifs":      encodeExprs(c.Ifs),
		"is_async": isAsync,
	}
}

func encodeHandler(h *ExceptHandler) any {
	return object{"_type": "ExceptHandler", "type": encodeExpr(h.Type), "name": optString(h.Name), "body": encodeStmts(h.Body)}
}

func encodeWithItem(w *WithItem) any {
	return object{"_type": "withitem", "context_expr": encodeExpr(w.ContextExpr), "optional_vars": encodeExpr(w.OptionalVars)}
}

func encodeMatchCase(c *MatchCase) any {
	return object{"_type": "match_case", "pattern": encodePattern(c.Pattern), "guard": encodeExpr(c.Guard), "body": encodeStmts(c.Body)}
}

func encodeConstant(v Value) any {
	switch v := v.(type) {
	case nil, None:
		return nil
	case Ellipsis:
		return object{"_type": "Ellipsis"}
	case Bool:
		return bool(v)
	case Int:
		if v.Int == nil {
			return json.Number("0")
		}
		return json.Number(v.String())
	case Float:
		return encodeFloat(float64(v))
	case Complex:
		return object{"_type": "complex", "real": encodeFloat(v.Real), "imag": encodeFloat(v.Imag)}
	case Str:
		if !utf8.ValidString(string(v)) {
			return object{"_type": "str", "bytes": base64.StdEncoding.EncodeToString([]byte(v))}
		}
		return string(v)
	case Bytes:
		return object{"_type": "bytes", "value": base64.StdEncoding.EncodeToString(v)}
	case ConstTuple:
		return object{"_type": "tuple", "elts": encodeList(v, encodeConstant)}
	}
	return nil
}

// encodeFloat keeps a fraction or exponent in the literal so the value is
// not read back as an integer. Non-finite values use the tagged form.
func encodeFloat(f float64) any {
	switch {
	case math.IsInf(f, 1):
		return object{"_type": "float", "value": "inf"}
	case math.IsInf(f, -1):
		return object{"_type": "float", "value": "-inf"}
	case math.IsNaN(f):
		return object{"_type": "float", "value": "nan"}
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.Number(s)
}

func encodeStmts(body []Stmt) []any  { return encodeList(body, encodeStmt) }
func encodeExprs(exprs []Expr) []any { return encodeList(exprs, encodeExpr) }

func encodeStrings(names []string) []any {
	return encodeList(names, func(s string) any { return s })
}

func encodeList[T any](items []T, conv func(T) any) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = conv(it)
	}
	return out
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
