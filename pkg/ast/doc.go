// Package ast defines the syntax tree consumed by the unparser.
//
// # Overview
//
// The tree models the abstract syntax of a dynamic, indentation-based language
// (the grammar of Python 3.12). It is built by an external parser and is treated
// as immutable by every consumer in this module.
//
// Four closed families are modelled as sealed interfaces, so a type switch over
// a family lists every kind the renderer must handle:
//
//   - [Stmt]: definitions, assignments, control flow, imports, ...
//   - [Expr]: operators, displays, comprehensions, calls, literals, ...
//   - [Pattern]: structural-match patterns used by match statements
//   - [TypeParam]: type-variable, param-spec and type-var-tuple parameters
//
// Auxiliary nodes ([Arguments], [Keyword], [Alias], [Comprehension],
// [ExceptHandler], [WithItem], [MatchCase]) are plain structs owned by their
// parent node.
//
// Asynchronous variants share a struct with their synchronous form: an
// "async def" is a [FunctionDef] with IsAsync set, "async for" a [For], "async
// with" a [With]. The exception-group form "try*" is a [Try] with IsStar set.
//
// # Constants
//
// Literal values carried by [Constant] implement [Value]: [None], [Ellipsis],
// [Bool], [Int], [Float], [Complex], [Str], [Bytes] and [ConstTuple].
//
// # JSON
//
// [Decode] reads the "_type"-tagged JSON emitted by common Python AST dumpers
// and [Encode] writes the same format back:
//
//	{"_type": "Module", "body": [
//	  {"_type": "Expr", "value": {"_type": "Name", "id": "x"}}
//	]}
//
// Position attributes (lineno, col_offset, ...) and expression contexts (ctx)
// are ignored on input and never written.
package ast
