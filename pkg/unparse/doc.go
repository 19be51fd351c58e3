// Package unparse renders syntax trees from [ast] back into source text.
//
// # Overview
//
// Rendering is the inverse of parsing: the text produced for a tree parses
// back into an equal tree. Comments, blank lines and the original quoting
// style are not part of the tree and are not reproduced.
//
//	src, err := unparse.Unparse(&ast.Module{Body: []ast.Stmt{
//	    &ast.Return{Value: &ast.Name{ID: "x"}},
//	}})
//	// src == "return x"
//
// # Parenthesisation
//
// Each expression kind has a [Precedence]. Every recursive call receives the
// level its context requires, and a child is wrapped in parentheses only when
// that level is greater than the child's own precedence. Left-associative
// operators render their right operand one level tighter; power renders its
// left operand one level tighter instead.
//
// # Layout
//
// Compound statements write a header ending in ":" followed by their body one
// indentation level deeper. An else branch holding a single if statement is
// written as elif. The indentation unit defaults to four spaces ([WithIndent]).
//
// # Literals
//
// Strings and bytes are quoted with single quotes unless the text contains a
// single quote and no double quote. Control and non-printable characters are
// escaped. Text holding a backslash and nothing else needing an escape is
// written in raw form ([WithRawStrings]). Floats use the shortest round-trip
// digits; infinities render as 1e309.
//
// # Errors
//
// Rendering stops at the first failure:
//
//   - ENCODING_ERROR: a string literal or identifier is not valid UTF-8
//   - UNSUPPORTED_CONSTRUCT: an interpolated string (JoinedStr, FormattedValue)
//   - SINK_ERROR: the destination writer failed
//   - INVALID_NODE: a tree shape no source text can produce
package unparse
