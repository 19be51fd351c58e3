// Package io reads syntax-tree documents and writes rendered source.
//
// # Overview
//
// Trees arrive as "_type"-tagged JSON, the format produced by common Python
// AST dumpers and written back by [ast.Encode]:
//
//	{"_type": "Module", "body": [
//	  {"_type": "Pass"}
//	]}
//
// # Import
//
// Use [ImportTree] to read a tree from a file path, or [ReadTree] to read from
// any io.Reader. The path "-" reads standard input:
//
//	tree, err := io.ImportTree("module.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Failures carry a structured code from [errors]: FILE_NOT_FOUND when the path
// does not exist and INVALID_FORMAT when the document is not a valid tree.
//
// # Export
//
// [WriteSource] and [ExportSource] write rendered text followed by a single
// newline. [WriteTree] and [ExportTree] write a tree back as JSON, which
// round-trips through [ReadTree].
//
// [ast.Encode]: github.com/matzehuels/pyunparse/pkg/ast.Encode
// [errors]: github.com/matzehuels/pyunparse/pkg/errors
package io
