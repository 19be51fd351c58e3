// Package pkg provides the core libraries for pyunparse.
//
// # Overview
//
// pyunparse turns Python abstract syntax trees back into source text. Trees
// arrive as "_type"-tagged JSON documents, the shape produced by walking
// Python's ast module, and leave as source that parses back to an
// equivalent tree. The pkg directory is organized into these areas:
//
//  1. [ast] - Typed syntax tree nodes and the JSON tree codec
//  2. [unparse] - The renderer (precedence, string quoting, statements, patterns)
//  3. [pipeline] - Orchestration (decode → hash → render, with caching)
//  4. [cache] - File, Redis and no-op stores for rendered output
//  5. [render/treeviz] - Debug drawings of trees as DOT, SVG, PNG or PDF
//  6. [config], [errors], [io], [observability], [buildinfo] - Supporting layers
//
// # Architecture
//
// The typical data flow through pyunparse:
//
//	JSON tree document
//	         ↓
//	    [io] / [ast] (decode into typed nodes)
//	         ↓
//	    [pipeline] (content hash + cache lookup)
//	         ↓
//	    [unparse] (render with fresh per-call state)
//	         ↓
//	    Python source text
//
// # Quick Start
//
// Render a tree read from disk:
//
//	import (
//	    "github.com/matzehuels/pyunparse/pkg/io"
//	    "github.com/matzehuels/pyunparse/pkg/unparse"
//	)
//
//	tree, err := io.ImportTree("module.json")
//	if err != nil {
//	    return err
//	}
//	src, err := unparse.New(unparse.WithIndent("\t")).Unparse(tree)
//
// Or go through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Source: data})
//	fmt.Print(result.Source)
//
// # Errors
//
// Every failure carries an [errors.Code]. Decoding problems are
// INVALID_FORMAT, malformed trees are INVALID_NODE, and constructs the
// renderer cannot express (f-strings, template strings) are
// UNSUPPORTED_CONSTRUCT.
package pkg
