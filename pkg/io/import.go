package io

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

// StdinPath names standard input in [ImportTree].
const StdinPath = "-"

// ReadTree decodes one JSON tree document from r.
//
// Decoding errors are wrapped as INVALID_FORMAT and keep the field path of the
// offending node, e.g. "body[2].value.left: missing required field".
// ReadTree does not close r.
func ReadTree(r io.Reader) (ast.Node, error) {
	n, err := ast.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read tree")
	}
	return n, nil
}

// ImportTree reads the JSON tree stored at path, or standard input when path
// is [StdinPath].
func ImportTree(path string) (ast.Node, error) {
	if path == StdinPath {
		return ReadTree(os.Stdin)
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadTree(f)
}
