package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/pyunparse/pkg/ast"
	"github.com/matzehuels/pyunparse/pkg/errors"
)

// WriteSource writes rendered source to w, ending it with exactly one newline.
// Empty source writes nothing.
func WriteSource(w io.Writer, src string) error {
	if src == "" {
		return nil
	}
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	if _, err := io.WriteString(w, src); err != nil {
		return fmt.Errorf("write source: %w", err)
	}
	return nil
}

// ExportSource writes rendered source to a file at path.
func ExportSource(src, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := WriteSource(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTree encodes n as indented JSON. The output can be re-imported with
// [ReadTree].
func WriteTree(n ast.Node, w io.Writer) error {
	return ast.Encode(w, n)
}

// ExportTree writes n as JSON to a file at path.
func ExportTree(n ast.Node, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := WriteTree(n, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportFile writes data, such as a rendered diagram, to a file at path.
func ExportFile(data []byte, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func create(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return f, nil
}
