package unparse

import (
	"io"
	"strings"

	"github.com/matzehuels/pyunparse/pkg/errors"
)

// sink is the append-only output of one render plus its indentation depth.
//
// The first write error is kept in err; every later write is dropped and the
// renderers stop descending once err is set.
type sink struct {
	w       io.Writer
	indent  string
	depth   int
	started bool
	written int64
	err     error
}

func newSink(w io.Writer, indent string) *sink {
	return &sink{w: w, indent: indent}
}

// write appends text verbatim.
func (s *sink) write(parts ...string) {
	for _, part := range parts {
		if s.err != nil {
			return
		}
		if part == "" {
			continue
		}
		n, err := io.WriteString(s.w, part)
		s.written += int64(n)
		if err != nil {
			s.err = errors.Wrap(errors.ErrCodeSink, err, "write output")
			return
		}
		s.started = true
	}
}

// fill starts a new line at the current depth. Nothing precedes the very
// first line, so output never begins with a newline.
func (s *sink) fill(text ...string) {
	if s.started {
		s.write("\n")
	}
	s.write(strings.Repeat(s.indent, s.depth))
	s.write(text...)
}

// block ends a header with ":" and renders body one level deeper.
func (s *sink) block(body func()) {
	s.blockWith("", body)
}

// blockWith is block with a trailing comment after the colon.
func (s *sink) blockWith(extra string, body func()) {
	s.write(":", extra)
	s.depth++
	body()
	s.depth--
}

// fail records err unless an earlier error is already set.
func (s *sink) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
