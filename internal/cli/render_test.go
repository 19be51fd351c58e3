package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/matzehuels/pyunparse/pkg/errors"
	"github.com/matzehuels/pyunparse/pkg/io"
)

func TestDescribeRenderError(t *testing.T) {
	plain := stderrors.New("disk full")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"unsupported",
			errors.New(errors.ErrCodeUnsupported, "JoinedStr is not supported"),
			"JoinedStr is not supported (the tree uses a construct this renderer does not support)",
		},
		{
			"encoding",
			fmt.Errorf("render: %w", errors.New(errors.ErrCodeEncoding, "invalid UTF-8 in string")),
			"invalid UTF-8 in string (a string constant is not valid UTF-8)",
		},
		{
			"invalid node",
			errors.New(errors.ErrCodeInvalidNode, "empty block"),
			"invalid tree: empty block",
		},
		{"passthrough", plain, "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeRenderError(tt.err)
			if got.Error() != tt.want {
				t.Errorf("describeRenderError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeRenderErrorKeepsOtherCodes(t *testing.T) {
	err := errors.New(errors.ErrCodeInvalidFormat, "bad json")
	if got := describeRenderError(err); got != error(err) {
		t.Errorf("describeRenderError() = %v, want the original error", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{io.StdinPath, "stdin"},
		{"tree.json", "tree.json"},
		{" dir/tree.json ", "dir/tree.json"},
	}

	for _, tt := range tests {
		if got := displayName(tt.input); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
