package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyunparse/pkg/errors"
	"github.com/matzehuels/pyunparse/pkg/io"
	"github.com/matzehuels/pyunparse/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	output  string // output file; stdout when empty
	indent  string // indentation unit, overrides config
	tabs    bool   // indent with tabs
	noRaw   bool   // escape backslashes instead of emitting raw literals
	refresh bool   // ignore cached output
	noCache bool   // disable caching entirely
}

// apply overrides config-derived options with explicitly set flags.
func (f renderFlags) apply(opts *pipeline.Options) {
	if f.indent != "" {
		opts.Indent = f.indent
	}
	if f.tabs {
		opts.Indent = "\t"
	}
	if f.noRaw {
		opts.EscapeOnly = true
	}
	opts.Refresh = f.refresh
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [tree.json|-]",
		Short: "Render a JSON syntax tree to Python source",
		Long: `Render a JSON syntax tree to Python source.

The input is a "_type"-tagged JSON document as produced by dumping Python's
ast module: a Module, a single statement, expression or pattern, or a bare
array of statements. Use "-" to read from standard input.

The rendered source is written to stdout unless --output is given. Results
are cached by tree content, so rendering the same tree again is instant.`,
		Example: `  python -c 'import ast, json; ...' | pyunparse render -
  pyunparse render tree.json -o out.py --indent "  "`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&flags.indent, "indent", "", "indentation unit (default from config: 4 spaces)")
	cmd.Flags().BoolVar(&flags.tabs, "tabs", false, "indent with tabs")
	cmd.Flags().BoolVar(&flags.noRaw, "no-raw", false, "never emit raw string literals")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.MarkFlagsMutuallyExclusive("indent", "tabs")

	return cmd
}

// runRender loads the tree, renders it and writes the result.
func (c *CLI) runRender(cmd *cobra.Command, input string, flags renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	tree, err := io.ImportTree(input)
	if err != nil {
		return err
	}

	opts := c.renderOptions()
	flags.apply(&opts)
	opts.Tree = tree

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return describeRenderError(err)
	}
	prog.done("rendered source", "statements", result.Stats.Statements, "hash", result.TreeHash[:12])

	if flags.output == "" {
		return io.WriteSource(cmd.OutOrStdout(), result.Source)
	}
	if err := io.ExportSource(result.Source, flags.output); err != nil {
		return err
	}
	printSuccess("Rendered %s", displayName(input))
	printFile(flags.output)
	printStats(result.Stats.Statements, result.Stats.Bytes, result.CacheInfo.RenderHit)
	return nil
}

// describeRenderError turns renderer failures into a one-line message with a
// hint for the common cases.
func describeRenderError(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeUnsupported:
		return fmt.Errorf("%s (the tree uses a construct this renderer does not support)", errors.UserMessage(err))
	case errors.ErrCodeEncoding:
		return fmt.Errorf("%s (a string constant is not valid UTF-8)", errors.UserMessage(err))
	case errors.ErrCodeInvalidNode:
		return fmt.Errorf("invalid tree: %s", errors.UserMessage(err))
	}
	return err
}

// displayName names an input in status output.
func displayName(input string) string {
	if input == io.StdinPath {
		return "stdin"
	}
	return strings.TrimSpace(input)
}
