package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyunparse/pkg/io"
	"github.com/matzehuels/pyunparse/pkg/render/treeviz"
)

// formatJSON selects canonical re-encoding instead of a diagram.
const formatJSON = "json"

// treeCommand creates the tree command, which draws the input tree instead of
// rendering it.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		output   string
		format   string
		maxDepth int
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "tree [tree.json|-]",
		Short: "Draw a JSON syntax tree as a diagram",
		Long: `Draw a JSON syntax tree as a node-link diagram.

Each node shows its kind and identifying values (names, operators, constants);
edges are labelled with the field they come from. DOT output needs no external
tools. SVG uses the bundled Graphviz. PNG and PDF additionally require
rsvg-convert from librsvg.

The json format re-encodes the document in canonical form instead, which
resolves legacy Index and ExtSlice nodes and drops position attributes.`,
		Example: `  pyunparse tree tree.json -f dot | dot -Tpng > tree.png
  pyunparse tree tree.json -f svg -o tree.svg --max-depth 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == formatJSON {
				return runNormalize(cmd, args[0], output)
			}
			if err := treeviz.ValidateFormat(format); err != nil {
				return err
			}
			return c.runTree(cmd, args[0], output, format, maxDepth, detailed, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", treeviz.FormatDOT, "output format: dot, svg, png, pdf, json")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "elide nodes deeper than this (0 = no limit)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show every scalar field in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runTree(cmd *cobra.Command, input, output, format string, maxDepth int, detailed, noCache bool) error {
	ctx := cmd.Context()
	tree, err := io.ImportTree(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := c.renderOptions()
	opts.Tree = tree
	opts.Format = format
	opts.MaxDepth = maxDepth
	opts.Detailed = detailed

	var spin *spinner
	if format != treeviz.FormatDOT {
		spin = newSpinner(ctx, fmt.Sprintf("Drawing %s...", format))
		spin.Start()
	}
	data, cached, err := runner.VisualizeWithCacheInfo(ctx, opts)
	if spin != nil {
		if err != nil {
			spin.StopWithError("Drawing failed")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := io.ExportFile(data, output); err != nil {
		return err
	}
	printSuccess("Drew %s", displayName(input))
	printFile(output)
	printStats(0, len(data), cached)
	if maxDepth > 0 {
		printDetail("Truncated below depth %d", maxDepth)
	}
	return nil
}

// runNormalize re-encodes the input tree as canonical JSON.
func runNormalize(cmd *cobra.Command, input, output string) error {
	tree, err := io.ImportTree(input)
	if err != nil {
		return err
	}
	if output == "" {
		return io.WriteTree(tree, cmd.OutOrStdout())
	}
	if err := io.ExportTree(tree, output); err != nil {
		return err
	}
	printSuccess("Normalized %s", displayName(input))
	printFile(output)
	return nil
}
