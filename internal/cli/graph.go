package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boardgraph/pkg/graph"
	"github.com/matzehuels/boardgraph/pkg/relation"
)

type graphOpts struct {
	mode    string
	output  string
	summary bool
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <fen>",
		Short: "Build the relation graph of a position",
		Long: `Build the relation graph of a position as JSON.

Modes:
  attack_defense  threat and protection edges between pieces (default)
  adjacency       edges between pieces on neighboring squares
  king_box        each king's 3x3 neighborhood, with phantom empty squares
  none            nodes only`,
		Example: `  boardgraph graph "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
  boardgraph graph --mode king_box -o box.json "4k3/8/8/8/4K3/8/8/8 w - - 0 1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(relation.ModeAttackDefense), "relation mode: attack_defense, adjacency, king_box or none")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.summary, "summary", "s", false, "print edge counts instead of JSON")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		modes := make([]string, len(relation.Modes))
		for i, m := range relation.Modes {
			modes[i] = string(m)
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, fen string, opts graphOpts) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	res, hit, err := runner.GetNodesAndEdgesWithCacheInfo(ctx, fen, opts.mode)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %s graph", opts.mode))

	out := cmd.OutOrStdout()
	switch {
	case opts.summary:
		printStats(out, len(res.Nodes), len(res.Edges), hit)
		printEdgeCounts(out, res)
	case opts.output != "":
		if err := graph.WriteFile(res, opts.output); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printSuccess(cmd.ErrOrStderr(), "Wrote %d nodes, %d edges", len(res.Nodes), len(res.Edges))
		printFile(cmd.ErrOrStderr(), opts.output)
	default:
		return graph.Write(res, out)
	}
	return nil
}

// readInput returns the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
