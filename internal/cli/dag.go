package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boardgraph/pkg/dag/acyclic"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/pipeline"
	"github.com/matzehuels/boardgraph/pkg/render"
)

type dagOpts struct {
	renderer         string
	reversePrefilter bool
	reduce           bool
	showDropped      bool
	refresh          bool
}

// dagCommand creates the dag command.
func (c *CLI) dagCommand() *cobra.Command {
	var opts dagOpts

	cmd := &cobra.Command{
		Use:   "dag [edges.json]",
		Short: "Assemble an edge list into an acyclic graph and render it",
		Long: `Read edges and keep each one unless it would close a cycle, then render the
kept edges. Input is either {"edges": [...]} or a bare list of
{"source": ..., "target": ...} objects, read from the file or from stdin.

The output of "boardgraph graph" is accepted too: its edges are used as
source->target pairs of square names.`,
		Example: `  boardgraph graph "$FEN" | boardgraph dag --renderer plain
  boardgraph dag edges.json --renderer svg > graph.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runDAG(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.renderer, "renderer", "r", "", "renderer: diagon, dot, svg or plain (default from config)")
	cmd.Flags().BoolVar(&opts.reversePrefilter, "reverse-prefilter", false, "drop reversed pairs before cycle detection")
	cmd.Flags().BoolVar(&opts.reduce, "reduce", false, "render the transitive reduction")
	cmd.Flags().BoolVar(&opts.showDropped, "show-dropped", false, "list dropped edges on stderr")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached renders")

	return cmd
}

func (c *CLI) runDAG(cmd *cobra.Command, path string, opts dagOpts) error {
	ctx := cmd.Context()
	if opts.renderer != "" {
		kind, err := render.ParseKind(opts.renderer)
		if err != nil {
			return err
		}
		c.Config.Renderer.Kind = string(kind)
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	edges, err := decodeEdges(data)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	stderr := cmd.ErrOrStderr()
	spin := newSpinner(ctx, stderr, fmt.Sprintf("Rendering %d edges with %s", len(edges), runner.Renderer.Name()))
	spin.Start()
	out, err := runner.GetAssembledDAG(ctx, edges, pipeline.DAGOptions{
		ReversePrefilter: opts.reversePrefilter,
		Reduce:           opts.reduce,
		Refresh:          opts.refresh,
	})
	spin.Stop()
	if err != nil {
		if stderrText := errors.Stderr(err); stderrText != "" {
			printError(stderr, "%s", strings.TrimSpace(stderrText))
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out.ASCIIArt)
	if !strings.HasSuffix(out.ASCIIArt, "\n") && out.ASCIIArt != "" {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	loggerFromContext(ctx).Debug("assembled", "kept", len(out.Kept), "dropped", len(out.Dropped), "cached", out.CacheInfo.DAGHit)
	if opts.showDropped {
		for _, d := range out.Dropped {
			printDetail(stderr, "dropped #%d %s (%s)", d.Index, d.Edge, d.Reason)
		}
	}
	if n := len(out.Dropped); n > 0 {
		printInfo(stderr, "%d of %d edges dropped", n, len(edges))
	}
	return nil
}

// decodeEdges accepts {"edges": [...]} or a bare array.
func decodeEdges(data []byte) ([]acyclic.Edge, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var edges []acyclic.Edge
		if err := json.Unmarshal(data, &edges); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode edges")
		}
		return edges, nil
	}

	var doc struct {
		Edges []acyclic.Edge `json:"edges"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode edges")
	}
	if doc.Edges == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input has no \"edges\" list")
	}
	return doc.Edges, nil
}
