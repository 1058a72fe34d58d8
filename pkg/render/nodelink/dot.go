package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/boardgraph/pkg/dag"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes degrees and metadata in node labels.
	// When false, only the node ID is shown.
	Detailed bool
}

// ToDOT converts a DAG to Graphviz DOT format. Nodes are listed in
// topological order (insertion order breaks ties, and is used as is if g
// has a cycle); edges keep insertion order.
//
// Isolated nodes (endpoints of rejected edges only) are drawn dashed.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range orderedNodes(g) {
		label := fmtLabel(g, *n, opts.Detailed)
		attrs := fmtAttrs(g, *n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func orderedNodes(g *dag.DAG) []*dag.Node {
	ids, err := g.TopologicalOrder()
	if err != nil {
		return g.Nodes()
	}
	nodes := make([]*dag.Node, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		nodes = append(nodes, n)
	}
	return nodes
}

func fmtLabel(g *dag.DAG, n dag.Node, detailed bool) string {
	if !detailed {
		return n.ID
	}

	parts := []string{fmt.Sprintf("in: %d out: %d", g.InDegree(n.ID), g.OutDegree(n.ID))}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}

	return n.ID + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(g *dag.DAG, n dag.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if g.InDegree(n.ID) == 0 && g.OutDegree(n.ID) == 0 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz in-process.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// DOT is a renderer that returns DOT source.
type DOT struct {
	Options Options
}

// Name returns "dot".
func (DOT) Name() string { return "dot" }

// Render returns the DOT source of g.
func (d DOT) Render(ctx context.Context, g *dag.DAG) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(ToDOT(g, d.Options)), nil
}

// SVG is a renderer that lays g out with Graphviz and returns SVG.
type SVG struct {
	Options Options
}

// Name returns "svg".
func (SVG) Name() string { return "svg" }

// Render returns g as an SVG document.
func (s SVG) Render(ctx context.Context, g *dag.DAG) ([]byte, error) {
	return RenderSVG(ctx, ToDOT(g, s.Options))
}
