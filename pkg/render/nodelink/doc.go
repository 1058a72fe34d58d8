// Package nodelink renders assembled DAGs as node-link diagrams with
// Graphviz.
//
// # Usage
//
// Convert a DAG to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(res.Graph(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [DOT] and [SVG] wrap the two steps as renderers for the pipeline.
//
// # Options
//
//   - Detailed: node labels include in/out degree and metadata
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
