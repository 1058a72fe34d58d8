// Package render turns an assembled acyclic graph into text or images.
//
// # Overview
//
// Every backend implements [Renderer]. The pipeline hands it the working
// graph produced by the assembler; the renderer returns opaque bytes that
// are passed to the caller verbatim.
//
// Available backends:
//
//   - [KindDiagon]: ASCII art via the external `diagon GraphDAG` tool
//     (see the [diagon] subpackage)
//   - [KindDOT]: Graphviz DOT source (see [nodelink])
//   - [KindSVG]: SVG rendered in-process by Graphviz (see [nodelink])
//   - [KindPlain]: the "source->target" lines themselves
//
// # Fallback
//
// [WithFallback] wraps a renderer so that, when its tool is not installed,
// the plain edge list is returned instead of an error. Failures of a tool
// that did run are never masked.
//
//	r, err := render.New(render.Options{Kind: render.KindDiagon, Fallback: true})
//	out, err := r.Render(ctx, res.Graph())
//
// [diagon]: github.com/matzehuels/boardgraph/pkg/render/diagon
// [nodelink]: github.com/matzehuels/boardgraph/pkg/render/nodelink
package render
