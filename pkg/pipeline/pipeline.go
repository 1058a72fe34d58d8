// Package pipeline runs the boardgraph request pipeline.
//
// It is the single place where the CLI and the HTTP server turn user input
// into results, so both get the same validation, caching and logging.
//
// # Operations
//
//   - [Runner.GetNodesAndEdges]: parse a position and build one relation
//     graph (adjacency, attack_defense, king_box or none)
//   - [Runner.KingBoxes]: the raw per-color king box cells
//   - [Runner.GetAssembledDAG]: greedily assemble an acyclic graph from an
//     edge list and render it
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.GetNodesAndEdges(ctx, fen, "attack_defense")
//	if err != nil {
//	    return err
//	}
//
//	out, err := runner.GetAssembledDAG(ctx, edges, pipeline.DAGOptions{})
//	fmt.Println(out.ASCIIArt)
package pipeline

import (
	"time"

	"github.com/matzehuels/boardgraph/pkg/cache"
	"github.com/matzehuels/boardgraph/pkg/dag/acyclic"
)

// DAGOptions tune one assembly request.
type DAGOptions struct {
	// ReversePrefilter rejects an edge whose reverse was already kept
	// before running cycle detection.
	ReversePrefilter bool `json:"reverse_prefilter,omitempty"`

	// Reduce renders the transitive reduction of the assembled graph.
	// The reported kept and dropped edges are unaffected.
	Reduce bool `json:"reduce,omitempty"`

	// Refresh bypasses the cache lookup. The fresh result is still stored.
	Refresh bool `json:"-"`
}

// KeyOpts returns the cache key components for o rendered by renderer.
func (o DAGOptions) KeyOpts(renderer string) cache.DAGKeyOpts {
	return cache.DAGKeyOpts{
		Renderer:         renderer,
		ReversePrefilter: o.ReversePrefilter,
		Reduce:           o.Reduce,
	}
}

func (o DAGOptions) assembleOptions() []acyclic.Option {
	var opts []acyclic.Option
	if o.ReversePrefilter {
		opts = append(opts, acyclic.WithReversePrefilter())
	}
	return opts
}

// DAGResult is the outcome of GetAssembledDAG.
type DAGResult struct {
	// ASCIIArt is the renderer output, verbatim.
	ASCIIArt string `json:"ascii_art"`

	// Dropped lists the input edges that were not kept, in input order.
	Dropped []acyclic.Dropped `json:"dropped"`

	// Kept lists the accepted edges in input order.
	Kept []acyclic.Edge `json:"kept"`

	Stats     Stats     `json:"-"`
	CacheInfo CacheInfo `json:"-"`
}

// Stats reports timings and sizes of one pipeline call.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	GraphHit bool
	DAGHit   bool
}
