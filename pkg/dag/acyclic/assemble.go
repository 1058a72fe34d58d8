package acyclic

import (
	"slices"

	"github.com/matzehuels/boardgraph/pkg/dag"
	"github.com/matzehuels/boardgraph/pkg/errors"
)

// Edge is one input edge. Endpoints are opaque non-empty labels.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// String returns "source->target".
func (e Edge) String() string { return e.Source + "->" + e.Target }

// Reason explains why an edge was not kept.
type Reason string

const (
	// ReasonCycle marks an edge that closed a directed cycle.
	ReasonCycle Reason = "cycle"
	// ReasonReverse marks an edge whose exact reverse was already kept.
	// Only reported with WithReversePrefilter.
	ReasonReverse Reason = "reverse"
	// ReasonDuplicate marks a repeat of an already kept edge.
	ReasonDuplicate Reason = "duplicate"
)

// Dropped is a rejected input edge.
type Dropped struct {
	Edge   Edge   `json:"edge"`
	Index  int    `json:"index"` // position in the input slice
	Reason Reason `json:"reason"`
}

// Option configures Assemble.
type Option func(*options)

type options struct {
	reversePrefilter bool
}

// WithReversePrefilter rejects an edge whose exact reverse was already kept
// without running cycle detection. The outcome is identical, as such an
// edge always closes a 2-cycle; only the reported reason differs.
func WithReversePrefilter() Option {
	return func(o *options) { o.reversePrefilter = true }
}

// Result is the outcome of one assembly.
type Result struct {
	graph   *dag.DAG
	kept    []Edge
	dropped []Dropped
}

// Edges returns the kept edges in input order.
func (r *Result) Edges() []Edge { return slices.Clone(r.kept) }

// Dropped returns the rejected edges in input order.
func (r *Result) Dropped() []Dropped { return slices.Clone(r.dropped) }

// Nodes returns every endpoint seen, in first-seen order. Endpoints of
// rejected edges are included.
func (r *Result) Nodes() []string { return r.graph.NodeIDs() }

// Graph returns the working graph. It is acyclic.
func (r *Result) Graph() *dag.DAG { return r.graph }

// Lines returns the kept edges formatted as "source->target".
func (r *Result) Lines() []string {
	lines := make([]string, len(r.kept))
	for i, e := range r.kept {
		lines[i] = e.String()
	}
	return lines
}

// Validate checks that every edge has a usable source and target. The
// error carries code MALFORMED_EDGE_INPUT and names the first bad edge.
func Validate(edges []Edge) error {
	if err := errors.ValidateEdgeCount(len(edges)); err != nil {
		return err
	}
	for i, e := range edges {
		if err := errors.ValidateEdgeEndpoint("source", e.Source, i); err != nil {
			return err
		}
		if err := errors.ValidateEdgeEndpoint("target", e.Target, i); err != nil {
			return err
		}
	}
	return nil
}

// Assemble greedily builds an acyclic graph from edges. The whole input is
// validated before the graph is touched, so a malformed edge yields an
// error and no partial result.
//
// Each accepted edge costs one cycle check, O(V+E), for O(E·(V+E)) overall.
func Assemble(edges []Edge, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(edges); err != nil {
		return nil, err
	}

	res := &Result{graph: dag.New(), kept: []Edge{}, dropped: []Dropped{}}
	g := res.graph
	for i, e := range edges {
		// Endpoints join the node set even when the edge is later rejected.
		if _, err := g.EnsureNode(e.Source); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %q", e.Source)
		}
		if _, err := g.EnsureNode(e.Target); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %q", e.Target)
		}

		if g.HasEdge(e.Source, e.Target) {
			res.drop(e, i, ReasonDuplicate)
			continue
		}
		if o.reversePrefilter && e.Source != e.Target && g.HasEdge(e.Target, e.Source) {
			res.drop(e, i, ReasonReverse)
			continue
		}

		if err := g.AddEdge(dag.Edge{From: e.Source, To: e.Target}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add edge %s", e)
		}
		if g.HasCycle() {
			g.RemoveEdge(e.Source, e.Target)
			res.drop(e, i, ReasonCycle)
			continue
		}
		res.kept = append(res.kept, e)
	}
	return res, nil
}

func (r *Result) drop(e Edge, i int, reason Reason) {
	r.dropped = append(r.dropped, Dropped{Edge: e, Index: i, Reason: reason})
}
