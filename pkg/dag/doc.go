// Package dag provides a small string-keyed directed graph used as the
// working structure of the acyclic graph assembler.
//
// # Overview
//
// Nodes and edges keep their insertion order, so every traversal and
// every listing is deterministic for a given sequence of calls. The graph
// is an edge set: adding an existing edge fails with [ErrDuplicateEdge].
//
// # Basic Usage
//
//	g := dag.New()
//	g.EnsureNode("e1")
//	g.EnsureNode("e2")
//	g.AddEdge(dag.Edge{From: "e1", To: "e2"})
//	if g.HasCycle() {
//	    g.RemoveEdge("e1", "e2")
//	}
//
// # Cycle Detection
//
// [DAG.HasCycle] uses depth-first search with white/gray/black coloring.
// A gray child means a back edge, which closes a cycle. Self-loops are
// cycles. [DAG.TopologicalOrder] orders an acyclic graph for output,
// breaking ties by insertion order.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Each assembly builds its
// own graph, so no sharing is needed in practice.
//
// # Related Packages
//
// The [acyclic] subpackage implements greedy cycle-free assembly on top of
// this graph. The [transform] subpackage removes redundant edges before
// rendering.
//
// [acyclic]: github.com/matzehuels/boardgraph/pkg/dag/acyclic
// [transform]: github.com/matzehuels/boardgraph/pkg/dag/transform
package dag
