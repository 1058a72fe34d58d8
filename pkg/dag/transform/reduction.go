package transform

import "github.com/matzehuels/boardgraph/pkg/dag"

// TransitiveReduction removes every edge (u, v) for which another path
// from u to v exists through at least one intermediate node. If A→B, B→C
// and A→C all exist, A→C is removed. It returns the removed edges in
// insertion order.
//
// The graph must be acyclic; on a cyclic graph the result is unspecified.
// Time complexity is O(V·E) for reachability plus O(E·deg) for the sweep,
// space is O(V²).
//
// Edge metadata is preserved for all non-redundant edges.
func TransitiveReduction(g *dag.DAG) []dag.Edge {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	nodeIndex := dag.NodePosMap(nodes)
	adjacency := make([][]int, len(nodes))
	for _, e := range g.Edges() {
		adjacency[nodeIndex[e.From]] = append(adjacency[nodeIndex[e.From]], nodeIndex[e.To])
	}

	reachability := computeReachability(adjacency)

	var removed []dag.Edge
	for _, e := range g.Edges() {
		src, dst := nodeIndex[e.From], nodeIndex[e.To]
		for _, intermediate := range adjacency[src] {
			if intermediate != dst && reachability[intermediate][dst] {
				removed = append(removed, e)
				break
			}
		}
	}
	for _, e := range removed {
		g.RemoveEdge(e.From, e.To)
	}
	return removed
}

func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	var dfs func(source, current int)
	dfs = func(source, current int) {
		if reachable[source][current] {
			return
		}
		reachable[source][current] = true
		for _, next := range adjacency[current] {
			dfs(source, next)
		}
	}

	for i := range reachable {
		dfs(i, i)
	}
	return reachable
}
