// Package acyclic turns an ordered list of directed edges into a cycle-free
// subgraph by greedy insertion.
//
// Edges are considered strictly in input order. Each edge is added to a
// working [dag.DAG]; if the graph then contains a cycle, the edge is removed
// and never reconsidered. Earlier edges therefore always win: of two
// mutually exclusive edges, the one listed first is kept.
//
//	res, err := acyclic.Assemble([]acyclic.Edge{
//	    {Source: "a", Target: "b"},
//	    {Source: "b", Target: "a"}, // dropped, closes a->b->a
//	})
//	fmt.Println(res.Lines()) // [a->b]
//
// Every rejected edge is reported by [Result.Dropped] with a [Reason].
package acyclic
