package dag_test

import (
	"fmt"

	"github.com/matzehuels/boardgraph/pkg/dag"
)

func ExampleDAG_basic() {
	// Protection chain: b2 defends c3, c3 defends d4
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "b2"})
	_ = g.AddNode(dag.Node{ID: "c3"})
	_ = g.AddNode(dag.Node{ID: "d4"})
	_ = g.AddEdge(dag.Edge{From: "b2", To: "c3"})
	_ = g.AddEdge(dag.Edge{From: "c3", To: "d4"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Cyclic:", g.HasCycle())
	// Output:
	// Nodes: 3
	// Edges: 2
	// Cyclic: false
}

func ExampleDAG_traversal() {
	g := dag.New()
	for _, id := range []string{"d1", "d2", "e2"} {
		_, _ = g.EnsureNode(id)
	}
	_ = g.AddEdge(dag.Edge{From: "d1", To: "d2"})
	_ = g.AddEdge(dag.Edge{From: "d1", To: "e2"})

	fmt.Println("Children of d1:", g.Children("d1"))
	fmt.Println("In-degree of e2:", g.InDegree("e2"))
	fmt.Println("Out-degree of d1:", g.OutDegree("d1"))
	// Output:
	// Children of d1: [d2 e2]
	// In-degree of e2: 1
	// Out-degree of d1: 2
}

func ExampleDAG_HasCycle() {
	// Mutual protection closes a 2-cycle; removing one direction fixes it.
	g := dag.New()
	_, _ = g.EnsureNode("e4")
	_, _ = g.EnsureNode("d5")
	_ = g.AddEdge(dag.Edge{From: "e4", To: "d5"})
	_ = g.AddEdge(dag.Edge{From: "d5", To: "e4"})
	fmt.Println("Cyclic:", g.HasCycle())

	g.RemoveEdge("d5", "e4")
	fmt.Println("Cyclic:", g.HasCycle())
	fmt.Println("Nodes:", g.NodeIDs())
	// Output:
	// Cyclic: true
	// Cyclic: false
	// Nodes: [e4 d5]
}
