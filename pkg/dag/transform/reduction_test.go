package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boardgraph/pkg/dag"
)

func build(t *testing.T, edges ...[2]string) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, e := range edges {
		g.EnsureNode(e[0])
		g.EnsureNode(e[1])
		if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func pairs(edges []dag.Edge) [][2]string {
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, [2]string{e.From, e.To})
	}
	return out
}

func TestTransitiveReduction(t *testing.T) {
	tests := []struct {
		name        string
		edges       [][2]string
		wantKept    [][2]string
		wantRemoved [][2]string
	}{
		{
			name:        "triangle shortcut",
			edges:       [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
			wantKept:    [][2]string{{"a", "b"}, {"b", "c"}},
			wantRemoved: [][2]string{{"a", "c"}},
		},
		{
			name:        "long shortcut",
			edges:       [][2]string{{"a", "d"}, {"a", "b"}, {"b", "c"}, {"c", "d"}},
			wantKept:    [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}},
			wantRemoved: [][2]string{{"a", "d"}},
		},
		{
			name:        "diamond keeps all",
			edges:       [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			wantKept:    [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			wantRemoved: [][2]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges...)
			removed := TransitiveReduction(g)
			if diff := cmp.Diff(tt.wantRemoved, pairs(removed)); diff != "" {
				t.Errorf("removed mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantKept, pairs(g.Edges())); diff != "" {
				t.Errorf("kept mismatch (-want +got):\n%s", diff)
			}
			if g.NodeCount() == 0 {
				t.Error("nodes should be preserved")
			}
		})
	}
}

func TestTransitiveReductionEmpty(t *testing.T) {
	if removed := TransitiveReduction(dag.New()); removed != nil {
		t.Errorf("TransitiveReduction(empty) = %v, want nil", removed)
	}
}
