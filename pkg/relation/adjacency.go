package relation

import (
	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/graph"
)

// Adjacency links every occupied square to each occupied neighbor among
// its eight surrounding squares. Both directions are emitted, so the edge
// set is symmetric.
func Adjacency(snap *board.Snapshot) []graph.Edge {
	edges := []graph.Edge{}
	for _, sq := range snap.Occupied() {
		for dr := -1; dr <= 1; dr++ {
			for df := -1; df <= 1; df++ {
				if df == 0 && dr == 0 {
					continue
				}
				n, ok := sq.Offset(df, dr)
				if !ok {
					continue
				}
				if _, occupied := snap.PieceAt(n); occupied {
					edges = append(edges, graph.Edge{Type: graph.EdgeAdjacency, Source: sq, Target: n})
				}
			}
		}
	}
	return edges
}
