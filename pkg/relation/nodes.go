package relation

import (
	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/graph"
)

// Nodes returns one piece node per occupied square in canonical square
// order. An empty board yields an empty, non-nil slice.
func Nodes(snap *board.Snapshot) []graph.Node {
	nodes := make([]graph.Node, 0, snap.PieceCount())
	for _, sq := range snap.Occupied() {
		p, _ := snap.PieceAt(sq)
		nodes = append(nodes, graph.PieceNode(sq, p))
	}
	return nodes
}
