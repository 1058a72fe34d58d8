package relation

import (
	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/graph"
)

// ThreatsAndProtections emits, for every occupied square S, a threat edge
// from each enemy attacker of S followed by a protection edge from each
// friendly piece that attacks S. Empty squares are never targets.
//
// Within one target, edges follow the order the oracle reports attackers.
func ThreatsAndProtections(snap *board.Snapshot) []graph.Edge {
	edges := []graph.Edge{}
	for _, sq := range snap.Occupied() {
		p, _ := snap.PieceAt(sq)
		for _, from := range snap.AttackersOf(sq, p.Color.Other()) {
			edges = append(edges, graph.Edge{Type: graph.EdgeThreat, Source: from, Target: sq})
		}
		for _, from := range snap.AttackersOf(sq, p.Color) {
			edges = append(edges, graph.Edge{Type: graph.EdgeProtection, Source: from, Target: sq})
		}
	}
	return edges
}
