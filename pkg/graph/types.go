package graph

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/boardgraph/pkg/board"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// EdgeType names the relation an edge expresses.
type EdgeType string

// Edge types produced by the relation builders.
const (
	EdgeThreat            EdgeType = "threat"
	EdgeProtection        EdgeType = "protection"
	EdgeAdjacency         EdgeType = "adjacency"
	EdgeKingCanMove       EdgeType = "king_can_move"
	EdgeKingBlockedAlly   EdgeType = "king_blocked_ally"
	EdgeKingBlockedThreat EdgeType = "king_blocked_threat"
)

// EdgeTypes lists every edge type in display order.
var EdgeTypes = []EdgeType{
	EdgeThreat, EdgeProtection, EdgeAdjacency,
	EdgeKingCanMove, EdgeKingBlockedAlly, EdgeKingBlockedThreat,
}

// Phantom is the sentinel piece_type and color of a phantom node on the wire.
const Phantom = "phantom"

// =============================================================================
// Node
// =============================================================================

// NodeKind distinguishes square occupants from phantom destinations.
type NodeKind int

const (
	// NodeKindPiece is an occupied square; Node.Piece is set.
	NodeKindPiece NodeKind = iota
	// NodeKindPhantom is an empty square the king can move to.
	NodeKindPhantom
)

// Node is one renderable square entity.
type Node struct {
	Square board.Square
	Kind   NodeKind
	Piece  board.Piece // meaningful only for NodeKindPiece
}

// PieceNode returns the node for a piece standing on sq.
func PieceNode(sq board.Square, p board.Piece) Node {
	return Node{Square: sq, Kind: NodeKindPiece, Piece: p}
}

// PhantomNode returns the node for an empty destination square.
func PhantomNode(sq board.Square) Node {
	return Node{Square: sq, Kind: NodeKindPhantom}
}

// IsPhantom reports whether the node stands for an empty square.
func (n Node) IsPhantom() bool { return n.Kind == NodeKindPhantom }

type wireNode struct {
	Square    string `json:"square"`
	PieceType string `json:"piece_type"`
	Color     string `json:"color"`
}

// MarshalJSON encodes the node in the wire format.
func (n Node) MarshalJSON() ([]byte, error) {
	w := wireNode{Square: n.Square.String(), PieceType: Phantom, Color: Phantom}
	if n.Kind == NodeKindPiece {
		w.PieceType = n.Piece.Symbol()
		w.Color = n.Piece.Color.String()
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire format.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	sq, err := board.ParseSquare(w.Square)
	if err != nil {
		return err
	}
	if w.PieceType == Phantom {
		*n = PhantomNode(sq)
		return nil
	}
	p, err := parsePiece(w.PieceType, w.Color)
	if err != nil {
		return fmt.Errorf("node %s: %w", w.Square, err)
	}
	*n = PieceNode(sq, p)
	return nil
}

func parsePiece(symbol, color string) (board.Piece, error) {
	if len(symbol) != 1 {
		return board.Piece{}, fmt.Errorf("invalid piece_type %q", symbol)
	}
	var t board.PieceType
	switch strings.ToLower(symbol) {
	case "k":
		t = board.King
	case "q":
		t = board.Queen
	case "r":
		t = board.Rook
	case "b":
		t = board.Bishop
	case "n":
		t = board.Knight
	case "p":
		t = board.Pawn
	default:
		return board.Piece{}, fmt.Errorf("invalid piece_type %q", symbol)
	}
	switch color {
	case "white":
		return board.Piece{Type: t, Color: board.White}, nil
	case "black":
		return board.Piece{Type: t, Color: board.Black}, nil
	}
	return board.Piece{}, fmt.Errorf("invalid color %q", color)
}

// =============================================================================
// Edge
// =============================================================================

// Edge is a directed, typed relation between two squares.
type Edge struct {
	Type   EdgeType
	Source board.Square
	Target board.Square
}

type wireEdge struct {
	Type   EdgeType `json:"type"`
	Source string   `json:"source"`
	Target string   `json:"target"`
}

// String returns "type:source->target".
func (e Edge) String() string {
	return fmt.Sprintf("%s:%s->%s", e.Type, e.Source, e.Target)
}

// MarshalJSON encodes the edge in the wire format.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEdge{Type: e.Type, Source: e.Source.String(), Target: e.Target.String()})
}

// UnmarshalJSON decodes the wire format.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var w wireEdge
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	src, err := board.ParseSquare(w.Source)
	if err != nil {
		return err
	}
	dst, err := board.ParseSquare(w.Target)
	if err != nil {
		return err
	}
	*e = Edge{Type: w.Type, Source: src, Target: dst}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result is the uniform {nodes, edges} output of every relation builder.
// Node order follows the canonical square order with phantoms appended;
// edge order is the builder's generation order.
type Result struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NewResult returns a Result whose slices are non-nil, so it encodes as
// empty JSON arrays rather than null.
func NewResult(nodes []Node, edges []Edge) Result {
	if nodes == nil {
		nodes = []Node{}
	}
	if edges == nil {
		edges = []Edge{}
	}
	return Result{Nodes: nodes, Edges: edges}
}

// CountByType tallies edges per type.
func (r Result) CountByType() map[EdgeType]int {
	counts := make(map[EdgeType]int)
	for _, e := range r.Edges {
		counts[e.Type]++
	}
	return counts
}

// PhantomCount returns the number of phantom nodes.
func (r Result) PhantomCount() int {
	n := 0
	for _, node := range r.Nodes {
		if node.IsPhantom() {
			n++
		}
	}
	return n
}
