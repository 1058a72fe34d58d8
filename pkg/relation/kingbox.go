package relation

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/graph"
)

// Status classifies one cell of a king's safety box.
type Status string

const (
	StatusOpen            Status = "open"
	StatusBlockedByAlly   Status = "blocked-by-ally"
	StatusBlockedByThreat Status = "blocked-by-threat"
	StatusOffBoard        Status = "off-board"
)

// Offset is a (file, rank) displacement from the king.
type Offset struct {
	File, Rank int
}

// BoxOffsets lists the nine cells of the box: top row left to right, then
// the middle row, then the bottom row. Index 4 is the king's own square.
var BoxOffsets = [9]Offset{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// centerCell is the index of the king's own square in BoxOffsets.
const centerCell = 4

// Cell is one classified square of a king box.
type Cell struct {
	Offset   Offset
	Square   board.Square // NoSquare when off board
	OnBoard  bool
	Status   Status
	Piece    board.Piece
	Occupied bool
}

// IsCenter reports whether the cell is the king's own square.
func (c Cell) IsCenter() bool { return c.Offset == Offset{} }

type wireCell struct {
	Square    string `json:"square"`
	Status    Status `json:"status"`
	PieceType string `json:"piece_type,omitempty"`
	Color     string `json:"color,omitempty"`
}

// MarshalJSON encodes the cell as {"square","status","piece_type","color"}.
// Off-board cells are named after their offset, e.g. "off-board (-1,1)".
func (c Cell) MarshalJSON() ([]byte, error) {
	w := wireCell{Status: c.Status}
	if c.OnBoard {
		w.Square = c.Square.String()
	} else {
		w.Square = fmt.Sprintf("off-board (%d,%d)", c.Offset.File, c.Offset.Rank)
	}
	if c.Occupied {
		w.PieceType = c.Piece.Symbol()
		w.Color = c.Piece.Color.String()
	}
	return json.Marshal(w)
}

// KingBox is the classified 3x3 neighborhood of one king.
type KingBox struct {
	Color board.Color
	King  board.Square
	Cells [9]Cell
}

// MarshalJSON encodes the box as {"king_square","king_color","squares"}.
func (k KingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		KingSquare string  `json:"king_square"`
		KingColor  string  `json:"king_color"`
		Squares    [9]Cell `json:"squares"`
	}{k.King.String(), k.Color.String(), k.Cells})
}

// KingBoxOf classifies the nine cells around the king of color c. The
// second result is false when c has no king on the board.
func KingBoxOf(snap *board.Snapshot, c board.Color) (KingBox, bool) {
	king, ok := snap.KingSquare(c)
	if !ok {
		return KingBox{}, false
	}
	box := KingBox{Color: c, King: king}
	for i, off := range BoxOffsets {
		box.Cells[i] = classify(snap, c, king, off)
	}
	return box, true
}

func classify(snap *board.Snapshot, c board.Color, king board.Square, off Offset) Cell {
	sq, ok := king.Offset(off.File, off.Rank)
	cell := Cell{Offset: off, Square: sq, OnBoard: ok}
	if !ok {
		cell.Status = StatusOffBoard
		return cell
	}
	cell.Piece, cell.Occupied = snap.PieceAt(sq)

	switch {
	case sq == king:
		cell.Status = StatusOpen
		if snap.IsAttacked(sq, c.Other()) {
			cell.Status = StatusBlockedByThreat
		}
	case cell.Occupied && cell.Piece.Color == c:
		cell.Status = StatusBlockedByAlly
	case cell.Occupied:
		cell.Status = StatusBlockedByThreat
	case snap.IsLegalMove(king, sq):
		cell.Status = StatusOpen
	default:
		// Illegal for any reason: attacked, pinned geometry or otherwise.
		cell.Status = StatusBlockedByThreat
	}
	return cell
}

// KingBoxes returns the boxes of both kings, White first, omitting a
// color whose king is missing.
func KingBoxes(snap *board.Snapshot) []KingBox {
	boxes := []KingBox{}
	for _, c := range board.Colors {
		if box, ok := KingBoxOf(snap, c); ok {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// KingBoxGraph projects both king boxes into a graph. Nodes are every occupied
// square plus one phantom node per empty square a king may step to. Each
// on-board, non-center cell contributes exactly one edge from the king.
func KingBoxGraph(snap *board.Snapshot) graph.Result {
	nodes := Nodes(snap)
	edges := []graph.Edge{}
	seen := make(map[board.Square]bool)

	for _, box := range KingBoxes(snap) {
		for _, cell := range box.Cells {
			if !cell.OnBoard || cell.IsCenter() {
				continue
			}
			edges = append(edges, graph.Edge{Type: edgeType(cell.Status), Source: box.King, Target: cell.Square})
			if cell.Status == StatusOpen && !cell.Occupied && !seen[cell.Square] {
				seen[cell.Square] = true
				nodes = append(nodes, graph.PhantomNode(cell.Square))
			}
		}
	}
	return graph.NewResult(nodes, edges)
}

func edgeType(s Status) graph.EdgeType {
	switch s {
	case StatusOpen:
		return graph.EdgeKingCanMove
	case StatusBlockedByAlly:
		return graph.EdgeKingBlockedAlly
	default:
		return graph.EdgeKingBlockedThreat
	}
}
