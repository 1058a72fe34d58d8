package oracle

import "github.com/matzehuels/boardgraph/pkg/board"

type direction struct{ df, dr int }

var (
	orthogonal  = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal    = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = []direction{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingSteps = append(append([]direction{}, orthogonal...), diagonal...)
)

// AttackersOf implements [board.Rules]. The result is in ascending square
// order. Sliding attacks stop at the first occupied square; pinned pieces
// still attack.
func (p *Position) AttackersOf(sq board.Square, by board.Color) []board.Square {
	if !sq.Valid() {
		return nil
	}
	var found [64]bool

	leap := func(dirs []direction, t board.PieceType) {
		for _, d := range dirs {
			if from, ok := sq.Offset(d.df, d.dr); ok && p.is(from, t, by) {
				found[from] = true
			}
		}
	}
	slide := func(dirs []direction, a, b board.PieceType) {
		for _, d := range dirs {
			cur := sq
			for {
				next, ok := cur.Offset(d.df, d.dr)
				if !ok {
					break
				}
				if piece, occupied := p.PieceAt(next); occupied {
					if piece.Color == by && (piece.Type == a || piece.Type == b) {
						found[next] = true
					}
					break
				}
				cur = next
			}
		}
	}

	leap(knightJumps, board.Knight)
	leap(kingSteps, board.King)
	slide(orthogonal, board.Rook, board.Queen)
	slide(diagonal, board.Bishop, board.Queen)

	// A white pawn attacks diagonally upward, so it sits one rank below sq.
	pawnRank := -1
	if by == board.Black {
		pawnRank = 1
	}
	leap([]direction{{-1, pawnRank}, {1, pawnRank}}, board.Pawn)

	var out []board.Square
	for _, s := range board.Squares() {
		if found[s] {
			out = append(out, s)
		}
	}
	return out
}

// IsAttacked implements [board.Rules].
func (p *Position) IsAttacked(sq board.Square, by board.Color) bool {
	return len(p.AttackersOf(sq, by)) > 0
}

// InCheck reports whether the king of color c is attacked.
func (p *Position) InCheck(c board.Color) bool {
	for _, sq := range board.Squares() {
		if p.is(sq, board.King, c) {
			return p.IsAttacked(sq, c.Other())
		}
	}
	return false
}

func (p *Position) is(sq board.Square, t board.PieceType, c board.Color) bool {
	piece, ok := p.PieceAt(sq)
	return ok && piece.Type == t && piece.Color == c
}
