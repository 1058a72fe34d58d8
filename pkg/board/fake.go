package board

import "slices"

// Fake is a Rules implementation whose answers are set by hand.
// It is intended for tests of code that consumes Rules.
type Fake struct {
	pieces  map[Square]Piece
	attacks map[Square][]Square // target -> attacking squares
	legal   map[[2]Square]bool
	fen     string
}

// NewFake returns an empty Fake board.
func NewFake() *Fake {
	return &Fake{
		pieces:  make(map[Square]Piece),
		attacks: make(map[Square][]Square),
		legal:   make(map[[2]Square]bool),
		fen:     "fake",
	}
}

// Put places p on sq and returns f for chaining.
func (f *Fake) Put(sq Square, p Piece) *Fake {
	f.pieces[sq] = p
	return f
}

// Attack records that the piece on from attacks to.
func (f *Fake) Attack(from, to Square) *Fake {
	if !slices.Contains(f.attacks[to], from) {
		f.attacks[to] = append(f.attacks[to], from)
	}
	return f
}

// Allow marks the move from->to as legal.
func (f *Fake) Allow(from, to Square) *Fake {
	f.legal[[2]Square{from, to}] = true
	return f
}

// PieceAt implements Rules.
func (f *Fake) PieceAt(sq Square) (Piece, bool) {
	p, ok := f.pieces[sq]
	return p, ok
}

// AttackersOf implements Rules. Only recorded attackers whose occupant has
// color by are returned, in ascending square order.
func (f *Fake) AttackersOf(sq Square, by Color) []Square {
	var out []Square
	for _, from := range f.attacks[sq] {
		if p, ok := f.pieces[from]; ok && p.Color == by {
			out = append(out, from)
		}
	}
	slices.Sort(out)
	return out
}

// IsAttacked implements Rules.
func (f *Fake) IsAttacked(sq Square, by Color) bool {
	return len(f.AttackersOf(sq, by)) > 0
}

// IsLegalMove implements Rules.
func (f *Fake) IsLegalMove(from, to Square) bool {
	return f.legal[[2]Square{from, to}]
}

// FEN implements Rules.
func (f *Fake) FEN() string { return f.fen }

var _ Rules = (*Fake)(nil)
