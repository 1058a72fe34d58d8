package board

// Rules is the query surface of a chess rules oracle for one parsed
// position. Implementations must be safe for concurrent read-only use;
// a Rules value is never mutated after construction.
type Rules interface {
	// PieceAt returns the occupant of sq, if any.
	PieceAt(sq Square) (Piece, bool)
	// AttackersOf returns the squares of all pieces of color by that attack sq.
	// Pinned pieces count as attackers.
	AttackersOf(sq Square, by Color) []Square
	// IsAttacked reports whether any piece of color by attacks sq.
	IsAttacked(sq Square, by Color) bool
	// IsLegalMove reports whether the piece on from may legally move to to.
	IsLegalMove(from, to Square) bool
	// FEN returns the position in Forsyth-Edwards Notation.
	FEN() string
}

// Parser turns a position string into Rules.
type Parser interface {
	Parse(fen string) (Rules, error)
}

// Snapshot is an immutable view of one position: the 64 squares plus the
// oracle queries needed by the relation builders.
//
// The zero value is an empty board with no oracle and must not be queried
// for attacks or legality. Use NewSnapshot.
type Snapshot struct {
	pieces   [64]Piece
	occupied [64]bool
	kings    [2]Square
	rules    Rules
}

// NewSnapshot reads all 64 squares from r once and keeps r for attack and
// legality queries.
func NewSnapshot(r Rules) *Snapshot {
	s := &Snapshot{rules: r, kings: [2]Square{NoSquare, NoSquare}}
	for _, sq := range Squares() {
		p, ok := r.PieceAt(sq)
		if !ok {
			continue
		}
		s.pieces[sq] = p
		s.occupied[sq] = true
		if p.Type == King && s.kings[p.Color] == NoSquare {
			s.kings[p.Color] = sq
		}
	}
	return s
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (s *Snapshot) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() || !s.occupied[sq] {
		return Piece{}, false
	}
	return s.pieces[sq], true
}

// Occupied returns the occupied squares in canonical order.
func (s *Snapshot) Occupied() []Square {
	var out []Square
	for _, sq := range Squares() {
		if s.occupied[sq] {
			out = append(out, sq)
		}
	}
	return out
}

// PieceCount returns the number of occupied squares.
func (s *Snapshot) PieceCount() int {
	n := 0
	for _, ok := range s.occupied {
		if ok {
			n++
		}
	}
	return n
}

// KingSquare returns the square of the king of color c. The second result
// is false when that side has no king on the board.
func (s *Snapshot) KingSquare(c Color) (Square, bool) {
	sq := s.kings[c]
	return sq, sq != NoSquare
}

// AttackersOf delegates to the oracle.
func (s *Snapshot) AttackersOf(sq Square, by Color) []Square {
	return s.rules.AttackersOf(sq, by)
}

// IsAttacked delegates to the oracle.
func (s *Snapshot) IsAttacked(sq Square, by Color) bool {
	return s.rules.IsAttacked(sq, by)
}

// IsLegalMove delegates to the oracle.
func (s *Snapshot) IsLegalMove(from, to Square) bool {
	return s.rules.IsLegalMove(from, to)
}

// FEN returns the position string the snapshot was built from.
func (s *Snapshot) FEN() string { return s.rules.FEN() }
