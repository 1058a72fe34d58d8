package board

import "fmt"

// Square identifies one of the 64 board squares. The index is rank*8+file,
// so A1 is 0, H1 is 7 and H8 is 63.
type Square int8

// NoSquare is returned where a lookup has no answer.
const NoSquare Square = -1

// Corner and center squares used throughout tests and examples.
const (
	A1 Square = 0
	H1 Square = 7
	E1 Square = 4
	D4 Square = 27
	E4 Square = 28
	A8 Square = 56
	E8 Square = 60
	H8 Square = 63
)

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

// NewSquare returns the square at file f and rank r. Both must be in [0,7].
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the zero-based file ('a' is 0).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank ('1' is 0).
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether s is one of the 64 board squares.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// String returns the algebraic name, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{fileNames[s.File()], rankNames[s.Rank()]})
}

// Offset returns the square df files and dr ranks away from s. The second
// result is false when the target falls off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", name)
	}
	f := int(name[0]) - 'a'
	r := int(name[1]) - '1'
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, fmt.Errorf("invalid square %q", name)
	}
	return NewSquare(f, r), nil
}

var squares = func() [64]Square {
	var all [64]Square
	for i := range all {
		all[i] = Square(i)
	}
	return all
}()

// Squares returns all 64 squares in canonical order: a1, b1, ..., h1, a2, ..., h8.
// Every builder iterates in this order, which makes their output deterministic.
func Squares() []Square {
	out := squares
	return out[:]
}
