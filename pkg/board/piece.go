package board

import "strings"

// Color is the side a piece belongs to.
type Color int8

const (
	White Color = iota
	Black
)

// Colors lists both sides, White first.
var Colors = [2]Color{White, Black}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is the kind of a chess piece, independent of color.
type PieceType int8

const (
	King PieceType = iota + 1
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var typeLetters = map[PieceType]byte{
	King:   'k',
	Queen:  'q',
	Rook:   'r',
	Bishop: 'b',
	Knight: 'n',
	Pawn:   'p',
}

// String returns the lowercase FEN letter of the type.
func (t PieceType) String() string {
	if b, ok := typeLetters[t]; ok {
		return string(b)
	}
	return "?"
}

// Piece is a typed, colored piece. A Piece has no identity beyond the
// square it occupies on one snapshot.
type Piece struct {
	Type  PieceType
	Color Color
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Symbol() string {
	s := p.Type.String()
	if p.Color == White {
		return strings.ToUpper(s)
	}
	return s
}

// String is an alias for Symbol.
func (p Piece) String() string { return p.Symbol() }
