package oracle

import (
	"fmt"
	"strings"
	"sync"

	"github.com/notnil/chess"

	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/errors"
)

// Notnil is a [board.Parser] backed by notnil/chess.
type Notnil struct{}

// Parse implements [board.Parser].
func (Notnil) Parse(fen string) (board.Rules, error) {
	pos, err := NewPosition(fen)
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// Parse parses fen and returns a snapshot ready for the relation builders.
func Parse(fen string) (*board.Snapshot, error) {
	pos, err := NewPosition(fen)
	if err != nil {
		return nil, err
	}
	return board.NewSnapshot(pos), nil
}

// Position is one parsed position. It is immutable after construction and
// safe for concurrent use.
type Position struct {
	fen    string
	fields []string
	pieces [64]chess.Piece
	turn   board.Color

	legalOnce [2]sync.Once
	legal     [2]map[[2]board.Square]bool
}

// NewPosition parses fen. Any parser error or panic is reported as an
// INVALID_POSITION error with the message "Invalid FEN string".
func NewPosition(fen string) (*Position, error) {
	if err := errors.ValidatePosition(fen); err != nil {
		return nil, err
	}
	fields := normalizeFields(fen)
	g, err := newGame(strings.Join(fields, " "))
	if err != nil {
		return nil, errors.InvalidPosition(err)
	}

	p := &Position{fen: strings.Join(fields, " "), fields: fields}
	b := g.Position().Board()
	for _, sq := range board.Squares() {
		p.pieces[sq] = b.Piece(chess.Square(sq))
	}
	p.turn = fromColor(g.Position().Turn())
	return p, nil
}

// normalizeFields pads a FEN with default counters so that positions given
// without halfmove/fullmove fields still parse.
func normalizeFields(fen string) []string {
	fields := strings.Fields(fen)
	defaults := []string{"", "w", "-", "-", "0", "1"}
	for len(fields) < len(defaults) {
		fields = append(fields, defaults[len(fields)])
	}
	return fields
}

// newGame wraps chess.FEN and recovers from parser panics on malformed
// placement strings.
func newGame(fen string) (g *chess.Game, err error) {
	defer func() {
		if r := recover(); r != nil {
			g, err = nil, fmt.Errorf("parse fen: %v", r)
		}
	}()
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt), nil
}

// PieceAt implements [board.Rules].
func (p *Position) PieceAt(sq board.Square) (board.Piece, bool) {
	if !sq.Valid() {
		return board.Piece{}, false
	}
	return fromPiece(p.pieces[sq])
}

// FEN implements [board.Rules].
func (p *Position) FEN() string { return p.fen }

// Turn returns the side to move.
func (p *Position) Turn() board.Color { return p.turn }

// IsLegalMove implements [board.Rules]. An empty source square is never
// legal. Promotions count as legal if any promotion piece is.
func (p *Position) IsLegalMove(from, to board.Square) bool {
	piece, ok := p.PieceAt(from)
	if !ok {
		return false
	}
	return p.legalMoves(piece.Color)[[2]board.Square{from, to}]
}

func (p *Position) legalMoves(c board.Color) map[[2]board.Square]bool {
	p.legalOnce[c].Do(func() {
		p.legal[c] = p.generateLegal(c)
	})
	return p.legal[c]
}

func (p *Position) generateLegal(c board.Color) (moves map[[2]board.Square]bool) {
	moves = make(map[[2]board.Square]bool)
	defer func() {
		if r := recover(); r != nil {
			moves = map[[2]board.Square]bool{}
		}
	}()
	fen := p.fen
	if c != p.turn {
		fen = p.flippedFEN(c)
	}
	g, err := newGame(fen)
	if err != nil {
		return moves
	}
	for _, m := range g.Position().ValidMoves() {
		moves[[2]board.Square{board.Square(m.S1()), board.Square(m.S2())}] = true
	}
	return moves
}

// flippedFEN returns the position with c to move. The en passant target
// only makes sense for the original mover and is cleared.
func (p *Position) flippedFEN(c board.Color) string {
	fields := make([]string, len(p.fields))
	copy(fields, p.fields)
	fields[1] = "w"
	if c == board.Black {
		fields[1] = "b"
	}
	fields[3] = "-"
	return strings.Join(fields, " ")
}

func fromPiece(p chess.Piece) (board.Piece, bool) {
	if p == chess.NoPiece {
		return board.Piece{}, false
	}
	var t board.PieceType
	switch p.Type() {
	case chess.King:
		t = board.King
	case chess.Queen:
		t = board.Queen
	case chess.Rook:
		t = board.Rook
	case chess.Bishop:
		t = board.Bishop
	case chess.Knight:
		t = board.Knight
	case chess.Pawn:
		t = board.Pawn
	default:
		return board.Piece{}, false
	}
	return board.Piece{Type: t, Color: fromColor(p.Color())}, true
}

func fromColor(c chess.Color) board.Color {
	if c == chess.Black {
		return board.Black
	}
	return board.White
}

var _ board.Rules = (*Position)(nil)
