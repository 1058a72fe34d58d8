// Package oracle adapts github.com/notnil/chess to the [board.Rules]
// interface.
//
// notnil/chess parses FEN and generates legal moves but does not expose
// attack sets, so [Position] derives attackers from the parsed board with
// the usual ray and leaper geometry. Legality always comes from notnil's
// move generator.
//
// # Usage
//
//	snap, err := oracle.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
//	if err != nil {
//	    // err carries errors.ErrCodeInvalidPosition
//	}
//	kingSq, _ := snap.KingSquare(board.White)
//
// # Legality Perspective
//
// [Position.IsLegalMove] answers for the color of the piece on the source
// square, whichever side is to move in the FEN. The position for the side
// not to move is derived lazily by flipping the turn field and clearing the
// en passant square.
package oracle
