package errors

import (
	"strings"
	"unicode"
)

// MaxPositionLength bounds the size of a position string accepted at the
// request boundary. Legal FEN strings are well under 100 bytes.
const MaxPositionLength = 256

// MaxEdges bounds the number of edges accepted by one assembly request.
const MaxEdges = 10000

// ValidatePosition performs cheap sanity checks on a FEN string before it is
// handed to the oracle. It does not parse the position.
//
// The validation rules are intentionally conservative:
//   - No empty strings
//   - No control characters
//   - Maximum length of MaxPositionLength
//   - At least the piece-placement field with 8 ranks
func ValidatePosition(fen string) error {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return New(ErrCodeInvalidPosition, MsgInvalidFEN)
	}
	if len(fen) > MaxPositionLength {
		return New(ErrCodeInvalidPosition, MsgInvalidFEN)
	}
	for _, r := range fen {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPosition, MsgInvalidFEN)
		}
	}
	placement, _, _ := strings.Cut(fen, " ")
	if strings.Count(placement, "/") != 7 {
		return New(ErrCodeInvalidPosition, MsgInvalidFEN)
	}
	return nil
}

// ValidateEdgeEndpoint validates one endpoint of an assembler edge.
// Endpoints are opaque node names: they must be non-empty, free of control
// characters and must not contain the "->" separator used in renderer input.
func ValidateEdgeEndpoint(field, value string, index int) error {
	if value == "" {
		return New(ErrCodeMalformedEdgeInput, "edge %d: missing %s", index, field)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeMalformedEdgeInput, "edge %d: %s contains control characters", index, field)
		}
	}
	if strings.Contains(value, "->") {
		return New(ErrCodeMalformedEdgeInput, "edge %d: %s must not contain \"->\"", index, field)
	}
	return nil
}

// ValidateEdgeCount rejects oversized assembly requests.
func ValidateEdgeCount(n int) error {
	if n > MaxEdges {
		return New(ErrCodeMalformedEdgeInput, "too many edges (max %d)", MaxEdges)
	}
	return nil
}
