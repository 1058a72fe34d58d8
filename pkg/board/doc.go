// Package board defines the square, piece and snapshot types shared by the
// relation builders, together with the Rules interface that a chess rules
// oracle implements.
//
// The package never encodes movement rules. Attack sets and move legality
// come from a Rules implementation (see package oracle for the production
// adapter); board only stores what the oracle reported, once, at snapshot
// construction time.
//
// # Square Order
//
// [Squares] enumerates the board a1, b1, ..., h1, a2, ..., h8. All builders
// iterate in this order so their output is deterministic for a given
// position.
//
// # Testing
//
// [Fake] is a hand-populated Rules implementation for tests that need exact
// control over attack sets and legality.
package board
