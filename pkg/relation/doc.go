// Package relation derives typed edges between squares of a board snapshot.
//
// Every builder is a pure function over a [board.Snapshot]: the same
// snapshot always yields the same nodes and edges in the same order.
// Builders never consult chess rules directly; attack sets and move
// legality come from the snapshot's oracle.
//
// # Builders
//
//   - [Nodes]: one node per occupied square, in canonical square order
//   - [Adjacency]: occupied squares that touch each other
//   - [ThreatsAndProtections]: who attacks and who defends each piece
//   - [KingBoxGraph]: the 3x3 safety box around each king, with phantom nodes
//     for empty squares the king may step to
//
// [Build] dispatches on a [Mode] and assembles a complete [graph.Result].
//
// # Missing Kings
//
// Positions without a king for one or both colors are valid input. The
// king-box builder silently skips a missing king.
package relation
