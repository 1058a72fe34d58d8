package relation

import (
	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/graph"
)

// Mode selects which relation builder produces the edges of a result.
type Mode string

const (
	ModeAdjacency     Mode = "adjacency"
	ModeAttackDefense Mode = "attack_defense"
	ModeKingBox       Mode = "king_box"
	ModeNone          Mode = "none"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeAttackDefense, ModeAdjacency, ModeKingBox, ModeNone}

// ParseMode validates s. The legacy route name "links" is accepted as an
// alias for attack_defense and "adjacencies" for adjacency.
func ParseMode(s string) (Mode, error) {
	switch s {
	case string(ModeAdjacency), "adjacencies":
		return ModeAdjacency, nil
	case string(ModeAttackDefense), "links":
		return ModeAttackDefense, nil
	case string(ModeKingBox):
		return ModeKingBox, nil
	case string(ModeNone):
		return ModeNone, nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown mode: %q", s)
}

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }

// Build runs the builder for mode over snap and returns the complete
// result. Unknown modes fail with INVALID_MODE.
func Build(snap *board.Snapshot, mode Mode) (graph.Result, error) {
	switch mode {
	case ModeAdjacency:
		return graph.NewResult(Nodes(snap), Adjacency(snap)), nil
	case ModeAttackDefense:
		return graph.NewResult(Nodes(snap), ThreatsAndProtections(snap)), nil
	case ModeKingBox:
		return KingBoxGraph(snap), nil
	case ModeNone:
		return graph.NewResult(Nodes(snap), nil), nil
	}
	return graph.Result{}, errors.New(errors.ErrCodeInvalidMode, "unknown mode: %q", mode)
}
