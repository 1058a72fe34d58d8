package relation

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/graph"
)

func TestKingBoxLoneKing(t *testing.T) {
	f := board.NewFake().Put(board.E4, board.Piece{Type: board.King, Color: board.White})
	for _, off := range BoxOffsets {
		if n, ok := board.E4.Offset(off.File, off.Rank); ok && n != board.E4 {
			f.Allow(board.E4, n)
		}
	}

	r := KingBoxGraph(board.NewSnapshot(f))
	if len(r.Edges) != 8 {
		t.Fatalf("len(edges) = %d, want 8", len(r.Edges))
	}
	for _, e := range r.Edges {
		if e.Type != graph.EdgeKingCanMove || e.Source != board.E4 {
			t.Errorf("unexpected edge %v", e)
		}
	}
	if r.PhantomCount() != 8 {
		t.Errorf("phantoms = %d, want 8", r.PhantomCount())
	}
	if len(r.Nodes) != 9 || r.Nodes[0].Square != board.E4 || r.Nodes[0].IsPhantom() {
		t.Errorf("nodes = %v, want king first then 8 phantoms", r.Nodes)
	}

	// Phantoms follow the box order: top row first.
	var phantoms []string
	for _, n := range r.Nodes[1:] {
		phantoms = append(phantoms, n.Square.String())
	}
	want := []string{"d5", "e5", "f5", "d4", "f4", "d3", "e3", "f3"}
	if diff := cmp.Diff(want, phantoms); diff != "" {
		t.Errorf("phantom order mismatch (-want +got):\n%s", diff)
	}
}

func TestKingBoxOfClassification(t *testing.T) {
	// White king on a1 next to an ally, an enemy and an illegal empty square.
	f := board.NewFake().
		Put(board.A1, board.Piece{Type: board.King, Color: board.White}).
		Put(sq(t, "a2"), board.Piece{Type: board.Pawn, Color: board.White}).
		Put(sq(t, "b2"), board.Piece{Type: board.Knight, Color: board.Black}).
		Attack(sq(t, "b2"), board.A1)

	box, ok := KingBoxOf(board.NewSnapshot(f), board.White)
	if !ok {
		t.Fatal("KingBoxOf(White) reported missing king")
	}
	if box.King != board.A1 || box.Color != board.White {
		t.Errorf("box = %v/%v, want a1/white", box.King, box.Color)
	}

	want := []Status{
		StatusOffBoard, StatusBlockedByAlly, StatusBlockedByThreat,
		StatusOffBoard, StatusBlockedByThreat, StatusBlockedByThreat,
		StatusOffBoard, StatusOffBoard, StatusOffBoard,
	}
	var got []Status
	for _, c := range box.Cells {
		got = append(got, c.Status)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}

	r := KingBoxGraph(board.NewSnapshot(f))
	wantEdges := []graph.Edge{
		{Type: graph.EdgeKingBlockedAlly, Source: board.A1, Target: sq(t, "a2")},
		{Type: graph.EdgeKingBlockedThreat, Source: board.A1, Target: sq(t, "b2")},
		{Type: graph.EdgeKingBlockedThreat, Source: board.A1, Target: sq(t, "b1")},
	}
	if diff := cmp.Diff(wantEdges, r.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	if r.PhantomCount() != 0 {
		t.Errorf("phantoms = %d, want 0", r.PhantomCount())
	}
}

func TestKingBoxMissingKings(t *testing.T) {
	f := board.NewFake().Put(board.D4, board.Piece{Type: board.Queen, Color: board.White})
	snap := board.NewSnapshot(f)

	if _, ok := KingBoxOf(snap, board.White); ok {
		t.Error("KingBoxOf should report a missing white king")
	}
	r := KingBoxGraph(snap)
	if len(r.Edges) != 0 || len(r.Nodes) != 1 {
		t.Errorf("KingBoxGraph(no kings) = %d nodes, %d edges", len(r.Nodes), len(r.Edges))
	}
	if boxes := KingBoxes(snap); boxes == nil || len(boxes) != 0 {
		t.Errorf("KingBoxes(no kings) = %#v", boxes)
	}
}

func TestKingBoxStartPosition(t *testing.T) {
	r := KingBoxGraph(mustParse(t, startFEN))
	if len(r.Edges) != 10 {
		t.Fatalf("len(edges) = %d, want 10", len(r.Edges))
	}
	for _, e := range r.Edges {
		if e.Type != graph.EdgeKingBlockedAlly {
			t.Errorf("edge %v, want king_blocked_ally", e)
		}
	}
	if r.Edges[0].Source != board.E1 || r.Edges[9].Source != board.E8 {
		t.Error("white king edges should come before black king edges")
	}
	if len(r.Nodes) != 32 {
		t.Errorf("nodes = %d, want 32", len(r.Nodes))
	}
}

func TestBuildKingBoxMode(t *testing.T) {
	snap := mustParse(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	got, err := Build(snap, ModeKingBox)
	if err != nil {
		t.Fatalf("Build(king_box) error = %v", err)
	}
	if diff := cmp.Diff(KingBoxGraph(snap), got); diff != "" {
		t.Errorf("Build(king_box) mismatch (-want +got):\n%s", diff)
	}
	if got.CountByType()[graph.EdgeKingCanMove] == 0 {
		t.Error("white king on e1 should have open cells on rank 2")
	}
}

func TestKingBoxInCheck(t *testing.T) {
	snap := mustParse(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	box, ok := KingBoxOf(snap, board.White)
	if !ok {
		t.Fatal("missing white king")
	}

	got := make(map[string]Status)
	for _, c := range box.Cells {
		if c.OnBoard {
			got[c.Square.String()] = c.Status
		}
	}
	want := map[string]Status{
		"d2": StatusOpen,
		"e2": StatusOpen,
		"f2": StatusOpen,
		"d1": StatusBlockedByThreat,
		"e1": StatusBlockedByThreat,
		"f1": StatusBlockedByThreat,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestKingBoxSideNotToMove(t *testing.T) {
	// Black is not to move, but its king's empty neighbors are still open.
	snap := mustParse(t, "8/8/8/4k3/8/8/8/K7 w - - 0 1")
	box, ok := KingBoxOf(snap, board.Black)
	if !ok {
		t.Fatal("missing black king")
	}
	for _, c := range box.Cells {
		if c.Status != StatusOpen {
			t.Errorf("cell %v = %q, want open", c.Square, c.Status)
		}
	}
}

func TestKingBoxJSON(t *testing.T) {
	f := board.NewFake().
		Put(board.A1, board.Piece{Type: board.King, Color: board.White}).
		Put(sq(t, "a2"), board.Piece{Type: board.Rook, Color: board.White})
	box, _ := KingBoxOf(board.NewSnapshot(f), board.White)

	data, err := json.Marshal(box)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		KingSquare string `json:"king_square"`
		KingColor  string `json:"king_color"`
		Squares    []map[string]string
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.KingSquare != "a1" || decoded.KingColor != "white" || len(decoded.Squares) != 9 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Squares[0]["square"] != "off-board (-1,1)" {
		t.Errorf("first cell square = %q", decoded.Squares[0]["square"])
	}
	wantA2 := map[string]string{"square": "a2", "status": "blocked-by-ally", "piece_type": "R", "color": "white"}
	if diff := cmp.Diff(wantA2, decoded.Squares[1]); diff != "" {
		t.Errorf("a2 cell mismatch (-want +got):\n%s", diff)
	}
}
