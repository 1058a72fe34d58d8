package graph

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boardgraph/pkg/board"
)

func TestNodeWireFormat(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "white king",
			node: PieceNode(board.E1, board.Piece{Type: board.King, Color: board.White}),
			want: `{"square":"e1","piece_type":"K","color":"white"}`,
		},
		{
			name: "black pawn",
			node: PieceNode(board.D4, board.Piece{Type: board.Pawn, Color: board.Black}),
			want: `{"square":"d4","piece_type":"p","color":"black"}`,
		},
		{
			name: "phantom",
			node: PhantomNode(board.E4),
			want: `{"square":"e4","piece_type":"phantom","color":"phantom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.node)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back Node
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if back != tt.node {
				t.Errorf("round trip = %+v, want %+v", back, tt.node)
			}
		})
	}
}

func TestNodeUnmarshalInvalid(t *testing.T) {
	tests := []string{
		`{"square":"z9","piece_type":"K","color":"white"}`,
		`{"square":"e1","piece_type":"X","color":"white"}`,
		`{"square":"e1","piece_type":"K","color":"green"}`,
		`{"square":"e1","piece_type":"KK","color":"white"}`,
	}
	for _, in := range tests {
		var n Node
		if err := json.Unmarshal([]byte(in), &n); err == nil {
			t.Errorf("Unmarshal(%s) should fail", in)
		}
	}
}

func TestEdgeWireFormat(t *testing.T) {
	e := Edge{Type: EdgeProtection, Source: board.D4, Target: board.E4}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"protection","source":"d4","target":"e4"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
	if e.String() != "protection:d4->e4" {
		t.Errorf("String() = %q", e.String())
	}
}

func TestEmptyResultEncodesArrays(t *testing.T) {
	data, err := Marshal(Result{})
	if err != nil {
		t.Fatal(err)
	}
	compact := strings.Join(strings.Fields(string(data)), "")
	if compact != `{"nodes":[],"edges":[]}` {
		t.Errorf("Marshal(Result{}) = %s", compact)
	}
}

func TestResultFileRoundTrip(t *testing.T) {
	r := NewResult(
		[]Node{
			PieceNode(board.E1, board.Piece{Type: board.King, Color: board.White}),
			PhantomNode(board.E4),
		},
		[]Edge{{Type: EdgeKingCanMove, Source: board.E1, Target: board.E4}},
	)

	path := filepath.Join(t.TempDir(), "result.json")
	if err := WriteFile(r, path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	r := NewResult(
		[]Node{PhantomNode(board.E4), PhantomNode(board.D4), PieceNode(board.E1, board.Piece{Type: board.King})},
		[]Edge{
			{Type: EdgeThreat, Source: board.A1, Target: board.H8},
			{Type: EdgeThreat, Source: board.H8, Target: board.A1},
			{Type: EdgeProtection, Source: board.E1, Target: board.D4},
		},
	)
	if r.PhantomCount() != 2 {
		t.Errorf("PhantomCount() = %d, want 2", r.PhantomCount())
	}
	want := map[EdgeType]int{EdgeThreat: 2, EdgeProtection: 1}
	if diff := cmp.Diff(want, r.CountByType()); diff != "" {
		t.Errorf("CountByType mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInvalidJSON(t *testing.T) {
	if _, err := Unmarshal([]byte("{")); err == nil {
		t.Error("Unmarshal should fail on truncated JSON")
	}
}
