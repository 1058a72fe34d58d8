package render

import (
	"context"
	"testing"

	"github.com/matzehuels/boardgraph/pkg/dag"
	"github.com/matzehuels/boardgraph/pkg/errors"
)

func sample() *dag.DAG {
	g := dag.New()
	for _, id := range []string{"e1", "e2", "d2"} {
		_, _ = g.EnsureNode(id)
	}
	_ = g.AddEdge(dag.Edge{From: "e1", To: "e2"})
	_ = g.AddEdge(dag.Edge{From: "e1", To: "d2"})
	return g
}

type stubRenderer struct {
	out []byte
	err error
}

func (stubRenderer) Name() string { return "stub" }

func (s stubRenderer) Render(context.Context, *dag.DAG) ([]byte, error) { return s.out, s.err }

func TestPlain(t *testing.T) {
	out, err := Plain{}.Render(context.Background(), sample())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "e1->e2\ne1->d2" {
		t.Errorf("Render() = %q", out)
	}

	empty, err := Plain{}.Render(context.Background(), dag.New())
	if err != nil || len(empty) != 0 {
		t.Errorf("Render(empty) = %q, %v", empty, err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind     Kind
		wantName string
		wantErr  bool
	}{
		{"", "diagon", false},
		{KindDiagon, "diagon", false},
		{KindDOT, "dot", false},
		{KindSVG, "svg", false},
		{KindPlain, "plain", false},
		{"ascii", "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r, err := New(Options{Kind: tt.kind, Fallback: true})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("code = %v, want INVALID_CONFIG", errors.GetCode(err))
				}
				return
			}
			if r.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.wantName)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("svg"); err != nil || k != KindSVG {
		t.Errorf("ParseKind(svg) = %q, %v", k, err)
	}
	if _, err := ParseKind("png"); err == nil {
		t.Error("ParseKind(png) should fail")
	}
}

func TestWithFallback(t *testing.T) {
	ctx := context.Background()
	unavailable := &errors.RendererError{Renderer: "stub", ExitCode: -1, Unavailable: true}
	crashed := &errors.RendererError{Renderer: "stub", ExitCode: 2, Stderr: "boom"}

	t.Run("primary ok", func(t *testing.T) {
		rctx, rep := WithReport(ctx)
		out, err := WithFallback(stubRenderer{out: []byte("art")}, Plain{}).Render(rctx, sample())
		if err != nil || string(out) != "art" {
			t.Errorf("Render() = %q, %v", out, err)
		}
		if rep.Fallback {
			t.Error("report should not mark a fallback when the primary rendered")
		}
	})

	t.Run("primary unavailable", func(t *testing.T) {
		primary := stubRenderer{err: errors.Wrap(errors.ErrCodeRendererFailure, unavailable, "Error executing command")}
		rctx, rep := WithReport(ctx)
		out, err := WithFallback(primary, Plain{}).Render(rctx, sample())
		if err != nil || string(out) != "e1->e2\ne1->d2" {
			t.Errorf("Render() = %q, %v", out, err)
		}
		if !rep.Fallback || rep.Used != "plain" {
			t.Errorf("report = %+v, want fallback to plain", rep)
		}
	})

	t.Run("primary failed", func(t *testing.T) {
		primary := stubRenderer{err: errors.Wrap(errors.ErrCodeRendererFailure, crashed, "Error executing command")}
		_, err := WithFallback(primary, Plain{}).Render(ctx, sample())
		if errors.Stderr(err) != "boom" {
			t.Errorf("failure should not be masked, got %v", err)
		}
	})
}
