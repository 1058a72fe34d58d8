package diagon

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/matzehuels/boardgraph/pkg/dag"
	"github.com/matzehuels/boardgraph/pkg/errors"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func graphOf(pairs ...string) *dag.DAG {
	g := dag.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		_, _ = g.EnsureNode(pairs[i])
		_, _ = g.EnsureNode(pairs[i+1])
		_ = g.AddEdge(dag.Edge{From: pairs[i], To: pairs[i+1]})
	}
	return g
}

func TestNewDefaults(t *testing.T) {
	r := New(Options{})
	if r.opts.Command != DefaultCommand || r.opts.Timeout != DefaultTimeout {
		t.Errorf("defaults not applied: %+v", r.opts)
	}
	if len(r.opts.Args) != 1 || r.opts.Args[0] != "GraphDAG" {
		t.Errorf("Args = %v, want [GraphDAG]", r.opts.Args)
	}
	if r.Name() != "diagon" {
		t.Errorf("Name() = %q", r.Name())
	}
}

func TestRenderPassesEdgesOnStdin(t *testing.T) {
	requireShell(t)
	// "cat" stands in for diagon and echoes its input.
	r := New(Options{Command: "sh", Args: []string{"-c", "cat"}})

	out, err := r.Render(context.Background(), graphOf("a", "b", "b", "c"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if string(out) != "a->b\nb->c" {
		t.Errorf("Render() = %q, want %q", out, "a->b\nb->c")
	}
}

func TestRenderFailureCarriesStderr(t *testing.T) {
	requireShell(t)
	r := New(Options{Command: "sh", Args: []string{"-c", "echo 'bad input' >&2; exit 3"}})

	_, err := r.Render(context.Background(), graphOf("a", "b"))
	if err == nil {
		t.Fatal("Render should fail")
	}
	if !errors.Is(err, errors.ErrCodeRendererFailure) {
		t.Errorf("code = %v, want RENDERER_FAILURE", errors.GetCode(err))
	}
	if got := errors.Stderr(err); got != "bad input\n" {
		t.Errorf("Stderr() = %q", got)
	}
	if errors.UserMessage(err) != "Error executing command" {
		t.Errorf("UserMessage() = %q", errors.UserMessage(err))
	}
	if errors.IsRendererUnavailable(err) {
		t.Error("a tool that ran is not unavailable")
	}
}

func TestRenderMissingExecutable(t *testing.T) {
	r := New(Options{Command: "boardgraph-no-such-diagon"})
	_, err := r.Run(context.Background(), "a->b")
	if !errors.IsRendererUnavailable(err) {
		t.Errorf("IsRendererUnavailable(%v) = false, want true", err)
	}
}

func TestRenderTimeout(t *testing.T) {
	requireShell(t)
	r := New(Options{Command: "sh", Args: []string{"-c", "exec sleep 5"}, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := r.Run(context.Background(), "")
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("code = %v, want TIMEOUT", errors.GetCode(err))
	}
	if time.Since(start) > 3*time.Second {
		t.Error("subprocess was not killed on timeout")
	}
}
