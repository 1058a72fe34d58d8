// Package diagon renders DAGs as ASCII art with the external diagon tool.
//
// The tool reads "source->target" lines on stdin and prints the drawing on
// stdout:
//
//	$ printf 'a->b\nb->c' | diagon GraphDAG
//
// A non-zero exit status is reported as an [errors.RendererError] carrying
// the captured stderr. A missing executable is reported the same way with
// Unavailable set.
package diagon

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/matzehuels/boardgraph/pkg/dag"
	"github.com/matzehuels/boardgraph/pkg/errors"
)

// Defaults for Options.
const (
	DefaultCommand = "diagon"
	DefaultTimeout = 10 * time.Second
)

// waitDelay bounds how long Wait blocks on open pipes after the process
// was killed.
const waitDelay = time.Second

// DefaultArgs selects the DAG translator.
var DefaultArgs = []string{"GraphDAG"}

// Options configures the subprocess.
type Options struct {
	Command string        // executable, default "diagon"
	Args    []string      // arguments, default ["GraphDAG"]
	Timeout time.Duration // per-run limit, default 10s
}

// Renderer runs diagon once per Render call.
type Renderer struct {
	opts Options
}

// New returns a Renderer with defaults applied to unset options.
func New(opts Options) *Renderer {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.Args == nil {
		opts.Args = DefaultArgs
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Renderer{opts: opts}
}

// Name returns "diagon".
func (r *Renderer) Name() string { return "diagon" }

// Render pipes the edge lines of g through the tool and returns its stdout
// unchanged.
func (r *Renderer) Render(ctx context.Context, g *dag.DAG) ([]byte, error) {
	edges := g.Edges()
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = e.From + "->" + e.To
	}
	return r.Run(ctx, strings.Join(lines, "\n"))
}

// Run executes the tool with input on stdin.
func (r *Renderer) Run(ctx context.Context, input string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.opts.Command, r.opts.Args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.WaitDelay = waitDelay

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err == nil {
		return out.Bytes(), nil
	}

	rerr := &errors.RendererError{Renderer: r.Name(), ExitCode: -1, Stderr: errBuf.String(), Err: err}
	var exitErr *exec.ExitError
	switch {
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		rerr.Err = ctx.Err()
		return nil, errors.Wrap(errors.ErrCodeTimeout, rerr, "renderer timed out after %s", r.opts.Timeout)
	case ctx.Err() != nil:
		rerr.Err = ctx.Err()
	case stderrors.As(err, &exitErr):
		rerr.ExitCode = exitErr.ExitCode()
	case stderrors.Is(err, exec.ErrNotFound), stderrors.Is(err, fs.ErrNotExist):
		rerr.Unavailable = true
	}
	return nil, errors.Wrap(errors.ErrCodeRendererFailure, rerr, "Error executing command")
}
