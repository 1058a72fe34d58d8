package render

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/boardgraph/pkg/dag"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/render/diagon"
	"github.com/matzehuels/boardgraph/pkg/render/nodelink"
)

// Renderer turns an acyclic graph into output bytes.
type Renderer interface {
	// Name identifies the backend in logs and errors.
	Name() string
	// Render renders g. It must honor ctx cancellation.
	Render(ctx context.Context, g *dag.DAG) ([]byte, error)
}

// Kind names a renderer backend.
type Kind string

const (
	KindDiagon Kind = "diagon"
	KindDOT    Kind = "dot"
	KindSVG    Kind = "svg"
	KindPlain  Kind = "plain"
)

// Kinds lists the supported backends.
var Kinds = []Kind{KindDiagon, KindDOT, KindSVG, KindPlain}

// Options selects and configures a backend.
type Options struct {
	Kind Kind

	// Command and Args override the diagon executable and its arguments.
	Command string
	Args    []string
	// Timeout bounds one diagon run. Zero uses the diagon default.
	Timeout time.Duration

	// Fallback returns plain text when the backend's tool is missing.
	Fallback bool
}

// New builds the renderer described by opts.
func New(opts Options) (Renderer, error) {
	var r Renderer
	switch opts.Kind {
	case KindDiagon, "":
		r = diagon.New(diagon.Options{Command: opts.Command, Args: opts.Args, Timeout: opts.Timeout})
	case KindDOT:
		r = nodelink.DOT{}
	case KindSVG:
		r = nodelink.SVG{}
	case KindPlain:
		return Plain{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown renderer %q (want one of %v)", opts.Kind, Kinds)
	}
	if opts.Fallback {
		r = WithFallback(r, Plain{})
	}
	return r, nil
}

// ParseKind validates a renderer name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds, k) {
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown renderer %q (want one of %v)", s, Kinds)
	}
	return k, nil
}

// Lines formats the edges of g as "source->target", in insertion order.
func Lines(g *dag.DAG) []string {
	edges := g.Edges()
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = e.From + "->" + e.To
	}
	return lines
}

// Plain renders the edge list as newline-joined "source->target" lines.
type Plain struct{}

// Name implements Renderer.
func (Plain) Name() string { return string(KindPlain) }

// Render implements Renderer.
func (Plain) Render(ctx context.Context, g *dag.DAG) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(Lines(g), "\n")), nil
}

type fallback struct {
	primary, secondary Renderer
}

// WithFallback returns a renderer that uses primary and switches to
// secondary only when primary reports its tool as unavailable.
func WithFallback(primary, secondary Renderer) Renderer {
	return fallback{primary: primary, secondary: secondary}
}

func (f fallback) Name() string { return f.primary.Name() }

func (f fallback) Render(ctx context.Context, g *dag.DAG) ([]byte, error) {
	out, err := f.primary.Render(ctx, g)
	if err != nil && errors.IsRendererUnavailable(err) {
		if rep := reportFrom(ctx); rep != nil {
			rep.Used = f.secondary.Name()
			rep.Fallback = true
		}
		return f.secondary.Render(ctx, g)
	}
	return out, err
}

// Report records which backend actually produced a render's output.
type Report struct {
	Used     string
	Fallback bool
}

type reportKey struct{}

// WithReport returns a context under which a fallback renderer records
// whether it switched to its secondary backend. One report per call.
func WithReport(ctx context.Context) (context.Context, *Report) {
	rep := &Report{}
	return context.WithValue(ctx, reportKey{}, rep), rep
}

func reportFrom(ctx context.Context) *Report {
	rep, _ := ctx.Value(reportKey{}).(*Report)
	return rep
}
