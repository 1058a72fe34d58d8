package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boardgraph/pkg/board"
	"github.com/matzehuels/boardgraph/pkg/cache"
	"github.com/matzehuels/boardgraph/pkg/dag/acyclic"
	"github.com/matzehuels/boardgraph/pkg/dag/transform"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/graph"
	"github.com/matzehuels/boardgraph/pkg/observability"
	"github.com/matzehuels/boardgraph/pkg/oracle"
	"github.com/matzehuels/boardgraph/pkg/relation"
	"github.com/matzehuels/boardgraph/pkg/render"
	"github.com/matzehuels/boardgraph/pkg/render/diagon"
)

// Runner executes pipeline operations with caching.
//
// The Runner holds no per-request state. Multiple goroutines can safely
// share one Runner.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Parser   board.Parser
	Renderer render.Renderer

	// GraphTTL and DAGTTL override the cache lifetimes. Zero uses
	// cache.TTLGraph and cache.TTLDAG.
	GraphTTL time.Duration
	DAGTTL   time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Parser defaults to the notnil/chess oracle and Renderer to diagon.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		Parser:   oracle.Notnil{},
		Renderer: diagon.New(diagon.Options{}),
	}
}

// GetNodesAndEdges parses fen and builds the relation graph for mode.
func (r *Runner) GetNodesAndEdges(ctx context.Context, fen, mode string) (graph.Result, error) {
	res, _, err := r.GetNodesAndEdgesWithCacheInfo(ctx, fen, mode)
	return res, err
}

// GetNodesAndEdgesWithCacheInfo is GetNodesAndEdges that also reports
// whether the result came from cache.
func (r *Runner) GetNodesAndEdgesWithCacheInfo(ctx context.Context, fen, mode string) (graph.Result, bool, error) {
	m, err := relation.ParseMode(mode)
	if err != nil {
		return graph.Result{}, false, err
	}
	fen = strings.TrimSpace(fen)
	if err := errors.ValidatePosition(fen); err != nil {
		return graph.Result{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, m.String())
	start := time.Now()

	cacheKey := r.Keyer.GraphKey(fen, m.String())
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if res, err := graph.Unmarshal(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "graph")
			hooks.OnBuildComplete(ctx, m.String(), len(res.Nodes), len(res.Edges), time.Since(start), nil)
			return res, true, nil
		}
		// Undecodable entries are recomputed and overwritten.
	}
	observability.Cache().OnCacheMiss(ctx, "graph")

	res, err := r.build(fen, m)
	hooks.OnBuildComplete(ctx, m.String(), len(res.Nodes), len(res.Edges), time.Since(start), err)
	if err != nil {
		return graph.Result{}, false, err
	}

	r.Logger.Debug("built graph",
		"mode", m,
		"nodes", len(res.Nodes),
		"edges", len(res.Edges),
		"duration", time.Since(start))

	if data, err := graph.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, ttlOr(r.GraphTTL, cache.TTLGraph)); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}
	return res, false, nil
}

func (r *Runner) build(fen string, m relation.Mode) (graph.Result, error) {
	snap, err := r.snapshot(fen)
	if err != nil {
		return graph.Result{}, err
	}
	return relation.Build(snap, m)
}

func (r *Runner) snapshot(fen string) (*board.Snapshot, error) {
	rules, err := r.Parser.Parse(fen)
	if err != nil {
		if errors.GetCode(err) == "" {
			return nil, errors.InvalidPosition(err)
		}
		return nil, err
	}
	return board.NewSnapshot(rules), nil
}

// KingBoxes returns the 9-cell classification around each king present in
// fen, white first. It is not cached.
func (r *Runner) KingBoxes(ctx context.Context, fen string) ([]relation.KingBox, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fen = strings.TrimSpace(fen)
	if err := errors.ValidatePosition(fen); err != nil {
		return nil, err
	}
	snap, err := r.snapshot(fen)
	if err != nil {
		return nil, err
	}
	return relation.KingBoxes(snap), nil
}

// GetAssembledDAG assembles edges into an acyclic graph, renders the kept
// edges and returns the renderer output verbatim.
//
// A malformed edge fails the whole request with MALFORMED_EDGE_INPUT.
// Renderer failures carry code RENDERER_FAILURE and the captured stderr.
func (r *Runner) GetAssembledDAG(ctx context.Context, edges []acyclic.Edge, opts DAGOptions) (*DAGResult, error) {
	if err := acyclic.Validate(edges); err != nil {
		return nil, err
	}

	edgesHash, err := cache.HashJSON(edges)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash edges")
	}
	cacheKey := r.Keyer.DAGKey(edgesHash, opts.KeyOpts(r.Renderer.Name()))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached DAGResult
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "dag")
				cached.CacheInfo.DAGHit = true
				return &cached, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "dag")
	}

	start := time.Now()
	assembled, err := acyclic.Assemble(edges, opts.assembleOptions()...)
	if err != nil {
		return nil, err
	}
	out := &DAGResult{
		Dropped: assembled.Dropped(),
		Kept:    assembled.Edges(),
	}
	out.Stats.AssembleTime = time.Since(start)
	observability.Pipeline().OnAssembleComplete(ctx, len(out.Kept), len(out.Dropped), out.Stats.AssembleTime)

	g := assembled.Graph()
	if opts.Reduce {
		g = g.Clone()
		removed := transform.TransitiveReduction(g)
		r.Logger.Debug("reduced graph", "removed", len(removed))
	}
	out.Stats.NodeCount = g.NodeCount()
	out.Stats.EdgeCount = g.EdgeCount()

	r.Logger.Debug("assembled graph",
		"input", len(edges),
		"kept", len(out.Kept),
		"dropped", len(out.Dropped),
		"duration", out.Stats.AssembleTime)

	name := r.Renderer.Name()
	observability.Pipeline().OnRenderStart(ctx, name)
	renderStart := time.Now()
	renderCtx, rep := render.WithReport(ctx)
	art, err := r.Renderer.Render(renderCtx, g)
	out.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, name, out.Stats.RenderTime, err)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeRendererFailure, err, "Error executing command")
		}
		return nil, fmt.Errorf("render: %w", err)
	}
	out.ASCIIArt = string(art)

	// Fallback output is not what this key names; serve it but don't keep it.
	if rep.Fallback {
		r.Logger.Warn("renderer unavailable, used fallback", "renderer", name, "used", rep.Used)
		return out, nil
	}

	if data, err := json.Marshal(out); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, ttlOr(r.DAGTTL, cache.TTLDAG)); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "dag", len(data))
		}
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func ttlOr(ttl, def time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return def
}
