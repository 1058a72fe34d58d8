package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boardgraph/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Built 32 nodes (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnBuildStart(_ context.Context, mode string) {
	h.logger.Debug("building graph", "mode", mode)
}

func (h logHooks) OnBuildComplete(_ context.Context, mode string, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("graph build failed", "mode", mode, "error", err)
		return
	}
	h.logger.Debug("graph built", "mode", mode, "nodes", nodes, "edges", edges, "duration", d)
}

func (h logHooks) OnAssembleComplete(_ context.Context, accepted, dropped int, d time.Duration) {
	h.logger.Debug("assembled", "accepted", accepted, "dropped", dropped, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, renderer string) {
	h.logger.Debug("rendering", "renderer", renderer)
}

func (h logHooks) OnRenderComplete(_ context.Context, renderer string, d time.Duration, err error) {
	h.logger.Debug("rendered", "renderer", renderer, "duration", d, "error", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
)

// httpLogHooks traces requests before the access log line is written.
type httpLogHooks struct {
	logger *log.Logger
}

func (h httpLogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request started", "method", method, "path", path)
}

func (h httpLogHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var _ observability.HTTPHooks = httpLogHooks{}
