// Package server exposes the pipeline over HTTP.
//
// Routes:
//
//	GET  /health                      liveness probe
//	GET  /version                     build information
//	GET  /graph/{mode}?fen_string=    relation graph for any mode
//	GET  /links/?fen_string=          attack_defense graph
//	GET  /adjacencies/?fen_string=    adjacency graph
//	GET  /king_box/?fen_string=       king box graph
//	GET  /king_box/cells?fen_string=  raw king box cells per color
//	GET  /none/?fen_string=           nodes only
//	PUT  /graphdag                    assemble and render an edge list
//
// An unparsable position is answered with status 200 and
// {"error": "Invalid FEN string"}, which existing clients rely on.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/boardgraph/pkg/pipeline"
)

// DefaultRequestTimeout bounds one request when Options.RequestTimeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// maxBodyBytes caps PUT bodies. MaxEdges edges of short labels fit easily.
const maxBodyBytes = 4 << 20

// Options configures a Server.
type Options struct {
	Runner         *pipeline.Runner
	Logger         *log.Logger
	RequestTimeout time.Duration
}

// Server is an http.Handler serving the boardgraph API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds the router. A nil Runner gets pipeline defaults.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	s := &Server{runner: opts.Runner, logger: opts.Logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors)
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/graph/{mode}", s.handleGraph)
	r.Get("/links/", s.modeHandler("attack_defense"))
	r.Get("/adjacencies/", s.modeHandler("adjacency"))
	r.Get("/king_box/", s.modeHandler("king_box"))
	r.Get("/king_box/cells", s.handleKingBoxCells)
	r.Get("/none/", s.modeHandler("none"))
	r.Put("/graphdag", s.handleGraphDAG)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests up to five seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
