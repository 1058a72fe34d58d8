package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/boardgraph/pkg/buildinfo"
	"github.com/matzehuels/boardgraph/pkg/dag/acyclic"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/pipeline"
)

type errorResponse struct {
	Error  string `json:"error"`
	Stderr string `json:"stderr,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type graphDAGRequest struct {
	Edges *[]acyclic.Edge `json:"edges"`
}

type graphDAGResponse struct {
	ASCIIArt string            `json:"ascii_art"`
	Dropped  []acyclic.Dropped `json:"dropped"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	s.serveGraph(w, r, chi.URLParam(r, "mode"))
}

func (s *Server) modeHandler(mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveGraph(w, r, mode)
	}
}

func (s *Server) serveGraph(w http.ResponseWriter, r *http.Request, mode string) {
	fen, ok := fenParam(w, r)
	if !ok {
		return
	}
	res, err := s.runner.GetNodesAndEdges(r.Context(), fen, mode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleKingBoxCells(w http.ResponseWriter, r *http.Request) {
	fen, ok := fenParam(w, r)
	if !ok {
		return
	}
	boxes, err := s.runner.KingBoxes(r.Context(), fen)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boxes)
}

func (s *Server) handleGraphDAG(w http.ResponseWriter, r *http.Request) {
	var req graphDAGRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Edges == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: missing edges"})
		return
	}

	opts := pipeline.DAGOptions{
		ReversePrefilter: boolParam(r, "reverse_prefilter"),
		Reduce:           boolParam(r, "reduce"),
	}
	out, err := s.runner.GetAssembledDAG(r.Context(), *req.Edges, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, graphDAGResponse{ASCIIArt: out.ASCIIArt, Dropped: out.Dropped})
}

func fenParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := r.URL.Query()
	if !q.Has("fen_string") {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing query parameter fen_string"})
		return "", false
	}
	return q.Get("fen_string"), true
}

func boolParam(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// writeError maps pipeline errors onto the wire contract.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: errors.UserMessage(err)}
	status := http.StatusInternalServerError

	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPosition:
		status = http.StatusOK
	case errors.ErrCodeInvalidMode, errors.ErrCodeMalformedEdgeInput, errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeRendererFailure:
		status = http.StatusBadGateway
		resp.Stderr = errors.Stderr(err)
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
		resp.Stderr = errors.Stderr(err)
	default:
		if stderrors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
			resp.Error = "request timed out"
		} else {
			resp.Error = "internal error"
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
			"error", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
