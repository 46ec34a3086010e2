// Package server exposes the geometry and memory model over HTTP as JSON,
// for the UI renderer to consume.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/kernel"
	"github.com/fxnlabs/kermaview/internal/metrics"
	"github.com/fxnlabs/kermaview/internal/modelerr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server answers geometry queries against a set of limits and the kernels
// of the loaded source.
type Server struct {
	log    *zap.Logger
	limits cuda.Limits

	mu      sync.RWMutex
	kernels *kernel.SelectionModel
}

// New creates a server. kernels may be nil.
func New(log *zap.Logger, limits cuda.Limits, kernels *kernel.SelectionModel) *Server {
	if kernels == nil {
		kernels = kernel.NewSelectionModel()
	}
	return &Server{log: log.Named("server"), limits: limits, kernels: kernels}
}

// Handler returns the routes of the server, each instrumented with
// metrics.Middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	routes := []struct {
		pattern string
		path    string
		handler http.HandlerFunc
	}{
		{"GET /healthz", "/healthz", s.handleHealth},
		{"GET /v1/block", "/v1/block", s.handleBlock},
		{"GET /v1/thread", "/v1/thread", s.handleThread},
		{"GET /v1/kernels", "/v1/kernels", s.handleKernels},
		{"POST /v1/kernels/select", "/v1/kernels/select", s.handleSelectKernel},
		{"GET /v1/memories", "/v1/memories", s.handleMemories},
	}
	for _, r := range routes {
		mux.Handle(r.pattern, metrics.Middleware(r.handler, r.path))
	}
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	block, err := s.blockFromQuery(r, "x", "y")
	if err != nil {
		s.writeError(w, err)
		return
	}
	metrics.BlockThreads.Set(float64(block.Size()))
	metrics.BlockWarps.Set(float64(block.NumWarps()))
	s.writeJSON(w, http.StatusOK, NewBlockView(block))
}

func (s *Server) handleThread(w http.ResponseWriter, r *http.Request) {
	block, err := s.blockFromQuery(r, "bx", "by")
	if err != nil {
		s.writeError(w, err)
		return
	}
	x, err := intParam(r, "x", 0)
	if err != nil {
		s.writeError(w, err)
		return
	}
	y, err := intParam(r, "y", 0)
	if err != nil {
		s.writeError(w, err)
		return
	}
	idx, err := cuda.NewIndex(x, y)
	if err != nil {
		s.writeError(w, err)
		return
	}
	thread, err := cuda.NewThread(block, idx)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, NewThreadView(thread))
}

func (s *Server) handleKernels(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]KernelView, 0, s.kernels.NumOptions())
	for _, k := range s.kernels.Options() {
		views = append(views, NewKernelView(k, k.Equals(s.kernels.Selection())))
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleSelectKernel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	s.mu.Lock()
	found := s.kernels.SelectKernelByName(name)
	s.mu.Unlock()
	if !found {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "kernel not found: " + name})
		return
	}
	s.log.Info("kernel selected", zap.String("kernel", name))
	s.writeJSON(w, http.StatusOK, map[string]string{"selected": name})
}

func (s *Server) handleMemories(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := []MemoryView{}
	if k := s.kernels.Selection(); k != nil {
		for _, m := range k.Memories {
			views = append(views, NewMemoryView(m))
		}
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) blockFromQuery(r *http.Request, xName, yName string) (*cuda.Block, error) {
	x, err := intParam(r, xName, -1)
	if err != nil {
		return nil, err
	}
	if x < 0 {
		return nil, modelerr.InvalidArgument("missing parameter %q", xName)
	}
	y, err := intParam(r, yName, 1)
	if err != nil {
		return nil, err
	}
	dim, err := cuda.NewDim(x, y)
	if err != nil {
		return nil, err
	}
	return cuda.NewBlockWithLimits(s.limits, dim, nil)
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, modelerr.InvalidArgument("parameter %q: %v", name, err)
	}
	return v, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, modelerr.ErrInvalidArgument) ||
		errors.Is(err, modelerr.ErrDomain) ||
		errors.Is(err, modelerr.ErrUnknownVariant) {
		status = http.StatusBadRequest
	}
	s.log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}
