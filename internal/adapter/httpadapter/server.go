package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/nws-client/internal/collect"
	"github.com/couchcryptid/nws-client/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DatasetSource exposes the results of the most recent collection.
type DatasetSource interface {
	Datasets() []domain.Dataset
	LastRun() (collect.Run, bool)
}

// Server exposes health, readiness, metrics, and the latest collected
// datasets over HTTP.
type Server struct {
	httpServer *http.Server
	source     DatasetSource
	logger     *slog.Logger
}

type datasetSummary struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /datasets, /datasets/{name}, and /runs/last routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, source DatasetSource, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		source: source,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /datasets", s.handleDatasets)
	mux.HandleFunc("GET /datasets/{name}", s.handleDataset)
	mux.HandleFunc("GET /runs/last", s.handleLastRun)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleDatasets(w http.ResponseWriter, _ *http.Request) {
	datasets := s.source.Datasets()
	out := make([]datasetSummary, len(datasets))
	for i, ds := range datasets {
		out[i] = datasetSummary{Name: ds.Name, Records: len(ds.Records)}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	for _, ds := range s.source.Datasets() {
		if ds.Name == name {
			s.writeJSON(w, http.StatusOK, ds.Value())
			return
		}
	}
	s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown dataset " + name})
}

func (s *Server) handleLastRun(w http.ResponseWriter, _ *http.Request) {
	run, ok := s.source.LastRun()
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no collection has run yet"})
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}
