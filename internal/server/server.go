// Package server exposes the daemon's HTTP endpoints: health, readiness,
// metrics, and the decoded station observations.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aerowx/metar/internal/history"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and station HTTP endpoints.
type Server struct {
	httpServer *http.Server
	store      *history.Store
	logger     *slog.Logger
}

// New creates an HTTP server with /healthz, /readyz, /metrics, and
// /stations routes.
func New(addr string, ready ReadinessChecker, store *history.Store, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  store,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /stations", s.handleStations)
	mux.HandleFunc("GET /stations/{station}", s.handleStation)
	mux.HandleFunc("GET /stations/{station}/history", s.handleStationHistory)

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

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleStations(w http.ResponseWriter, _ *http.Request) {
	stations := s.store.Stations()
	sort.Strings(stations)
	writeJSON(w, http.StatusOK, map[string]any{"stations": stations})
}

func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")
	report := s.store.Latest(station)
	if report == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "no report for station " + station,
		})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleStationHistory(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")
	records := s.store.Records(station)
	if len(records) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "no reports for station " + station,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"station": station,
		"reports": records,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
