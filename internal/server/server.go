// Package server provides the HTTP server for the athletiq evaluation API.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/avela/athletiq/internal/app"
	"github.com/avela/athletiq/internal/server/api"
	"github.com/avela/athletiq/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
	Hub       *ReportsHub
}

// Server represents the HTTP server for the athletiq application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App != nil {
		disciplinesHandler := api.NewDisciplinesHandler(s.config.App.Registry())
		s.mux.Handle("/api/disciplines", disciplinesHandler)

		evaluationsHandler := api.NewEvaluationsHandler(s.config.App, s.config.Store)
		s.mux.Handle("/api/evaluations", evaluationsHandler)
		s.mux.Handle("/api/evaluations/", evaluationsHandler)
	}

	if s.config.Hub != nil {
		s.mux.Handle("/api/reports/ws", s.config.Hub)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
