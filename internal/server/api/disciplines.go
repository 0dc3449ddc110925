// Package api provides HTTP API handlers for the athletiq evaluation service.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/avela/athletiq/internal/discipline"
)

// DisciplinesHandler handles HTTP requests for the discipline catalogue.
type DisciplinesHandler struct {
	registry *discipline.Registry
}

// NewDisciplinesHandler creates a new DisciplinesHandler with the given registry.
func NewDisciplinesHandler(r *discipline.Registry) *DisciplinesHandler {
	return &DisciplinesHandler{registry: r}
}

type disciplineResponse struct {
	Name     string   `json:"name"`
	Criteria []string `json:"criteria"`
}

type listDisciplinesResponse struct {
	Disciplines []disciplineResponse `json:"disciplines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeHTTP handles GET /api/disciplines and returns the catalogue.
func (h *DisciplinesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	evaluators := h.registry.List()
	response := listDisciplinesResponse{
		Disciplines: make([]disciplineResponse, 0, len(evaluators)),
	}
	for _, e := range evaluators {
		response.Disciplines = append(response.Disciplines, disciplineResponse{
			Name:     e.Name(),
			Criteria: e.Criteria(),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
