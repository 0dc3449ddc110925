package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avela/athletiq/internal/app"
	"github.com/avela/athletiq/internal/store"
	"github.com/avela/athletiq/internal/track"
)

// EvaluationsHandler handles HTTP requests for evaluation resources.
type EvaluationsHandler struct {
	app   *app.App
	store *store.Store
}

// NewEvaluationsHandler creates a new EvaluationsHandler.
func NewEvaluationsHandler(a *app.App, s *store.Store) *EvaluationsHandler {
	return &EvaluationsHandler{app: a, store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *EvaluationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/evaluations or /api/evaluations/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/evaluations")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/evaluations
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/evaluations/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createEvaluationRequest struct {
	Discipline string            `json:"discipline"`
	PlayerID   int               `json:"player_id"`
	Detections []track.Detection `json:"detections"`
}

type evaluationResponse struct {
	ID         string         `json:"id"`
	Discipline string         `json:"discipline"`
	PlayerID   int            `json:"player_id"`
	FrameCount int            `json:"frame_count"`
	Criteria   []string       `json:"criteria,omitempty"`
	Scores     map[string]int `json:"scoring,omitempty"`
	Frames     map[int][]int  `json:"eval_frames,omitempty"`
	CreatedAt  string         `json:"created_at"`
}

type listEvaluationsResponse struct {
	Evaluations []evaluationResponse `json:"evaluations"`
}

// toResponse converts a store.Evaluation to an evaluationResponse.
func toResponse(e *store.Evaluation) evaluationResponse {
	resp := evaluationResponse{
		ID:         e.ID,
		Discipline: e.Discipline,
		PlayerID:   e.PlayerID,
		FrameCount: e.FrameCount,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if e.Report != nil {
		resp.Criteria = e.Report.Names()
		resp.Scores = e.Report.Scores
		resp.Frames = e.Report.Frames
	}
	return resp
}

// list handles GET /api/evaluations and returns all evaluations.
func (h *EvaluationsHandler) list(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.store.Evaluations().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list evaluations")
		return
	}

	response := listEvaluationsResponse{
		Evaluations: make([]evaluationResponse, 0, len(evaluations)),
	}
	for _, e := range evaluations {
		response.Evaluations = append(response.Evaluations, toResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/evaluations/{id} and returns a single evaluation.
func (h *EvaluationsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	evaluation, err := h.store.Evaluations().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Evaluation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get evaluation")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(evaluation))
}

// create handles POST /api/evaluations and runs a new evaluation.
func (h *EvaluationsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate required fields
	if req.Discipline == "" {
		writeError(w, http.StatusBadRequest, "Discipline is required")
		return
	}
	if len(req.Detections) == 0 {
		writeError(w, http.StatusBadRequest, "Detections are required")
		return
	}

	evaluation, err := h.app.Evaluate(req.Discipline, req.PlayerID, req.Detections)
	if err != nil {
		if errors.Is(err, app.ErrUnknownDiscipline) {
			writeError(w, http.StatusBadRequest, "Unknown discipline")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to run evaluation")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(evaluation))
}

// delete handles DELETE /api/evaluations/{id} and removes an evaluation.
func (h *EvaluationsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Evaluations().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Evaluation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete evaluation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
