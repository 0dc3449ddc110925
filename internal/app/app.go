// Package app wires the athletiq evaluation pipeline together: it turns a
// tracker detection stream into a player sequence, runs the discipline
// evaluator, persists the report, and hands it to the broadcaster.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/avela/athletiq/internal/discipline"
	"github.com/avela/athletiq/internal/store"
	"github.com/avela/athletiq/internal/track"
)

// Broadcaster pushes completed evaluations to connected clients.
type Broadcaster interface {
	Broadcast(e *store.Evaluation)
}

// Config holds configuration options for the application.
type Config struct {
	Store       *store.Store
	Registry    *discipline.Registry
	Extractor   *track.Extractor
	Broadcaster Broadcaster
}

// App orchestrates evaluation runs.
type App struct {
	config Config
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.Registry == nil {
		config.Registry = discipline.NewRegistry()
	}
	return &App{config: config}
}

// Registry returns the discipline registry.
func (a *App) Registry() *discipline.Registry {
	return a.config.Registry
}

// ErrUnknownDiscipline is returned for discipline names outside the registry.
var ErrUnknownDiscipline = errors.New("unknown discipline")

// Evaluate scores one player's detections against a discipline, persists
// the result and broadcasts it.
func (a *App) Evaluate(disciplineName string, playerID int, detections []track.Detection) (*store.Evaluation, error) {
	evaluator, ok := a.config.Registry.Get(disciplineName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiscipline, disciplineName)
	}

	seq := track.BuildSequence(playerID, detections, true)
	report := evaluator.Evaluate(seq)

	e := &store.Evaluation{
		ID:         uuid.New().String(),
		Discipline: disciplineName,
		PlayerID:   playerID,
		FrameCount: len(seq),
		Report:     report,
	}

	if a.config.Store != nil {
		if err := a.config.Store.Evaluations().Create(e); err != nil {
			return nil, fmt.Errorf("failed to persist evaluation: %w", err)
		}
	}

	if a.config.Broadcaster != nil {
		a.config.Broadcaster.Broadcast(e)
	}

	log.Printf("Evaluated %s for player %d over %d frames", disciplineName, playerID, len(seq))
	return e, nil
}

// EvaluateVideo runs the external pose extractor on a video file and scores
// the resulting detections.
func (a *App) EvaluateVideo(disciplineName string, playerID int, videoPath string) (*store.Evaluation, error) {
	if a.config.Extractor == nil {
		return nil, fmt.Errorf("no extractor configured")
	}

	detections, err := a.config.Extractor.Extract(videoPath)
	if err != nil {
		return nil, fmt.Errorf("pose extraction failed: %w", err)
	}

	return a.Evaluate(disciplineName, playerID, detections)
}
