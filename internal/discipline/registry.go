// Package discipline implements the per-discipline criterion evaluators.
// Each evaluator is a pure function of the player's frame sequence: it
// segments the sequence into phases where the discipline calls for them,
// extracts geometric features per frame, applies its configured thresholds,
// and returns a scoring report. Evaluators hold no state between calls.
package discipline

import (
	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/pose"
)

// Discipline names as used by the API and the configuration file.
const (
	SprintStart   = "sprint_start"
	SprintRunning = "sprint_running"
	LongJump      = "long_jump"
	HighJump      = "high_jump"
	ShotPut       = "shot_put"
	DiscusThrow   = "discus_throw"
	JavelinThrow  = "javelin_throw"
	Hurdling      = "hurdling"
)

// Evaluator scores one athlete's frame sequence against a discipline's
// fixed criteria checklist.
type Evaluator interface {
	// Name returns the discipline identifier.
	Name() string

	// Criteria returns the criterion display names in checklist order.
	Criteria() []string

	// Evaluate runs the discipline's checks over the sequence. It is
	// deterministic, never fails, and returns an all-zero report for an
	// empty sequence.
	Evaluate(seq pose.Sequence) *criteria.Report
}

// Registry holds the known discipline evaluators in a fixed order.
type Registry struct {
	order      []string
	evaluators map[string]Evaluator
}

// NewRegistry creates a registry with every discipline registered under its
// default threshold configuration.
func NewRegistry() *Registry {
	return NewRegistryWith(DefaultConfigSet())
}

// Register adds or replaces an evaluator. Replacing keeps the original
// position in the listing order.
func (r *Registry) Register(e Evaluator) {
	if _, exists := r.evaluators[e.Name()]; !exists {
		r.order = append(r.order, e.Name())
	}
	r.evaluators[e.Name()] = e
}

// Get returns the evaluator for a discipline name.
func (r *Registry) Get(name string) (Evaluator, bool) {
	e, ok := r.evaluators[name]
	return e, ok
}

// List returns all evaluators in registration order.
func (r *Registry) List() []Evaluator {
	out := make([]Evaluator, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.evaluators[name])
	}
	return out
}
