// Package criteria provides the scoring report shared by all discipline
// evaluators.
package criteria

// Report is the outcome of one evaluation call: a 0/1 score per criterion
// display name, and the frame indices where each criterion's underlying
// condition was observed, keyed by 1-based criterion index.
type Report struct {
	names  []string
	Scores map[string]int `json:"scoring"`
	Frames map[int][]int  `json:"eval_frames"`
}

// NewReport creates a report with every criterion scored 0 and every frame
// list empty. names are the criterion display names in checklist order.
func NewReport(names []string) *Report {
	r := &Report{
		names:  names,
		Scores: make(map[string]int, len(names)),
		Frames: make(map[int][]int, len(names)),
	}
	for i, name := range names {
		r.Scores[name] = 0
		r.Frames[i+1] = []int{}
	}
	return r
}

// Names returns the criterion display names in checklist order.
func (r *Report) Names() []string {
	return r.names
}

// Satisfy marks the criterion passed and records the frame where the
// condition held. criterion is 1-based.
func (r *Report) Satisfy(criterion, frame int) {
	r.Pass(criterion)
	r.Observe(criterion, frame)
}

// Observe records a frame where the criterion's instantaneous condition
// held without deciding the overall score. Used by criteria whose pass/fail
// is settled after the whole phase (percentage-of-frames checks).
func (r *Report) Observe(criterion, frame int) {
	r.Frames[criterion] = append(r.Frames[criterion], frame)
}

// Pass sets the criterion's score to 1.
func (r *Report) Pass(criterion int) {
	if criterion >= 1 && criterion <= len(r.names) {
		r.Scores[r.names[criterion-1]] = 1
	}
}

// Passed reports whether the criterion has already been scored 1. Evaluators
// use this to stop re-checking satisfied single-frame criteria.
func (r *Report) Passed(criterion int) bool {
	if criterion < 1 || criterion > len(r.names) {
		return false
	}
	return r.Scores[r.names[criterion-1]] == 1
}

// ObservedCount returns the number of frames recorded for the criterion.
func (r *Report) ObservedCount(criterion int) int {
	return len(r.Frames[criterion])
}

// Merge copies the scores and frame lists of a partial per-phase report
// into r. Criteria absent from the partial report keep their zero score.
func (r *Report) Merge(partial *Report) {
	for name, score := range partial.Scores {
		if score == 1 {
			r.Scores[name] = 1
		}
	}
	for criterion, frames := range partial.Frames {
		if len(frames) > 0 {
			r.Frames[criterion] = append(r.Frames[criterion], frames...)
		}
	}
}
