// Package phase segments a player's frame sequence into the named movement
// phases of a discipline.
package phase

import "github.com/avela/athletiq/internal/pose"

// Phase is a named contiguous sub-range of a player's frame sequence.
type Phase struct {
	Name   string
	Frames pose.Sequence
}

// Split partitions seq into k contiguous phases of approximately equal size
// using integer division. Boundaries are purely proportional to the total
// frame count; they do not track actual biomechanical event timing. The
// returned phases cover seq with no gaps and no overlap, and an empty
// sequence yields k empty phases.
func Split(seq pose.Sequence, names ...string) []Phase {
	k := len(names)
	phases := make([]Phase, k)

	total := len(seq)
	for i, name := range names {
		start := (i * total) / k
		end := ((i + 1) * total) / k
		phases[i] = Phase{Name: name, Frames: seq[start:end]}
	}

	return phases
}

// Thirds splits seq into three equal phases.
func Thirds(seq pose.Sequence, first, second, third string) (Phase, Phase, Phase) {
	p := Split(seq, first, second, third)
	return p[0], p[1], p[2]
}

// Quarters splits seq into four equal phases.
func Quarters(seq pose.Sequence, a, b, c, d string) (Phase, Phase, Phase, Phase) {
	p := Split(seq, a, b, c, d)
	return p[0], p[1], p[2], p[3]
}
