// Package motion analyzes scalar histories derived from a player's frame
// sequence: acceleration runs, joint movement deltas, and stride events.
// All state lives in the caller's slices; nothing here persists between
// evaluation calls.
package motion

import "github.com/avela/athletiq/internal/pose"

// IsAccelerating reports whether the speed history contains at least
// minIncreases consecutive frame-to-frame rises with each rising value
// above speedThreshold.
func IsAccelerating(speeds []float64, minIncreases int, speedThreshold float64) bool {
	if len(speeds) < minIncreases+1 {
		return false
	}

	consecutive := 0
	for i := 1; i < len(speeds); i++ {
		if speeds[i] > speeds[i-1] && speeds[i] > speedThreshold {
			consecutive++
		} else {
			consecutive = 0
		}
		if consecutive >= minIncreases {
			return true
		}
	}

	return false
}

// DeltaX returns the horizontal movement between the last two entries of a
// position history. The second return value is false when fewer than two
// positions have been observed.
func DeltaX(history []pose.Point) (float64, bool) {
	if len(history) < 2 {
		return 0, false
	}
	return history[len(history)-1].X - history[len(history)-2].X, true
}

// DeltaY returns the vertical movement between the last two entries of a
// position history.
func DeltaY(history []pose.Point) (float64, bool) {
	if len(history) < 2 {
		return 0, false
	}
	return history[len(history)-1].Y - history[len(history)-2].Y, true
}

// StabilityX returns the mean absolute horizontal drift per frame over the
// last three entries of a position history. The second return value is
// false when fewer than three positions have been observed.
func StabilityX(history []pose.Point) (float64, bool) {
	if len(history) < 3 {
		return 0, false
	}
	d := history[len(history)-1].X - history[len(history)-3].X
	return abs(d) / 2, true
}

// StabilityY returns the mean absolute vertical drift per frame over the
// last three entries of a position history.
func StabilityY(history []pose.Point) (float64, bool) {
	if len(history) < 3 {
		return 0, false
	}
	d := history[len(history)-1].Y - history[len(history)-3].Y
	return abs(d) / 2, true
}

// ProgressiveX returns the horizontal movement over the last three entries
// when available, falling back to the last two.
func ProgressiveX(history []pose.Point) (float64, bool) {
	if len(history) >= 3 {
		return history[len(history)-1].X - history[len(history)-3].X, true
	}
	return DeltaX(history)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
