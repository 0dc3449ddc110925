package motion

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/avela/athletiq/internal/pose"
)

// LocalMaxima returns the indices of local maxima in values that are at
// least height tall and at least minDistance samples apart. When two peaks
// fall closer than minDistance the taller one wins.
func LocalMaxima(values []float64, height float64, minDistance int) []int {
	if minDistance < 1 {
		minDistance = 1
	}

	var peaks []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] < height {
			continue
		}
		if values[i] <= values[i-1] || values[i] < values[i+1] {
			continue
		}
		if n := len(peaks); n > 0 && i-peaks[n-1] < minDistance {
			if values[i] > values[peaks[n-1]] {
				peaks[n-1] = i
			}
			continue
		}
		peaks = append(peaks, i)
	}

	return peaks
}

// DisplacementStrides detects discrete stride events as peaks in the
// consecutive-frame displacement of a joint position history. threshold is
// the minimum displacement, in the same units as the positions, for a peak
// to count as a stride.
func DisplacementStrides(positions []pose.Point, threshold float64) []int {
	if len(positions) < 2 {
		return nil
	}

	displacements := make([]float64, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		displacements[i-1] = math.Hypot(
			positions[i].X-positions[i-1].X,
			positions[i].Y-positions[i-1].Y,
		)
	}

	return LocalMaxima(displacements, threshold, 1)
}

// Interval is a [Start, End] frame range of one detected stride.
type Interval struct {
	Start int
	End   int
}

// strideGapTolerance is the maximum gap, in frames, between intervals that
// are still merged into one stride.
const strideGapTolerance = 1

// MergeIntervals merges overlapping or adjacent stride intervals.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	merged := []Interval{intervals[0]}
	for _, cur := range intervals[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End+strideGapTolerance {
			if cur.End > last.End {
				last.End = cur.End
			}
		} else {
			merged = append(merged, cur)
		}
	}

	return merged
}

// FillMissing replaces NaN entries in a scalar sequence by linear
// interpolation between the surrounding known values. Leading and trailing
// NaNs take the nearest known value. An all-NaN input is returned unchanged.
func FillMissing(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	prev := -1
	for i, v := range out {
		if math.IsNaN(v) {
			continue
		}
		if prev == -1 {
			for j := 0; j < i; j++ {
				out[j] = v
			}
		} else if i-prev > 1 {
			step := (v - out[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				out[j] = out[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
	if prev == -1 {
		return out
	}
	for j := prev + 1; j < len(out); j++ {
		out[j] = out[prev]
	}

	return out
}

// Standardize returns the sequence shifted to zero mean and scaled to unit
// standard deviation. A constant sequence comes back as all zeros.
func Standardize(values []float64) []float64 {
	mean := stat.Mean(values, nil)
	sd := stat.StdDev(values, nil)

	out := make([]float64, len(values))
	if sd == 0 || math.IsNaN(sd) {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / sd
	}

	return out
}

// smooth applies a centered moving average of the given window size.
func smooth(values []float64, window int) []float64 {
	if window < 2 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	half := window / 2
	out := make([]float64, len(values))
	for i := range values {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi >= len(values) {
			hi = len(values) - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}

	return out
}

// StrideConfig tunes ankle-oscillation stride detection.
type StrideConfig struct {
	FrameRate      float64 `yaml:"frame_rate"`
	MinDurationSec float64 `yaml:"min_duration_sec"`
	MaxDurationSec float64 `yaml:"max_duration_sec"`
	PeakHeight     float64 `yaml:"peak_height"`
	SmoothWindow   int     `yaml:"smooth_window"`
	MinConfidence  float64 `yaml:"min_confidence"`
}

// DefaultStrideConfig returns the stride detection defaults.
func DefaultStrideConfig() StrideConfig {
	return StrideConfig{
		FrameRate:      30,
		MinDurationSec: 0.01,
		MaxDurationSec: 0.8,
		PeakHeight:     0.5,
		SmoothWindow:   5,
		MinConfidence:  0.2,
	}
}

// AnkleStrides detects stride intervals from the vertical oscillation of
// the two ankles. The left/right vertical signals are standardized and
// subtracted; a valley of the differential bracketed by two peaks within
// the configured duration window counts as one stride.
func AnkleStrides(left, right []*pose.Point, cfg StrideConfig) []Interval {
	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	lv := FillMissing(vertical(left, cfg.MinConfidence))
	rv := FillMissing(vertical(right, cfg.MinConfidence))

	n := len(lv)
	if len(rv) < n {
		n = len(rv)
	}
	diff := make([]float64, n)
	ls, rs := Standardize(lv[:n]), Standardize(rv[:n])
	flat := true
	for i := range diff {
		diff[i] = ls[i] - rs[i]
		if diff[i] != 0 {
			flat = false
		}
	}
	if flat {
		return nil
	}

	filtered := smooth(diff, cfg.SmoothWindow)
	negated := make([]float64, len(filtered))
	for i, v := range filtered {
		negated[i] = -v
	}

	minDist := int(cfg.FrameRate * cfg.MinDurationSec)
	peaks := LocalMaxima(filtered, cfg.PeakHeight, minDist)
	valleys := LocalMaxima(negated, cfg.PeakHeight, minDist)

	var strides []Interval
	for _, valley := range valleys {
		start, end := -1, -1
		for _, p := range peaks {
			if p < valley {
				start = p
			} else {
				end = p
				break
			}
		}
		if start < 0 || end < 0 {
			continue
		}
		duration := float64(end-start) / cfg.FrameRate
		if duration >= cfg.MinDurationSec && duration <= cfg.MaxDurationSec {
			strides = append(strides, Interval{Start: start, End: end})
		}
	}

	return MergeIntervals(strides)
}

// vertical extracts the Y signal from an ankle history, marking entries
// with missing points or sub-threshold confidence as NaN.
func vertical(points []*pose.Point, minConfidence float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		if p == nil || (p.Confidence > 0 && p.Confidence < minConfidence) {
			out[i] = math.NaN()
			continue
		}
		out[i] = p.Y
	}
	return out
}

// TrendSlope returns the least-squares slope of a scalar sequence over its
// sample indices.
func TrendSlope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, values, nil, false)
	return slope
}
