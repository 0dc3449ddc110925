package motion

import (
	"math"
	"testing"

	"github.com/avela/athletiq/internal/pose"
)

func TestLocalMaxima(t *testing.T) {
	values := []float64{0, 1, 0, 2, 0, 3, 0}

	peaks := LocalMaxima(values, 0.5, 1)
	want := []int{1, 3, 5}
	if len(peaks) != len(want) {
		t.Fatalf("expected peaks %v, got %v", want, peaks)
	}
	for i := range want {
		if peaks[i] != want[i] {
			t.Fatalf("expected peaks %v, got %v", want, peaks)
		}
	}
}

func TestLocalMaxima_HeightFilter(t *testing.T) {
	values := []float64{0, 1, 0, 2, 0}

	peaks := LocalMaxima(values, 1.5, 1)
	if len(peaks) != 1 || peaks[0] != 3 {
		t.Errorf("expected only the tall peak at 3, got %v", peaks)
	}
}

func TestLocalMaxima_MinDistance(t *testing.T) {
	values := []float64{0, 1, 0.9, 2, 0}

	// Peaks at 1 and 3 are closer than 3 samples; the taller one wins.
	peaks := LocalMaxima(values, 0.5, 3)
	if len(peaks) != 1 || peaks[0] != 3 {
		t.Errorf("expected the taller of the close peaks, got %v", peaks)
	}
}

func TestDisplacementStrides(t *testing.T) {
	// Ankle alternates small shuffles and one large swing.
	positions := []pose.Point{
		{X: 0.10}, {X: 0.11}, {X: 0.30}, {X: 0.31}, {X: 0.50}, {X: 0.51},
	}

	strides := DisplacementStrides(positions, 0.05)
	if len(strides) != 2 {
		t.Fatalf("expected 2 stride events, got %v", strides)
	}

	if DisplacementStrides(positions[:1], 0.05) != nil {
		t.Error("expected no strides for a single position")
	}
}

func TestMergeIntervals(t *testing.T) {
	merged := MergeIntervals([]Interval{{0, 5}, {6, 10}, {20, 25}})
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged intervals, got %v", merged)
	}
	if merged[0].Start != 0 || merged[0].End != 10 {
		t.Errorf("expected adjacent intervals merged into [0,10], got %v", merged[0])
	}
	if MergeIntervals(nil) != nil {
		t.Error("expected nil for empty input")
	}
}

func TestFillMissing(t *testing.T) {
	nan := math.NaN()
	out := FillMissing([]float64{nan, 1, nan, 3, nan})

	want := []float64{1, 1, 2, 3, 3}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("expected %v, got %v", want, out)
		}
	}
}

func TestFillMissing_AllNaN(t *testing.T) {
	out := FillMissing([]float64{math.NaN(), math.NaN()})
	for _, v := range out {
		if !math.IsNaN(v) {
			t.Error("expected all-NaN input to stay NaN")
		}
	}
}

func TestStandardize_Constant(t *testing.T) {
	out := Standardize([]float64{2, 2, 2})
	for _, v := range out {
		if v != 0 {
			t.Errorf("expected zeros for constant input, got %v", out)
		}
	}
}

func TestTrendSlope(t *testing.T) {
	slope := TrendSlope([]float64{0, 1, 2, 3})
	if math.Abs(slope-1) > 1e-9 {
		t.Errorf("expected slope 1, got %f", slope)
	}

	slope = TrendSlope([]float64{3, 2, 1, 0})
	if math.Abs(slope+1) > 1e-9 {
		t.Errorf("expected slope -1, got %f", slope)
	}

	if TrendSlope([]float64{1}) != 0 {
		t.Error("expected zero slope for a single sample")
	}
}

func TestAnkleStrides_FlatSignal(t *testing.T) {
	flat := make([]*pose.Point, 40)
	for i := range flat {
		flat[i] = &pose.Point{X: 0.5, Y: 0.9}
	}

	if strides := AnkleStrides(flat, flat, DefaultStrideConfig()); strides != nil {
		t.Errorf("expected no strides for flat ankles, got %v", strides)
	}
}

func TestAnkleStrides_Oscillation(t *testing.T) {
	// Left and right ankles oscillate in antiphase, as in running.
	n := 120
	left := make([]*pose.Point, n)
	right := make([]*pose.Point, n)
	for i := 0; i < n; i++ {
		ph := 2 * math.Pi * float64(i) / 20 // one stride cycle per 20 frames
		left[i] = &pose.Point{X: 0.5, Y: 0.9 + 0.05*math.Sin(ph)}
		right[i] = &pose.Point{X: 0.5, Y: 0.9 - 0.05*math.Sin(ph)}
	}

	strides := AnkleStrides(left, right, DefaultStrideConfig())
	if len(strides) == 0 {
		t.Fatal("expected stride intervals from antiphase oscillation")
	}
	for _, s := range strides {
		if s.End <= s.Start {
			t.Errorf("invalid stride interval %v", s)
		}
	}
}
