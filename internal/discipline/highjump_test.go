package discipline

import (
	"testing"

	"github.com/avela/athletiq/internal/pose"
)

func TestHighJump_FullJump(t *testing.T) {
	e := NewHighJump(DefaultHighJumpConfig())

	upright := keypointSet(map[int]*pose.Point{
		pose.LeftShoulder:  point(0.50, 0.30),
		pose.RightShoulder: point(0.50, 0.30),
		pose.LeftHip:       point(0.50, 0.50),
		pose.RightHip:      point(0.50, 0.50),
	})
	takeoff := keypointSet(map[int]*pose.Point{
		pose.LeftShoulder:  point(0.40, 0.30),
		pose.RightShoulder: point(0.50, 0.30),
		pose.RightHip:      point(0.50, 0.50),
		pose.LeftHip:       point(0.50, 0.50),
		pose.LeftKnee:      point(0.50, 0.70),
		pose.LeftAnkle:     point(0.66, 0.58),
	})
	arched := keypointSet(map[int]*pose.Point{
		pose.LeftShoulder:  point(0.50, 0.30),
		pose.RightShoulder: point(0.50, 0.30),
		pose.LeftHip:       point(0.50, 0.50),
		pose.RightHip:      point(0.50, 0.50),
		pose.LeftKnee:      point(0.50, 0.70),
		pose.RightKnee:     point(0.50, 0.70),
	})
	landed := keypointSet(map[int]*pose.Point{
		pose.LeftShoulder:  point(0.50, 0.30),
		pose.RightShoulder: point(0.50, 0.30),
		pose.LeftHip:       point(0.50, 0.50),
		pose.RightHip:      point(0.50, 0.50),
		pose.LeftAnkle:     point(0.70, 0.50),
		pose.RightAnkle:    point(0.70, 0.50),
	})

	// Accelerating box centers over the runup quarter, then the
	// take-off, flight and landing postures.
	centers := []float64{100, 110, 125, 145}
	var seq pose.Sequence
	for i, cx := range centers {
		f := boxFrame(i, cx, 100)
		f.Keypoints = upright
		seq = append(seq, f)
	}
	seq = repeatFrames(seq, takeoff, 4)
	seq = repeatFrames(seq, arched, 4)
	seq = repeatFrames(seq, landed, 4)

	report := e.Evaluate(seq)

	for name, score := range report.Scores {
		if score != 1 {
			t.Errorf("expected criterion %q to pass, got %v", name, report.Scores)
		}
	}

	wantFrames := map[int]int{1: 3, 2: 4, 3: 4, 4: 8, 5: 12}
	for criterion, frame := range wantFrames {
		got := report.Frames[criterion]
		if len(got) != 1 || got[0] != frame {
			t.Errorf("criterion %d: expected single frame %d, got %v", criterion, frame, got)
		}
	}
}

func TestHighJump_SteadyRunupFails(t *testing.T) {
	e := NewHighJump(DefaultHighJumpConfig())

	upright := keypointSet(map[int]*pose.Point{
		pose.LeftShoulder:  point(0.50, 0.30),
		pose.RightShoulder: point(0.50, 0.30),
		pose.LeftHip:       point(0.50, 0.50),
		pose.RightHip:      point(0.50, 0.50),
	})

	// Constant speed through the whole runup quarter.
	var seq pose.Sequence
	for i := 0; i < 16; i++ {
		f := boxFrame(i, 100+float64(i)*10, 100)
		f.Keypoints = upright
		seq = append(seq, f)
	}

	if report := e.Evaluate(seq); report.Scores["Accelerating runup while running tall"] != 0 {
		t.Errorf("expected steady runup to fail, got %v", report.Scores)
	}
}

func TestHighJump_HunchedRunupFails(t *testing.T) {
	// Acceleration without an upright posture does not pass.
	e := NewHighJump(DefaultHighJumpConfig())

	hunched := keypointSet(map[int]*pose.Point{
		pose.LeftShoulder:  point(0.50, 0.47),
		pose.RightShoulder: point(0.50, 0.47),
		pose.LeftHip:       point(0.50, 0.50),
		pose.RightHip:      point(0.50, 0.50),
	})

	centers := []float64{100, 110, 125, 145}
	var seq pose.Sequence
	for i, cx := range centers {
		f := boxFrame(i, cx, 100)
		f.Keypoints = hunched
		seq = append(seq, f)
	}
	seq = repeatFrames(seq, keypointSet(nil), 12)

	if report := e.Evaluate(seq); report.Scores["Accelerating runup while running tall"] != 0 {
		t.Errorf("expected hunched runup to fail, got %v", report.Scores)
	}
}
