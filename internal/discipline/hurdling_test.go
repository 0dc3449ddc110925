package discipline

import (
	"testing"

	"github.com/avela/athletiq/internal/pose"
)

// hurdleWalkFrame puts the whole body at horizontal position x with the
// knees too low and the arms trailing, so only the stride counters see
// anything.
func hurdleWalkFrame(idx int, x float64) pose.Frame {
	return pose.Frame{Index: idx, Keypoints: keypointSet(map[int]*pose.Point{
		pose.LeftAnkle:     point(x, 0.90),
		pose.RightAnkle:    point(x, 0.90),
		pose.LeftKnee:      point(x, 0.78),
		pose.RightKnee:     point(x, 0.78),
		pose.LeftShoulder:  point(x, 0.30),
		pose.RightShoulder: point(x, 0.30),
		pose.LeftElbow:     point(x, 0.45),
		pose.RightElbow:    point(x, 0.45),
	})}
}

func TestHurdling_StrideAndContactCounts(t *testing.T) {
	e := NewHurdling(DefaultHurdlingConfig())

	// Alternating small and large steps: every large step is a
	// displacement peak, so the peak count grows by one every two
	// frames and passes through 4 and then 8.
	var seq pose.Sequence
	x := 0.0
	for i := 0; i < 20; i++ {
		if i > 0 {
			if i%2 == 1 {
				x += 0.01
			} else {
				x += 0.1
			}
		}
		seq = append(seq, hurdleWalkFrame(i, x))
	}

	report := e.Evaluate(seq)

	if report.Scores["Approach in eight strides"] != 1 {
		t.Errorf("expected eight-stride approach to pass, got %v", report.Scores)
	}
	if report.Scores["Four contacts between hurdles"] != 1 {
		t.Errorf("expected four contacts to pass, got %v", report.Scores)
	}
	if frames := report.Frames[1]; len(frames) == 0 || frames[0] != 17 {
		t.Errorf("expected eight strides first detected at frame 17, got %v", frames)
	}
	if frames := report.Frames[2]; len(frames) == 0 || frames[0] != 9 {
		t.Errorf("expected four contacts first detected at frame 9, got %v", frames)
	}
	if report.Scores["Large second contact with a high knee"] != 0 {
		t.Errorf("expected low knees to keep the second contact at 0, got %v", report.Scores)
	}
}

func hurdleClearanceFrame(midElbowX float64) pose.Frame {
	return pose.Frame{Index: 0, Keypoints: keypointSet(map[int]*pose.Point{
		pose.LeftHip:       point(0.50, 0.50),
		pose.LeftKnee:      point(0.40, 0.55),
		pose.RightKnee:     point(0.50, 0.70),
		pose.LeftAnkle:     point(0.30, 0.60),
		pose.RightAnkle:    point(0.50, 0.90),
		pose.LeftShoulder:  point(0.45, 0.30),
		pose.RightShoulder: point(0.45, 0.30),
		pose.LeftElbow:     point(midElbowX, 0.45),
		pose.RightElbow:    point(midElbowX, 0.45),
	})}
}

func TestHurdling_LeadLegClearsHurdle(t *testing.T) {
	e := NewHurdling(DefaultHurdlingConfig())

	report := e.Evaluate(pose.Sequence{hurdleClearanceFrame(0.50)})

	if report.Scores["Lead leg passes straight above the hurdle"] != 1 {
		t.Errorf("expected lead leg clearance to pass, got %v", report.Scores)
	}
	if report.Scores["Torso and opposite arm drive toward the lead leg"] != 0 {
		t.Errorf("expected trailing arm to keep the torso criterion at 0, got %v", report.Scores)
	}
}

func TestHurdling_TorsoAndArmTowardLeadLeg(t *testing.T) {
	e := NewHurdling(DefaultHurdlingConfig())

	report := e.Evaluate(pose.Sequence{hurdleClearanceFrame(0.30)})

	if report.Scores["Torso and opposite arm drive toward the lead leg"] != 1 {
		t.Errorf("expected the torso criterion to pass with the arm reaching past the knee, got %v", report.Scores)
	}
}

func TestHurdling_SecondContactHighKnee(t *testing.T) {
	e := NewHurdling(DefaultHurdlingConfig())

	frame := func(idx int, x float64) pose.Frame {
		return pose.Frame{Index: idx, Keypoints: keypointSet(map[int]*pose.Point{
			pose.LeftAnkle:     point(x, 0.90),
			pose.RightAnkle:    point(x, 0.90),
			pose.LeftKnee:      point(x, 0.70),
			pose.RightKnee:     point(x, 0.70),
			pose.LeftShoulder:  point(x, 0.30),
			pose.RightShoulder: point(x, 0.30),
			pose.LeftElbow:     point(x, 0.45),
			pose.RightElbow:    point(x, 0.45),
		})}
	}
	seq := pose.Sequence{frame(0, 0.30), frame(1, 0.45)}

	report := e.Evaluate(seq)

	if report.Scores["Large second contact with a high knee"] != 1 {
		t.Errorf("expected the second contact criterion to pass, got %v", report.Scores)
	}
	if frames := report.Frames[5]; len(frames) != 1 || frames[0] != 1 {
		t.Errorf("expected second contact at frame 1, got %v", frames)
	}
}
