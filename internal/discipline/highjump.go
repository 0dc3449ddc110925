package discipline

import (
	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/motion"
	"github.com/avela/athletiq/internal/phase"
	"github.com/avela/athletiq/internal/pose"
)

// HighJumpConfig holds the thresholds for the flop-style high jump
// checklist. Distances are in image-normalized units, angles in degrees.
type HighJumpConfig struct {
	// AccelMinIncreases feeds the runup acceleration detector.
	AccelMinIncreases int `yaml:"accel_min_increases"`

	// RunningTallMargin is how far the shoulders must sit above the hips
	// during the runup.
	RunningTallMargin float64 `yaml:"running_tall_margin"`

	// CurveLeanMaxAngle is the shoulder line angle limit that signals the
	// lean into the curve at take-off.
	CurveLeanMaxAngle float64 `yaml:"curve_lean_max_angle"`

	// TakeoffKneeMaxAngle is the loaded take-off knee limit.
	TakeoffKneeMaxAngle float64 `yaml:"takeoff_knee_max_angle"`

	// ArchMinAngle is the minimum hip extension over the bar.
	ArchMinAngle float64 `yaml:"arch_min_angle"`

	// LandingAngleMin and LandingAngleMax bound the L-shaped landing.
	LandingAngleMin float64 `yaml:"landing_angle_min"`
	LandingAngleMax float64 `yaml:"landing_angle_max"`
}

// DefaultHighJumpConfig returns the hand-tuned high jump thresholds.
func DefaultHighJumpConfig() HighJumpConfig {
	return HighJumpConfig{
		AccelMinIncreases:   3,
		RunningTallMargin:   0.05,
		CurveLeanMaxAngle:   150,
		TakeoffKneeMaxAngle: 120,
		ArchMinAngle:        160,
		LandingAngleMin:     80,
		LandingAngleMax:     100,
	}
}

// HighJumpEvaluator scores the high jump technique checklist.
type HighJumpEvaluator struct {
	cfg HighJumpConfig
}

// NewHighJump creates a high jump evaluator with the given thresholds.
func NewHighJump(cfg HighJumpConfig) *HighJumpEvaluator {
	return &HighJumpEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *HighJumpEvaluator) Name() string { return HighJump }

// Criteria implements Evaluator.
func (e *HighJumpEvaluator) Criteria() []string {
	return []string{
		"Accelerating runup while running tall",
		"Lean into the curve before take-off",
		"Take-off leg loaded",
		"Arched body over the bar",
		"Landing in L position",
	}
}

// Evaluate implements Evaluator. The sequence is split into runup,
// take-off, flight and landing quarters and each criterion is checked
// only within its phase.
func (e *HighJumpEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	runup, takeoff, flight, landing := phase.Quarters(seq, "runup", "takeoff", "flight", "landing")
	r.Merge(e.runup(runup.Frames))
	r.Merge(e.takeoff(takeoff.Frames))
	r.Merge(e.flight(flight.Frames))
	r.Merge(e.landing(landing.Frames))

	return r
}

// runup looks for a sustained speed increase while the athlete keeps an
// upright posture.
func (e *HighJumpEvaluator) runup(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	var (
		prevCenter *pose.Point
		speeds     []float64
	)
	for _, f := range frames {
		if f.Box == nil {
			continue
		}
		center := f.Box.Center()
		speeds = append(speeds, pose.Speed(&center, prevCenter))
		prevCenter = &center

		if !motion.IsAccelerating(speeds, e.cfg.AccelMinIncreases, 0) {
			continue
		}
		kp := f.Keypoints
		midShoulder := pose.Midpoint(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
		midHip := pose.Midpoint(kp.At(pose.LeftHip), kp.At(pose.RightHip))
		if midShoulder != nil && midHip != nil && midShoulder.Y+e.cfg.RunningTallMargin < midHip.Y {
			r.Satisfy(1, f.Index)
			break
		}
	}
	return r
}

// takeoff checks the curve lean and the loaded take-off knee.
func (e *HighJumpEvaluator) takeoff(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints
		if !r.Passed(2) {
			if angle, ok := pose.Angle(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder), kp.At(pose.RightHip)); ok && angle < e.cfg.CurveLeanMaxAngle {
				r.Satisfy(2, f.Index)
			}
		}
		if !r.Passed(3) {
			if angle, ok := pose.Angle(kp.At(pose.LeftHip), kp.At(pose.LeftKnee), kp.At(pose.LeftAnkle)); ok && angle < e.cfg.TakeoffKneeMaxAngle {
				r.Satisfy(3, f.Index)
			}
		}
		if r.Passed(2) && r.Passed(3) {
			break
		}
	}
	return r
}

// flight checks the arch over the bar.
func (e *HighJumpEvaluator) flight(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints
		midShoulder := pose.Midpoint(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
		midHip := pose.Midpoint(kp.At(pose.LeftHip), kp.At(pose.RightHip))
		midKnee := pose.Midpoint(kp.At(pose.LeftKnee), kp.At(pose.RightKnee))
		if angle, ok := pose.Angle(midShoulder, midHip, midKnee); ok && angle > e.cfg.ArchMinAngle {
			r.Satisfy(4, f.Index)
			break
		}
	}
	return r
}

// landing checks the folded L position on the mat.
func (e *HighJumpEvaluator) landing(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints
		midShoulder := pose.Midpoint(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
		midHip := pose.Midpoint(kp.At(pose.LeftHip), kp.At(pose.RightHip))
		midAnkle := pose.Midpoint(kp.At(pose.LeftAnkle), kp.At(pose.RightAnkle))
		if angle, ok := pose.Angle(midShoulder, midHip, midAnkle); ok &&
			angle >= e.cfg.LandingAngleMin && angle <= e.cfg.LandingAngleMax {
			r.Satisfy(5, f.Index)
			break
		}
	}
	return r
}
