package discipline

import (
	"math"

	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/motion"
	"github.com/avela/athletiq/internal/pose"
)

// BoardRegion is a rectangle in image-normalized coordinates that marks
// the take-off board.
type BoardRegion struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// Contains reports whether p falls inside the region.
func (b BoardRegion) Contains(p *pose.Point) bool {
	if p == nil {
		return false
	}
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// LongJumpConfig holds the thresholds for the long jump checklist. The
// runup thresholds operate on pixel-space bounding box centers, the rest
// on normalized keypoints.
type LongJumpConfig struct {
	// RunupStartDisplacement is the pixel distance the box center must
	// travel from its first position before the runup counts as started.
	RunupStartDisplacement float64 `yaml:"runup_start_displacement"`

	// AccelMinIncreases and AccelSpeedThreshold feed the acceleration
	// trend detector over the box-center speed history.
	AccelMinIncreases   int     `yaml:"accel_min_increases"`
	AccelSpeedThreshold float64 `yaml:"accel_speed_threshold"`

	// Board marks where the take-off foot must land.
	Board BoardRegion `yaml:"board"`

	// TakeoffKneeMinAngle and TakeoffMaxHipAnkleOffset describe the
	// planted take-off leg.
	TakeoffKneeMinAngle      float64 `yaml:"takeoff_knee_min_angle"`
	TakeoffMaxHipAnkleOffset float64 `yaml:"takeoff_max_hip_ankle_offset"`

	// SwingKneeMinAngle is the free-leg swing threshold.
	SwingKneeMinAngle float64 `yaml:"swing_knee_min_angle"`

	// LandingAngleMin and LandingAngleMax bound the folded landing
	// posture.
	LandingAngleMin float64 `yaml:"landing_angle_min"`
	LandingAngleMax float64 `yaml:"landing_angle_max"`
}

// DefaultLongJumpConfig returns the hand-tuned long jump thresholds.
func DefaultLongJumpConfig() LongJumpConfig {
	return LongJumpConfig{
		RunupStartDisplacement:   80,
		AccelMinIncreases:        3,
		AccelSpeedThreshold:      5.0,
		Board:                    BoardRegion{XMin: 0.40, XMax: 0.60, YMin: 0.70, YMax: 0.95},
		TakeoffKneeMinAngle:      165,
		TakeoffMaxHipAnkleOffset: 0.05,
		SwingKneeMinAngle:        120,
		LandingAngleMin:          80,
		LandingAngleMax:          100,
	}
}

// LongJumpEvaluator scores the long jump technique checklist.
type LongJumpEvaluator struct {
	cfg LongJumpConfig
}

// NewLongJump creates a long jump evaluator with the given thresholds.
func NewLongJump(cfg LongJumpConfig) *LongJumpEvaluator {
	return &LongJumpEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *LongJumpEvaluator) Name() string { return LongJump }

// Criteria implements Evaluator.
func (e *LongJumpEvaluator) Criteria() []string {
	return []string{
		"Accelerating runup",
		"Foot placed on take-off board with gaze ahead",
		"Take-off leg fully extended",
		"Swing leg drives forward",
		"Folded landing position",
	}
}

// Evaluate implements Evaluator. The runup criterion accumulates a speed
// history of the bounding box center; the remaining criteria are
// single-frame posture checks that stop once satisfied.
func (e *LongJumpEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	var (
		origin       *pose.Point
		prevCenter   *pose.Point
		speedHistory []float64
		runupStarted bool
	)

	for _, f := range seq {
		if f.Box == nil {
			continue
		}
		kp := f.Keypoints
		center := f.Box.Center()

		// Track the box center until the athlete has moved far enough
		// from the start; the technique checks only apply from there.
		if !runupStarted {
			if origin == nil {
				origin = &center
				continue
			}
			if d, ok := pose.Distance(origin, &center); ok && d > e.cfg.RunupStartDisplacement {
				runupStarted = true
				prevCenter = &center
			}
			continue
		}

		// Criterion 1: sustained speed increase during the runup.
		if speed := pose.Speed(&center, prevCenter); speed > 0 {
			speedHistory = append(speedHistory, speed)
		}
		prevCenter = &center
		if !r.Passed(1) && motion.IsAccelerating(speedHistory, e.cfg.AccelMinIncreases, e.cfg.AccelSpeedThreshold) {
			r.Satisfy(1, f.Index)
		}

		nose := kp.At(pose.Nose)
		rightAnkle := kp.At(pose.RightAnkle)

		// Criterion 2: take-off foot on the board, gaze level.
		if !r.Passed(2) && e.cfg.Board.Contains(rightAnkle) && gazeAhead(nose, kp.At(pose.LeftEye), kp.At(pose.RightEye)) {
			r.Satisfy(2, f.Index)
		}

		// Criterion 3: planted leg straight with the hip stacked over
		// the ankle.
		if !r.Passed(3) {
			rightHip := kp.At(pose.RightHip)
			angle, ok := pose.Angle(rightAnkle, kp.At(pose.RightKnee), rightHip)
			if ok && angle > e.cfg.TakeoffKneeMinAngle &&
				math.Abs(rightHip.X-rightAnkle.X) < e.cfg.TakeoffMaxHipAnkleOffset {
				r.Satisfy(3, f.Index)
			}
		}

		// Criterion 4: free leg swings up and forward.
		if !r.Passed(4) {
			if angle, ok := pose.Angle(kp.At(pose.LeftHip), kp.At(pose.LeftKnee), kp.At(pose.LeftAnkle)); ok && angle > e.cfg.SwingKneeMinAngle {
				r.Satisfy(4, f.Index)
			}
		}

		// Criterion 5: trunk folded over the legs on landing.
		if !r.Passed(5) {
			midShoulder := pose.Midpoint(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
			midHip := pose.Midpoint(kp.At(pose.LeftHip), kp.At(pose.RightHip))
			midAnkle := pose.Midpoint(kp.At(pose.LeftAnkle), kp.At(pose.RightAnkle))
			if angle, ok := pose.Angle(midShoulder, midHip, midAnkle); ok &&
				angle >= e.cfg.LandingAngleMin && angle <= e.cfg.LandingAngleMax {
				r.Satisfy(5, f.Index)
			}
		}
	}

	return r
}

// gazeAhead reports whether the nose sits above both eyes, i.e. the head
// is not tipped down toward the board.
func gazeAhead(nose, leftEye, rightEye *pose.Point) bool {
	if nose == nil || leftEye == nil || rightEye == nil {
		return false
	}
	return nose.Y < leftEye.Y && nose.Y < rightEye.Y
}
