package discipline

import (
	"math"

	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/phase"
	"github.com/avela/athletiq/internal/pose"
)

// DiscusConfig holds the thresholds for the discus throw checklist.
// Distances are in image-normalized units, angles in degrees.
type DiscusConfig struct {
	// SwingArmMinAngle is the minimum wrist-shoulder-hip extension of the
	// throwing arm during the intro swing.
	SwingArmMinAngle float64 `yaml:"swing_arm_min_angle"`

	// SwingMinRatio is the fraction of qualifying swing frames that must
	// show the arm swung behind the body.
	SwingMinRatio float64 `yaml:"swing_min_ratio"`

	// TurnKneeMinAngle is the minimum right knee angle while the jump
	// turn is initiated.
	TurnKneeMinAngle float64 `yaml:"turn_knee_min_angle"`

	// CircleCenterX and CircleCenterTolerance locate the middle of the
	// throwing circle for the jump turn placement check.
	CircleCenterX         float64 `yaml:"circle_center_x"`
	CircleCenterTolerance float64 `yaml:"circle_center_tolerance"`

	// ThrowHipMinAngle is the minimum hip opening during the low-to-high
	// throw off.
	ThrowHipMinAngle float64 `yaml:"throw_hip_min_angle"`

	// ReleaseArmMinAngle is the minimum upward angle of the throwing arm
	// against horizontal at release.
	ReleaseArmMinAngle float64 `yaml:"release_arm_min_angle"`
}

// DefaultDiscusConfig returns the hand-tuned discus thresholds.
func DefaultDiscusConfig() DiscusConfig {
	return DiscusConfig{
		SwingArmMinAngle:      160,
		SwingMinRatio:         0.7,
		TurnKneeMinAngle:      80,
		CircleCenterX:         0.42,
		CircleCenterTolerance: 0.05,
		ThrowHipMinAngle:      45,
		ReleaseArmMinAngle:    30,
	}
}

// DiscusEvaluator scores the discus throw technique checklist.
type DiscusEvaluator struct {
	cfg DiscusConfig
}

// NewDiscusThrow creates a discus evaluator with the given thresholds.
func NewDiscusThrow(cfg DiscusConfig) *DiscusEvaluator {
	return &DiscusEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *DiscusEvaluator) Name() string { return DiscusThrow }

// Criteria implements Evaluator.
func (e *DiscusEvaluator) Criteria() []string {
	return []string{
		"intro_swing_behind",
		"jump_turn_initiated",
		"jump_turn_center_circle",
		"throw_off_low_to_high",
		"discus_release_via_wrist",
	}
}

// Evaluate implements Evaluator. The sequence is split into swing, turn
// and throw thirds.
func (e *DiscusEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	swing, turn, throw := phase.Thirds(seq, "swing", "turn", "throw")
	r.Merge(e.swing(swing.Frames))
	r.Merge(e.turn(turn.Frames))
	r.Merge(e.throw(throw.Frames))

	return r
}

// swing records every frame with the throwing arm extended behind the
// body and passes when enough of the qualifying frames show it.
func (e *DiscusEvaluator) swing(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	qualifying := 0
	for _, f := range frames {
		kp := f.Keypoints
		wrist := kp.At(pose.RightWrist)
		shoulder := kp.At(pose.RightShoulder)
		angle, ok := pose.Angle(wrist, shoulder, kp.At(pose.RightHip))
		if !ok {
			continue
		}
		qualifying++
		if angle > e.cfg.SwingArmMinAngle && wrist.X < shoulder.X {
			r.Observe(1, f.Index)
		}
	}
	if qualifying > 0 && float64(r.ObservedCount(1))/float64(qualifying) >= e.cfg.SwingMinRatio {
		r.Pass(1)
	}
	return r
}

// turn checks the initiated jump turn and that the feet stay around the
// middle of the circle for the whole phase.
func (e *DiscusEvaluator) turn(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	qualifying := 0
	centered := true
	for _, f := range frames {
		kp := f.Keypoints

		if angle, ok := pose.Angle(kp.At(pose.RightHip), kp.At(pose.RightKnee), kp.At(pose.RightAnkle)); ok && angle > e.cfg.TurnKneeMinAngle {
			r.Satisfy(2, f.Index)
		}

		mid := pose.Midpoint(kp.At(pose.LeftAnkle), kp.At(pose.RightAnkle))
		if mid == nil {
			continue
		}
		qualifying++
		if math.Abs(mid.X-e.cfg.CircleCenterX) < e.cfg.CircleCenterTolerance {
			r.Observe(3, f.Index)
		} else {
			centered = false
		}
	}
	if qualifying > 0 && centered {
		r.Pass(3)
	}
	return r
}

// throw checks the low-to-high hip drive and the release direction of the
// throwing arm.
func (e *DiscusEvaluator) throw(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints

		if angle, ok := pose.Angle(kp.At(pose.RightKnee), kp.At(pose.RightHip), kp.At(pose.LeftKnee)); ok && angle > e.cfg.ThrowHipMinAngle {
			r.Satisfy(4, f.Index)
		}

		wrist := kp.At(pose.RightWrist)
		if wrist == nil {
			continue
		}
		horizontal := &pose.Point{X: wrist.X + 1, Y: wrist.Y}
		if angle, ok := pose.Angle(kp.At(pose.RightShoulder), wrist, horizontal); ok && angle > e.cfg.ReleaseArmMinAngle {
			r.Satisfy(5, f.Index)
		}
	}
	return r
}
