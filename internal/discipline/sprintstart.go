package discipline

import (
	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/pose"
)

// SprintStartConfig holds the thresholds for the sprint start checklist.
// Angles are in degrees.
type SprintStartConfig struct {
	// HeadAlignmentMaxAngle is the maximum hip-ear-shoulder angle for the
	// head to count as in line with the torso.
	HeadAlignmentMaxAngle float64 `yaml:"head_alignment_max_angle"`

	// PushOffMinKneeAngle is the knee extension required for a push-off.
	PushOffMinKneeAngle float64 `yaml:"push_off_min_knee_angle"`

	// PushOffMinAngleRise is the single-frame knee angle increase required
	// for the push-off to count as forceful.
	PushOffMinAngleRise float64 `yaml:"push_off_min_angle_rise"`

	// ExtendedMinKneeAngle and ContractedMaxKneeAngle describe the
	// front/back leg split in the set position.
	ExtendedMinKneeAngle   float64 `yaml:"extended_min_knee_angle"`
	ContractedMaxKneeAngle float64 `yaml:"contracted_max_knee_angle"`
}

// DefaultSprintStartConfig returns the hand-tuned sprint start thresholds.
func DefaultSprintStartConfig() SprintStartConfig {
	return SprintStartConfig{
		HeadAlignmentMaxAngle:  4,
		PushOffMinKneeAngle:    170,
		PushOffMinAngleRise:    25,
		ExtendedMinKneeAngle:   100,
		ContractedMaxKneeAngle: 95,
	}
}

// SprintStartEvaluator scores the sprint start technique checklist.
type SprintStartEvaluator struct {
	cfg SprintStartConfig
}

// NewSprintStart creates a sprint start evaluator with the given thresholds.
func NewSprintStart(cfg SprintStartConfig) *SprintStartEvaluator {
	return &SprintStartEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *SprintStartEvaluator) Name() string { return SprintStart }

// Criteria implements Evaluator.
func (e *SprintStartEvaluator) Criteria() []string {
	return []string{
		"Pelvis slightly higher than shoulders",
		"Head in line with torso",
		"Legs push off forcefully",
		"Gaze directed towards the ground",
		"Back leg fully extended",
	}
}

// Evaluate implements Evaluator. The sprint start has no phases: every
// criterion is checked on the full sequence, with knee angle histories
// carried across frames for the push-off and leg-split checks.
func (e *SprintStartEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	var leftKneeAngles, rightKneeAngles []float64

	for _, f := range seq {
		kp := f.Keypoints

		midHip := pose.Midpoint(kp.At(pose.LeftHip), kp.At(pose.RightHip))
		midShoulder := pose.Midpoint(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
		midEar := pose.Midpoint(kp.At(pose.LeftEar), kp.At(pose.RightEar))

		// Criterion 1: pelvis above the shoulders. Y grows downwards.
		if midHip != nil && midShoulder != nil && midHip.Y < midShoulder.Y {
			r.Satisfy(1, f.Index)
		}

		// Criterion 2: head aligned with the torso.
		if tilt, ok := pose.Angle(midHip, midEar, midShoulder); ok && tilt <= e.cfg.HeadAlignmentMaxAngle {
			r.Satisfy(2, f.Index)
		}

		// Criterion 4: gaze towards the ground (nose below the shoulders).
		if nose := kp.At(pose.Nose); nose != nil && midShoulder != nil && nose.Y > midShoulder.Y {
			r.Satisfy(4, f.Index)
		}

		if a, ok := pose.Angle(kp.At(pose.LeftHip), kp.At(pose.LeftKnee), kp.At(pose.LeftAnkle)); ok {
			leftKneeAngles = append(leftKneeAngles, a)
		}
		if a, ok := pose.Angle(kp.At(pose.RightHip), kp.At(pose.RightKnee), kp.At(pose.RightAnkle)); ok {
			rightKneeAngles = append(rightKneeAngles, a)
		}

		// Criterion 3: a near-full knee extension reached in one sharp rise.
		if e.pushOff(leftKneeAngles) || e.pushOff(rightKneeAngles) {
			r.Satisfy(3, f.Index)
		}

		// Criterion 5: one leg extended while the other stays contracted.
		if e.legSplit(leftKneeAngles, rightKneeAngles) {
			r.Satisfy(5, f.Index)
		}
	}

	return r
}

// pushOff reports whether the latest knee angle exceeds the extension
// threshold after a sharp single-frame rise.
func (e *SprintStartEvaluator) pushOff(angles []float64) bool {
	n := len(angles)
	if n < 2 {
		return false
	}
	return angles[n-1] > e.cfg.PushOffMinKneeAngle &&
		angles[n-1]-angles[n-2] > e.cfg.PushOffMinAngleRise
}

// legSplit reports whether one knee is extended past the threshold while
// the other is contracted, in either assignment.
func (e *SprintStartEvaluator) legSplit(left, right []float64) bool {
	if len(left) < 1 || len(right) < 1 {
		return false
	}
	l := left[len(left)-1]
	rr := right[len(right)-1]
	return (l > e.cfg.ExtendedMinKneeAngle && rr < e.cfg.ContractedMaxKneeAngle) ||
		(rr > e.cfg.ExtendedMinKneeAngle && l < e.cfg.ContractedMaxKneeAngle)
}
