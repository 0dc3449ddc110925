package discipline

import (
	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/pose"
)

// SprintRunningConfig holds the thresholds for the sprint running checklist.
// Distances are in image-normalized units, angles in degrees.
type SprintRunningConfig struct {
	// KneeLiftMinDrop is the minimum knee-below-hip distance for the knee
	// lift check.
	KneeLiftMinDrop float64 `yaml:"knee_lift_min_drop"`

	// BallsOfFeetMaxRise is the maximum ankle-below-knee distance; the
	// ankle must sit above this to count as running on the balls of the
	// feet.
	BallsOfFeetMaxRise float64 `yaml:"balls_of_feet_max_rise"`

	// ArmAngleMin and ArmAngleMax bound the elbow angle window around 90
	// degrees.
	ArmAngleMin float64 `yaml:"arm_angle_min"`
	ArmAngleMax float64 `yaml:"arm_angle_max"`

	// TorsoLeanMinAngle is the minimum lean of the torso off vertical.
	TorsoLeanMinAngle float64 `yaml:"torso_lean_min_angle"`

	// ClawAngleMargin bounds the claw angle window: the angle must fall
	// in [margin, 180-margin].
	ClawAngleMargin float64 `yaml:"claw_angle_margin"`

	// GroundedKneeMinAngle is the full-extension threshold for the
	// grounded leg in the clawing check.
	GroundedKneeMinAngle float64 `yaml:"grounded_knee_min_angle"`
}

// DefaultSprintRunningConfig returns the hand-tuned sprint running
// thresholds.
func DefaultSprintRunningConfig() SprintRunningConfig {
	return SprintRunningConfig{
		KneeLiftMinDrop:      0.15,
		BallsOfFeetMaxRise:   0,
		ArmAngleMin:          79,
		ArmAngleMax:          105,
		TorsoLeanMinAngle:    10,
		ClawAngleMargin:      85,
		GroundedKneeMinAngle: 170,
	}
}

// SprintRunningEvaluator scores the sprint running technique checklist.
type SprintRunningEvaluator struct {
	cfg SprintRunningConfig
}

// NewSprintRunning creates a sprint running evaluator with the given
// thresholds.
func NewSprintRunning(cfg SprintRunningConfig) *SprintRunningEvaluator {
	return &SprintRunningEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *SprintRunningEvaluator) Name() string { return SprintRunning }

// Criteria implements Evaluator.
func (e *SprintRunningEvaluator) Criteria() []string {
	return []string{
		"Knees are lifted high",
		"Runs on balls of feet",
		"Arms at a 90 degree angle",
		"Center of gravity leans forward",
		"Actively clawing at the ground",
	}
}

// Evaluate implements Evaluator. All criteria are single-frame checks on
// the full sequence.
func (e *SprintRunningEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range seq {
		kp := f.Keypoints

		leftHip, rightHip := kp.At(pose.LeftHip), kp.At(pose.RightHip)
		leftKnee, rightKnee := kp.At(pose.LeftKnee), kp.At(pose.RightKnee)
		leftAnkle, rightAnkle := kp.At(pose.LeftAnkle), kp.At(pose.RightAnkle)

		// Criterion 1: knee lift relative to hip.
		if e.kneeLift(leftHip, leftKnee) || e.kneeLift(rightHip, rightKnee) {
			r.Satisfy(1, f.Index)
		}

		// Criterion 2: ankle rides above the configured line to the knee.
		if e.ballsOfFeet(leftAnkle, leftKnee) || e.ballsOfFeet(rightAnkle, rightKnee) {
			r.Satisfy(2, f.Index)
		}

		// Criterion 3: both elbows inside the 90-degree window.
		leftArm, lok := pose.Angle(kp.At(pose.LeftShoulder), kp.At(pose.LeftElbow), kp.At(pose.LeftWrist))
		rightArm, rok := pose.Angle(kp.At(pose.RightShoulder), kp.At(pose.RightElbow), kp.At(pose.RightWrist))
		if lok && rok &&
			leftArm >= e.cfg.ArmAngleMin && leftArm <= e.cfg.ArmAngleMax &&
			rightArm >= e.cfg.ArmAngleMin && rightArm <= e.cfg.ArmAngleMax {
			r.Satisfy(3, f.Index)
		}

		// Criterion 4: torso leans forward of vertical.
		if e.leansForward(rightHip, kp.At(pose.RightShoulder)) {
			r.Satisfy(4, f.Index)
		}

		// Criterion 5: grounded leg extended, swing knee clawing across.
		if e.clawing(leftAnkle, leftKnee, leftHip, rightKnee, rightHip) ||
			e.clawing(rightAnkle, rightKnee, rightHip, leftKnee, leftHip) {
			r.Satisfy(5, f.Index)
		}
	}

	return r
}

func (e *SprintRunningEvaluator) kneeLift(hip, knee *pose.Point) bool {
	if hip == nil || knee == nil {
		return false
	}
	return knee.Y-hip.Y > e.cfg.KneeLiftMinDrop
}

func (e *SprintRunningEvaluator) ballsOfFeet(ankle, knee *pose.Point) bool {
	if ankle == nil || knee == nil {
		return false
	}
	return ankle.Y-knee.Y < e.cfg.BallsOfFeetMaxRise
}

// leansForward measures the torso angle against a synthetic vertical
// reference dropped from the shoulder to hip height.
func (e *SprintRunningEvaluator) leansForward(hip, shoulder *pose.Point) bool {
	if hip == nil || shoulder == nil {
		return false
	}
	vertical := &pose.Point{X: shoulder.X, Y: hip.Y}
	angle, ok := pose.Angle(hip, shoulder, vertical)
	return ok && angle > e.cfg.TorsoLeanMinAngle
}

// clawing checks the swing-knee angle against the grounded knee while the
// grounded leg is fully extended.
func (e *SprintRunningEvaluator) clawing(groundedAnkle, groundedKnee, groundedHip, otherKnee, otherHip *pose.Point) bool {
	claw, ok := pose.Angle(otherHip, otherKnee, groundedKnee)
	if !ok {
		return false
	}
	kneeAngle, ok := pose.Angle(groundedAnkle, groundedKnee, groundedHip)
	if !ok {
		return false
	}
	return claw >= e.cfg.ClawAngleMargin && claw <= 180-e.cfg.ClawAngleMargin &&
		kneeAngle >= e.cfg.GroundedKneeMinAngle
}
