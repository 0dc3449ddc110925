package discipline

import (
	"math"

	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/motion"
	"github.com/avela/athletiq/internal/pose"
)

// JavelinConfig holds the thresholds for the javelin throw checklist.
// Distances are in image-normalized units, angles in degrees. Most checks
// run over short position histories rather than a single frame, so the
// thresholds describe frame-to-frame movement.
type JavelinConfig struct {
	// Draw-back trend detection over the last strides of the runup.
	DrawBackLastStrides    int     `yaml:"draw_back_last_strides"`
	DrawBackSlopeMax       float64 `yaml:"draw_back_slope_max"`
	DrawBackConsistencyMin float64 `yaml:"draw_back_consistency_min"`
	DrawBackMinSamples     int     `yaml:"draw_back_min_samples"`
	DrawBackMinConfidence  float64 `yaml:"draw_back_min_confidence"`

	// Pelvis rotation with the javelin fully drawn.
	PelvisHipRotationMin float64 `yaml:"pelvis_hip_rotation_min"`
	WristBehindMin       float64 `yaml:"wrist_behind_min"`
	PelvisAngleMax       float64 `yaml:"pelvis_angle_max"`
	VerticalAlignmentMax float64 `yaml:"vertical_alignment_max"`
	HipStabilityMax      float64 `yaml:"hip_stability_max"`
	ShoulderStabilityMax float64 `yaml:"shoulder_stability_max"`
	WristStabilityMax    float64 `yaml:"wrist_stability_max"`

	// Impulse step.
	ImpulseAnkleMin     float64 `yaml:"impulse_ankle_min"`
	ImpulseKneeMax      float64 `yaml:"impulse_knee_max"`
	ImpulseHipMax       float64 `yaml:"impulse_hip_max"`
	ImpulseStabilityMax float64 `yaml:"impulse_stability_max"`

	// Blocking step.
	BlockAnkleMaxX    float64 `yaml:"block_ankle_max_x"`
	BlockAnkleMaxY    float64 `yaml:"block_ankle_max_y"`
	BlockHipMinX      float64 `yaml:"block_hip_min_x"`
	BlockHipMaxY      float64 `yaml:"block_hip_max_y"`
	BlockStabilityMax float64 `yaml:"block_stability_max"`

	// Throw initiation.
	ThrowTorsoMinAngle  float64 `yaml:"throw_torso_min_angle"`
	ThrowWristDropMin   float64 `yaml:"throw_wrist_drop_min"`
	ThrowProgressiveMin float64 `yaml:"throw_progressive_min"`

	// Stride tunes ankle-oscillation stride detection for the runup.
	Stride motion.StrideConfig `yaml:"stride"`
}

// DefaultJavelinConfig returns the hand-tuned javelin thresholds.
func DefaultJavelinConfig() JavelinConfig {
	return JavelinConfig{
		DrawBackLastStrides:    5,
		DrawBackSlopeMax:       -0.1,
		DrawBackConsistencyMin: 0.7,
		DrawBackMinSamples:     10,
		DrawBackMinConfidence:  0.4,

		PelvisHipRotationMin: -0.01,
		WristBehindMin:       0.04,
		PelvisAngleMax:       80,
		VerticalAlignmentMax: 0.1255,
		HipStabilityMax:      0.005,
		ShoulderStabilityMax: 0.005,
		WristStabilityMax:    0.01,

		ImpulseAnkleMin:     0.015,
		ImpulseKneeMax:      0.1,
		ImpulseHipMax:       0.1,
		ImpulseStabilityMax: 0.01,

		BlockAnkleMaxX:    0.0085,
		BlockAnkleMaxY:    0.025,
		BlockHipMinX:      0.01,
		BlockHipMaxY:      0.15,
		BlockStabilityMax: 0.01,

		ThrowTorsoMinAngle:  100,
		ThrowWristDropMin:   -0.15,
		ThrowProgressiveMin: 0.01,

		Stride: motion.DefaultStrideConfig(),
	}
}

// sideTracker accumulates the observed positions of one body side. Points
// are appended only when present, so indices count observations rather
// than frames.
type sideTracker struct {
	shoulder []pose.Point
	wrist    []pose.Point
	hip      []pose.Point
	knee     []pose.Point
	ankle    []pose.Point
}

func (t *sideTracker) observe(kp pose.Keypoints, shoulder, wrist, hip, knee, ankle int) {
	if p := kp.At(shoulder); p != nil {
		t.shoulder = append(t.shoulder, *p)
	}
	if p := kp.At(wrist); p != nil {
		t.wrist = append(t.wrist, *p)
	}
	if p := kp.At(hip); p != nil {
		t.hip = append(t.hip, *p)
	}
	if p := kp.At(knee); p != nil {
		t.knee = append(t.knee, *p)
	}
	if p := kp.At(ankle); p != nil {
		t.ankle = append(t.ankle, *p)
	}
}

// JavelinEvaluator scores the javelin throw technique checklist.
type JavelinEvaluator struct {
	cfg JavelinConfig
}

// NewJavelinThrow creates a javelin evaluator with the given thresholds.
func NewJavelinThrow(cfg JavelinConfig) *JavelinEvaluator {
	return &JavelinEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *JavelinEvaluator) Name() string { return JavelinThrow }

// Criteria implements Evaluator.
func (e *JavelinEvaluator) Criteria() []string {
	return []string{
		"Javelin drawn backwards",
		"Pelvis rotated and javelin is fully drawn backwards",
		"Impulse step executed",
		"Blocking step executed",
		"Throw initiated",
	}
}

// Evaluate implements Evaluator. Both body sides are tracked across the
// sequence; the draw-back criterion is judged once at the end over the
// last detected strides, the others frame by frame as the histories grow.
func (e *JavelinEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	var left, right sideTracker
	for _, f := range seq {
		kp := f.Keypoints
		left.observe(kp, pose.LeftShoulder, pose.LeftWrist, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle)
		right.observe(kp, pose.RightShoulder, pose.RightWrist, pose.RightHip, pose.RightKnee, pose.RightAnkle)

		for _, t := range []*sideTracker{&left, &right} {
			if !r.Passed(2) && e.pelvisRotated(t) {
				r.Satisfy(2, f.Index)
			}
			if !r.Passed(3) && e.impulseStep(t) {
				r.Satisfy(3, f.Index)
			}
			if !r.Passed(4) && e.blockingStep(t) {
				r.Satisfy(4, f.Index)
			}
			if !r.Passed(5) && e.throwInitiated(t) {
				r.Satisfy(5, f.Index)
			}
		}
	}

	strides := motion.AnkleStrides(pointers(left.ankle), pointers(right.ankle), e.cfg.Stride)
	for _, t := range []*sideTracker{&left, &right} {
		if r.Passed(1) {
			break
		}
		if e.drawnBackward(t, strides) {
			last := len(strides) - 1
			first := last - (e.cfg.DrawBackLastStrides - 1)
			if first < 0 {
				first = 0
			}
			for frame := strides[first].Start; frame <= strides[last].End; frame++ {
				r.Observe(1, frame)
			}
			r.Pass(1)
		}
	}

	return r
}

// drawnBackward fits a trend to the shoulder-to-wrist horizontal offset
// across the last strides of the runup. A steadily growing draw (negative
// slope with the wrist mostly behind the shoulder) passes.
func (e *JavelinEvaluator) drawnBackward(t *sideTracker, strides []motion.Interval) bool {
	if len(strides) == 0 {
		return false
	}

	first := len(strides) - e.cfg.DrawBackLastStrides
	if first < 0 {
		first = 0
	}
	start := strides[first].Start - 5
	if start < 0 {
		start = 0
	}
	end := strides[len(strides)-1].End + 5

	var rel []float64
	for i := start; i <= end && i < len(t.shoulder); i++ {
		if i >= len(t.wrist) {
			break
		}
		if t.shoulder[i].Confidence < e.cfg.DrawBackMinConfidence ||
			t.wrist[i].Confidence < e.cfg.DrawBackMinConfidence {
			continue
		}
		rel = append(rel, t.shoulder[i].X-t.wrist[i].X)
	}
	if len(rel) < e.cfg.DrawBackMinSamples {
		return false
	}

	behind := 0
	for _, v := range rel {
		if v > 0 {
			behind++
		}
	}
	ratio := float64(behind) / float64(len(rel))

	return motion.TrendSlope(rel) < e.cfg.DrawBackSlopeMax && ratio >= e.cfg.DrawBackConsistencyMin
}

// pelvisRotated checks that the hip turns inward while the wrist stays
// behind the shoulder and the torso remains upright and steady.
func (e *JavelinEvaluator) pelvisRotated(t *sideTracker) bool {
	if len(t.hip) < 3 || len(t.shoulder) < 3 || len(t.wrist) < 3 {
		return false
	}

	hip := t.hip[len(t.hip)-1]
	shoulder := t.shoulder[len(t.shoulder)-1]
	wrist := t.wrist[len(t.wrist)-1]

	hipMove, _ := motion.DeltaX(t.hip)
	if hipMove < e.cfg.PelvisHipRotationMin {
		return false
	}
	if shoulder.X-wrist.X < e.cfg.WristBehindMin {
		return false
	}
	pelvisAngle, ok := pose.Angle(&hip, &shoulder, &wrist)
	if !ok || pelvisAngle > e.cfg.PelvisAngleMax {
		return false
	}
	if math.Abs(hip.Y-shoulder.Y) > e.cfg.VerticalAlignmentMax {
		return false
	}

	hipStab, _ := motion.StabilityX(t.hip)
	shoulderStab, _ := motion.StabilityX(t.shoulder)
	wristStab, _ := motion.StabilityX(t.wrist)
	return hipStab <= e.cfg.HipStabilityMax &&
		shoulderStab <= e.cfg.ShoulderStabilityMax &&
		wristStab <= e.cfg.WristStabilityMax
}

// impulseStep checks that the ankle drives ahead of the knee and hip in
// one controlled step.
func (e *JavelinEvaluator) impulseStep(t *sideTracker) bool {
	if len(t.ankle) < 3 || len(t.knee) < 3 || len(t.hip) < 3 {
		return false
	}

	ankleMove, _ := motion.DeltaX(t.ankle)
	kneeMove, _ := motion.DeltaX(t.knee)
	hipMove, _ := motion.DeltaX(t.hip)

	if !(ankleMove > kneeMove && kneeMove > hipMove) {
		return false
	}
	if ankleMove < e.cfg.ImpulseAnkleMin {
		return false
	}
	if kneeMove > e.cfg.ImpulseKneeMax || hipMove > e.cfg.ImpulseHipMax {
		return false
	}

	ankleStab, _ := motion.StabilityX(t.ankle)
	kneeStab, _ := motion.StabilityX(t.knee)
	hipStab, _ := motion.StabilityX(t.hip)
	return ankleStab <= e.cfg.ImpulseStabilityMax &&
		kneeStab <= e.cfg.ImpulseStabilityMax &&
		hipStab <= e.cfg.ImpulseStabilityMax
}

// blockingStep checks that the front ankle plants while the hips keep
// driving forward over it.
func (e *JavelinEvaluator) blockingStep(t *sideTracker) bool {
	if len(t.ankle) < 3 || len(t.hip) < 3 {
		return false
	}

	ankleMoveX, _ := motion.DeltaX(t.ankle)
	ankleMoveY, _ := motion.DeltaY(t.ankle)
	hipMoveX, _ := motion.DeltaX(t.hip)
	hipMoveY, _ := motion.DeltaY(t.hip)

	if math.Abs(ankleMoveX) > e.cfg.BlockAnkleMaxX || math.Abs(ankleMoveY) > e.cfg.BlockAnkleMaxY {
		return false
	}
	if math.Abs(hipMoveX) < e.cfg.BlockHipMinX || math.Abs(hipMoveY) > e.cfg.BlockHipMaxY {
		return false
	}

	ankleStabX, _ := motion.StabilityX(t.ankle)
	ankleStabY, _ := motion.StabilityY(t.ankle)
	hipStabX, _ := motion.StabilityX(t.hip)
	hipStabY, _ := motion.StabilityY(t.hip)
	return ankleStabX <= e.cfg.BlockStabilityMax && ankleStabY <= e.cfg.BlockStabilityMax &&
		hipStabX <= e.cfg.BlockStabilityMax && hipStabY <= e.cfg.BlockStabilityMax
}

// throwInitiated checks that the torso opens and the whole chain moves
// forward with the wrist staying high.
func (e *JavelinEvaluator) throwInitiated(t *sideTracker) bool {
	if len(t.hip) < 2 || len(t.shoulder) < 2 || len(t.wrist) < 2 {
		return false
	}

	hip := t.hip[len(t.hip)-1]
	shoulder := t.shoulder[len(t.shoulder)-1]
	wrist := t.wrist[len(t.wrist)-1]

	torsoAngle, ok := pose.Angle(&hip, &shoulder, &wrist)
	if !ok || torsoAngle < e.cfg.ThrowTorsoMinAngle {
		return false
	}
	if wrist.Y-shoulder.Y < e.cfg.ThrowWristDropMin {
		return false
	}

	hipMove, _ := motion.ProgressiveX(t.hip)
	shoulderMove, _ := motion.ProgressiveX(t.shoulder)
	wristMove, _ := motion.ProgressiveX(t.wrist)
	return math.Abs(hipMove) >= e.cfg.ThrowProgressiveMin &&
		math.Abs(shoulderMove) >= e.cfg.ThrowProgressiveMin &&
		math.Abs(wristMove) >= e.cfg.ThrowProgressiveMin
}

// pointers adapts a position history to the stride detector's view.
func pointers(pts []pose.Point) []*pose.Point {
	out := make([]*pose.Point, len(pts))
	for i := range pts {
		out[i] = &pts[i]
	}
	return out
}
