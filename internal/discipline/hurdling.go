package discipline

import (
	"math"

	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/motion"
	"github.com/avela/athletiq/internal/pose"
)

// HurdlingConfig holds the thresholds for the hurdling checklist.
// Distances are in image-normalized units, angles in degrees.
type HurdlingConfig struct {
	// StrideDisplacementThreshold is the minimum mid-ankle displacement
	// peak that counts as a stride; ContactDisplacementThreshold is the
	// lower bar for ground contacts between hurdles.
	StrideDisplacementThreshold  float64 `yaml:"stride_displacement_threshold"`
	ContactDisplacementThreshold float64 `yaml:"contact_displacement_threshold"`

	// RequiredStrides is the approach stride count, RequiredContacts the
	// contact count between hurdles.
	RequiredStrides  int `yaml:"required_strides"`
	RequiredContacts int `yaml:"required_contacts"`

	// LeadLegStraightMinAngle and LeadLegMinHeight describe the lead leg
	// clearing the hurdle.
	LeadLegStraightMinAngle float64 `yaml:"lead_leg_straight_min_angle"`
	LeadLegMinHeight        float64 `yaml:"lead_leg_min_height"`

	// TorsoMaxOffset is the maximum horizontal shoulder-to-lead-knee
	// offset while attacking the hurdle.
	TorsoMaxOffset float64 `yaml:"torso_max_offset"`

	// LargeStrideMin and HighKneeMinHeight describe the second contact
	// after the hurdle.
	LargeStrideMin    float64 `yaml:"large_stride_min"`
	HighKneeMinHeight float64 `yaml:"high_knee_min_height"`
}

// DefaultHurdlingConfig returns the hand-tuned hurdling thresholds.
func DefaultHurdlingConfig() HurdlingConfig {
	return HurdlingConfig{
		StrideDisplacementThreshold:  0.05,
		ContactDisplacementThreshold: 0.03,
		RequiredStrides:              8,
		RequiredContacts:             4,
		LeadLegStraightMinAngle:      160,
		LeadLegMinHeight:             0.05,
		TorsoMaxOffset:               0.1,
		LargeStrideMin:               0.1,
		HighKneeMinHeight:            0.15,
	}
}

// HurdlingEvaluator scores the hurdling technique checklist.
type HurdlingEvaluator struct {
	cfg HurdlingConfig
}

// NewHurdling creates a hurdling evaluator with the given thresholds.
func NewHurdling(cfg HurdlingConfig) *HurdlingEvaluator {
	return &HurdlingEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *HurdlingEvaluator) Name() string { return Hurdling }

// Criteria implements Evaluator.
func (e *HurdlingEvaluator) Criteria() []string {
	return []string{
		"Approach in eight strides",
		"Four contacts between hurdles",
		"Lead leg passes straight above the hurdle",
		"Torso and opposite arm drive toward the lead leg",
		"Large second contact with a high knee",
	}
}

// Evaluate implements Evaluator. Frames missing any of the midpoints are
// skipped entirely; stride events are re-detected as the ankle history
// grows so the counts are judged against the approach seen so far.
func (e *HurdlingEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	var ankles, knees []pose.Point

	for _, f := range seq {
		kp := f.Keypoints

		leftKnee, rightKnee := kp.At(pose.LeftKnee), kp.At(pose.RightKnee)
		midAnkle := pose.Midpoint(kp.At(pose.LeftAnkle), kp.At(pose.RightAnkle))
		midKnee := pose.Midpoint(leftKnee, rightKnee)
		midShoulder := pose.Midpoint(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
		midElbow := pose.Midpoint(kp.At(pose.LeftElbow), kp.At(pose.RightElbow))
		if midAnkle == nil || midKnee == nil || midShoulder == nil || midElbow == nil {
			continue
		}

		ankles = append(ankles, *midAnkle)
		knees = append(knees, *midKnee)

		// The forward knee leads into the hurdle.
		leadKnee, leadHip, leadAnkle := leftKnee, kp.At(pose.LeftHip), kp.At(pose.LeftAnkle)
		if rightKnee.X < leftKnee.X {
			leadKnee, leadHip, leadAnkle = rightKnee, kp.At(pose.RightHip), kp.At(pose.RightAnkle)
		}

		// Criterion 1: approach stride count.
		if len(motion.DisplacementStrides(ankles, e.cfg.StrideDisplacementThreshold)) == e.cfg.RequiredStrides {
			r.Satisfy(1, f.Index)
		}

		// Criterion 2: ground contacts between hurdles.
		if len(motion.DisplacementStrides(ankles, e.cfg.ContactDisplacementThreshold)) == e.cfg.RequiredContacts {
			r.Satisfy(2, f.Index)
		}

		// Criterion 3: lead leg straight and clearing the hurdle.
		if e.leadLegClears(leadHip, leadKnee, leadAnkle, midAnkle) {
			r.Satisfy(3, f.Index)
		}

		// Criterion 4: torso over the lead knee, opposite arm reaching
		// past it.
		if math.Abs(midShoulder.X-leadKnee.X) < e.cfg.TorsoMaxOffset && midElbow.X < leadKnee.X {
			r.Satisfy(4, f.Index)
		}

		// Criterion 5: second contact with a large stride and the knee
		// held high above the ankle.
		if e.secondContact(ankles, knees) {
			r.Satisfy(5, f.Index)
		}
	}

	return r
}

// leadLegClears checks that the lead leg is extended and the knee rides
// above the mid-ankle line by the hurdle clearance margin.
func (e *HurdlingEvaluator) leadLegClears(leadHip, leadKnee, leadAnkle, midAnkle *pose.Point) bool {
	angle, ok := pose.Angle(leadHip, leadKnee, leadAnkle)
	if !ok {
		return false
	}
	return angle >= e.cfg.LeadLegStraightMinAngle &&
		midAnkle.Y-leadKnee.Y > e.cfg.LeadLegMinHeight
}

// secondContact checks the latest stride length and knee lift.
func (e *HurdlingEvaluator) secondContact(ankles, knees []pose.Point) bool {
	if len(ankles) < 2 || len(knees) < 1 {
		return false
	}
	last, prev := ankles[len(ankles)-1], ankles[len(ankles)-2]
	stride := math.Hypot(last.X-prev.X, last.Y-prev.Y)
	knee := knees[len(knees)-1]
	return stride > e.cfg.LargeStrideMin && last.Y-knee.Y > e.cfg.HighKneeMinHeight
}
