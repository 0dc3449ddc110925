package discipline

import (
	"math"

	"github.com/avela/athletiq/internal/criteria"
	"github.com/avela/athletiq/internal/phase"
	"github.com/avela/athletiq/internal/pose"
)

// ShotPutConfig holds the thresholds for the shot put checklist.
// Distances are in image-normalized units, angles in degrees.
type ShotPutConfig struct {
	// GlideKneeMaxAngle is the folded right knee limit at the start of
	// the glide.
	GlideKneeMaxAngle float64 `yaml:"glide_knee_max_angle"`

	// FacingAwayMinOrientation is the minimum absolute shoulder line
	// orientation that counts as facing away from the throwing direction.
	FacingAwayMinOrientation float64 `yaml:"facing_away_min_orientation"`

	// PushLegMaxAngle is the left knee limit during the push off.
	PushLegMaxAngle float64 `yaml:"push_leg_max_angle"`

	// PowerRightKneeMinAngle and PowerLeftKneeMaxAngle describe the
	// staggered power position stance.
	PowerRightKneeMinAngle float64 `yaml:"power_right_knee_min_angle"`
	PowerLeftKneeMaxAngle  float64 `yaml:"power_left_knee_max_angle"`

	// PutElbowMinAngle and PutTorsoMinAngle describe the opened torso
	// and extended arms during the put.
	PutElbowMinAngle float64 `yaml:"put_elbow_min_angle"`
	PutTorsoMinAngle float64 `yaml:"put_torso_min_angle"`

	// ReleaseMaxWristNoseDistance keeps the shot at the neck until
	// release, ReleaseOrientationMin/Max bound the release direction of
	// the putting arm.
	ReleaseMaxWristNoseDistance float64 `yaml:"release_max_wrist_nose_distance"`
	ReleaseOrientationMin       float64 `yaml:"release_orientation_min"`
	ReleaseOrientationMax       float64 `yaml:"release_orientation_max"`
}

// DefaultShotPutConfig returns the hand-tuned shot put thresholds.
func DefaultShotPutConfig() ShotPutConfig {
	return ShotPutConfig{
		GlideKneeMaxAngle:           120,
		FacingAwayMinOrientation:    70,
		PushLegMaxAngle:             160,
		PowerRightKneeMinAngle:      140,
		PowerLeftKneeMaxAngle:       160,
		PutElbowMinAngle:            160,
		PutTorsoMinAngle:            30,
		ReleaseMaxWristNoseDistance: 0.05,
		ReleaseOrientationMin:       30,
		ReleaseOrientationMax:       60,
	}
}

// ShotPutEvaluator scores the glide shot put technique checklist.
type ShotPutEvaluator struct {
	cfg ShotPutConfig
}

// NewShotPut creates a shot put evaluator with the given thresholds.
func NewShotPut(cfg ShotPutConfig) *ShotPutEvaluator {
	return &ShotPutEvaluator{cfg: cfg}
}

// Name implements Evaluator.
func (e *ShotPutEvaluator) Name() string { return ShotPut }

// Criteria implements Evaluator.
func (e *ShotPutEvaluator) Criteria() []string {
	return []string{
		"Initiate the glide phase from a folded low leg, facing away from the throwing direction",
		"Push off flat with the left leg during the glide",
		"Arrive in the power position with a staggered stance",
		"Open the torso and extend the arms during the put",
		"Release the shot from the neck over the putting arm",
	}
}

// Evaluate implements Evaluator. The sequence is split into preparation,
// transition and release thirds; every qualifying frame of a criterion is
// recorded.
func (e *ShotPutEvaluator) Evaluate(seq pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	preparation, transition, release := phase.Thirds(seq, "preparation", "transition", "release")
	r.Merge(e.preparation(preparation.Frames))
	r.Merge(e.transition(transition.Frames))
	r.Merge(e.release(release.Frames))

	return r
}

func (e *ShotPutEvaluator) preparation(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints

		rightKnee, rok := pose.Angle(kp.At(pose.RightHip), kp.At(pose.RightKnee), kp.At(pose.RightAnkle))
		orientation, ook := pose.Orientation(kp.At(pose.LeftShoulder), kp.At(pose.RightShoulder))
		if rok && ook && rightKnee < e.cfg.GlideKneeMaxAngle &&
			math.Abs(orientation) > e.cfg.FacingAwayMinOrientation {
			r.Satisfy(1, f.Index)
		}
	}
	return r
}

func (e *ShotPutEvaluator) transition(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints

		rightKnee, rok := pose.Angle(kp.At(pose.RightHip), kp.At(pose.RightKnee), kp.At(pose.RightAnkle))
		leftKnee, lok := pose.Angle(kp.At(pose.LeftHip), kp.At(pose.LeftKnee), kp.At(pose.LeftAnkle))

		// The flat hop pulls the assisting leg under the pelvis.
		if lok && leftKnee < e.cfg.PushLegMaxAngle {
			r.Satisfy(2, f.Index)
		}

		if rok && lok && rightKnee >= e.cfg.PowerRightKneeMinAngle && leftKnee < e.cfg.PowerLeftKneeMaxAngle {
			r.Satisfy(3, f.Index)
		}
	}
	return r
}

func (e *ShotPutEvaluator) release(frames pose.Sequence) *criteria.Report {
	r := criteria.NewReport(e.Criteria())

	for _, f := range frames {
		kp := f.Keypoints

		leftElbow, lok := pose.Angle(kp.At(pose.LeftShoulder), kp.At(pose.LeftElbow), kp.At(pose.LeftWrist))
		rightElbow, rok := pose.Angle(kp.At(pose.RightShoulder), kp.At(pose.RightElbow), kp.At(pose.RightWrist))
		torso, tok := pose.Angle(kp.At(pose.LeftShoulder), kp.At(pose.LeftHip), kp.At(pose.RightShoulder))
		if lok && rok && tok &&
			leftElbow > e.cfg.PutElbowMinAngle && rightElbow > e.cfg.PutElbowMinAngle &&
			torso > e.cfg.PutTorsoMinAngle {
			r.Satisfy(4, f.Index)
		}

		dist, dok := pose.Distance(kp.At(pose.RightWrist), kp.At(pose.Nose))
		orientation, ook := pose.Orientation(kp.At(pose.RightShoulder), kp.At(pose.RightWrist))
		if dok && ook && dist < e.cfg.ReleaseMaxWristNoseDistance &&
			orientation >= e.cfg.ReleaseOrientationMin && orientation <= e.cfg.ReleaseOrientationMax {
			r.Satisfy(5, f.Index)
		}
	}
	return r
}
