package discipline

import (
	"github.com/avela/athletiq/internal/pose"
)

// point builds a fully confident keypoint.
func point(x, y float64) *pose.Point {
	return &pose.Point{X: x, Y: y, Confidence: 1}
}

// keypointSet builds a full COCO-17 keypoint list with only the given
// landmarks present.
func keypointSet(set map[int]*pose.Point) pose.Keypoints {
	kp := make(pose.Keypoints, pose.NumKeypoints)
	for idx, p := range set {
		kp[idx] = p
	}
	return kp
}

// sequenceOf wraps keypoint sets into a sequence with consecutive frame
// indices.
func sequenceOf(sets ...pose.Keypoints) pose.Sequence {
	seq := make(pose.Sequence, len(sets))
	for i, kp := range sets {
		seq[i] = pose.Frame{Index: i, Keypoints: kp}
	}
	return seq
}

// repeatFrames appends n frames with identical keypoints, continuing the
// frame numbering of seq.
func repeatFrames(seq pose.Sequence, kp pose.Keypoints, n int) pose.Sequence {
	for i := 0; i < n; i++ {
		seq = append(seq, pose.Frame{Index: len(seq), Keypoints: kp})
	}
	return seq
}

// boxFrame builds a frame with only a bounding box centered at (cx, cy).
func boxFrame(idx int, cx, cy float64) pose.Frame {
	return pose.Frame{
		Index: idx,
		Box:   &pose.Box{X1: cx - 50, Y1: cy - 100, X2: cx + 50, Y2: cy + 100},
	}
}
