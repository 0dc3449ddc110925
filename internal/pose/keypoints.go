// Package pose provides the keypoint convention and 2D geometry shared by
// all discipline evaluators.
package pose

// Body keypoint indices following the COCO convention used by the upstream
// pose tracker. Keypoint coordinates are image-normalized (0-1) with the
// origin at the top-left corner, so smaller Y means higher in the image.
const (
	Nose          = 0
	LeftEye       = 1
	RightEye      = 2
	LeftEar       = 3
	RightEar      = 4
	LeftShoulder  = 5
	RightShoulder = 6
	LeftElbow     = 7
	RightElbow    = 8
	LeftWrist     = 9
	RightWrist    = 10
	LeftHip       = 11
	RightHip      = 12
	LeftKnee      = 13
	RightKnee     = 14
	LeftAnkle     = 15
	RightAnkle    = 16
	NumKeypoints  = 17
)

// Point represents a detected 2D keypoint. Confidence is optional and zero
// when the extraction mode does not produce one.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Keypoints holds the keypoints of one person in one frame, indexed by the
// COCO constants above. An entry may be nil when the tracker did not detect
// that landmark.
type Keypoints []*Point

// At returns the keypoint at the given index, or nil when the index is out
// of range or the landmark was not detected. It never panics; downstream
// geometry treats nil as "this frame does not contribute".
func (k Keypoints) At(idx int) *Point {
	if idx < 0 || idx >= len(k) {
		return nil
	}
	return k[idx]
}

// Box is an axis-aligned bounding box in pixel coordinates.
type Box struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Frame is one tracked observation of the selected athlete: the video frame
// index, the detected keypoints, and the optional bounding box.
type Frame struct {
	Index     int       `json:"frame"`
	Keypoints Keypoints `json:"keypoints"`
	Box       *Box      `json:"box,omitempty"`
}

// Sequence is the ordered frame history of exactly one tracked athlete for
// the duration of a video. It is the sole input to every evaluator and is
// never mutated by one.
type Sequence []Frame
