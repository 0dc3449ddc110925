// Package track turns raw multi-person tracker output into the
// single-athlete frame sequence the evaluators consume.
package track

import (
	"sort"

	"github.com/avela/athletiq/internal/pose"
)

// Person is one tracked detection within a frame.
type Person struct {
	TrackID   int            `json:"track_id"`
	Box       *pose.Box      `json:"box,omitempty"`
	Keypoints pose.Keypoints `json:"keypoints"`
}

// Detection is the tracker output for one video frame. Frames without any
// detected person carry an empty person list.
type Detection struct {
	Frame   int      `json:"frame"`
	Persons []Person `json:"persons"`
}

// BuildSequence extracts the frame history of one tracked player from the
// full tracker output. Frames where the player was not detected are
// omitted, so the sequence keeps the original frame numbering with gaps.
// includeBox controls whether bounding boxes are carried over; disciplines
// that never look at the box skip the copy.
func BuildSequence(playerID int, detections []Detection, includeBox bool) pose.Sequence {
	var seq pose.Sequence
	for _, d := range detections {
		for _, p := range d.Persons {
			if p.TrackID != playerID {
				continue
			}
			f := pose.Frame{Index: d.Frame, Keypoints: p.Keypoints}
			if includeBox {
				f.Box = p.Box
			}
			seq = append(seq, f)
			break
		}
	}
	return seq
}

// PlayerIDs returns the distinct tracking IDs seen across the detections,
// sorted ascending. The front end offers these for player selection.
func PlayerIDs(detections []Detection) []int {
	seen := make(map[int]bool)
	for _, d := range detections {
		for _, p := range d.Persons {
			seen[p.TrackID] = true
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
