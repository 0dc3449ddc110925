package discipline

import (
	"reflect"
	"testing"

	"github.com/avela/athletiq/internal/pose"
)

func TestRegistry_ListsAllDisciplines(t *testing.T) {
	r := NewRegistry()

	want := []string{
		SprintStart, SprintRunning, LongJump, HighJump,
		ShotPut, DiscusThrow, JavelinThrow, Hurdling,
	}

	var got []string
	for _, e := range r.List() {
		got = append(got, e.Name())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected disciplines %v, got %v", want, got)
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	e, ok := r.Get(ShotPut)
	if !ok {
		t.Fatal("expected shot put evaluator to be registered")
	}
	if e.Name() != ShotPut {
		t.Errorf("expected name %q, got %q", ShotPut, e.Name())
	}

	if _, ok := r.Get("pole_vault"); ok {
		t.Error("expected lookup of unknown discipline to fail")
	}
}

func TestRegistry_ReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(NewShotPut(ShotPutConfig{GlideKneeMaxAngle: 90}))

	var names []string
	for _, e := range r.List() {
		names = append(names, e.Name())
	}
	if names[4] != ShotPut {
		t.Errorf("expected shot put to keep position 4, got order %v", names)
	}
}

func TestEvaluate_EmptySequenceScoresZero(t *testing.T) {
	for _, e := range NewRegistry().List() {
		report := e.Evaluate(nil)

		if len(report.Scores) != len(e.Criteria()) {
			t.Errorf("%s: expected %d scores, got %d", e.Name(), len(e.Criteria()), len(report.Scores))
		}
		for name, score := range report.Scores {
			if score != 0 {
				t.Errorf("%s: expected score 0 for %q on empty input, got %d", e.Name(), name, score)
			}
		}
		for criterion, frames := range report.Frames {
			if len(frames) != 0 {
				t.Errorf("%s: expected no frames for criterion %d on empty input, got %v", e.Name(), criterion, frames)
			}
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	// The same sequence evaluated twice must produce identical reports.
	kp := keypointSet(map[int]*pose.Point{
		pose.Nose:          point(0.5, 0.45),
		pose.LeftEar:       point(0.40, 0.42),
		pose.RightEar:      point(0.40, 0.42),
		pose.LeftShoulder:  point(0.5, 0.46),
		pose.RightShoulder: point(0.5, 0.46),
		pose.LeftHip:       point(0.6, 0.5),
		pose.RightHip:      point(0.6, 0.5),
		pose.LeftKnee:      point(0.6, 0.7),
		pose.RightKnee:     point(0.55, 0.7),
		pose.LeftAnkle:     point(0.6, 0.9),
		pose.RightAnkle:    point(0.7, 0.72),
	})
	seq := repeatFrames(nil, kp, 12)

	for _, e := range NewRegistry().List() {
		first := e.Evaluate(seq)
		second := e.Evaluate(seq)

		if !reflect.DeepEqual(first.Scores, second.Scores) {
			t.Errorf("%s: scores differ between runs: %v vs %v", e.Name(), first.Scores, second.Scores)
		}
		if !reflect.DeepEqual(first.Frames, second.Frames) {
			t.Errorf("%s: frames differ between runs: %v vs %v", e.Name(), first.Frames, second.Frames)
		}
	}
}
