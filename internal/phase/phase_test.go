package phase

import (
	"testing"

	"github.com/avela/athletiq/internal/pose"
)

func sequence(n int) pose.Sequence {
	seq := make(pose.Sequence, n)
	for i := range seq {
		seq[i] = pose.Frame{Index: i}
	}
	return seq
}

func TestSplit_PartitionInvariant(t *testing.T) {
	// For any length and phase count the slices must be pairwise disjoint
	// and reconstruct the original sequence in order.
	for _, total := range []int{0, 1, 2, 3, 4, 5, 7, 9, 10, 100, 101} {
		for _, k := range []int{3, 4} {
			names := []string{"a", "b", "c", "d"}[:k]
			phases := Split(sequence(total), names...)

			if len(phases) != k {
				t.Fatalf("total=%d k=%d: expected %d phases, got %d", total, k, k, len(phases))
			}

			next := 0
			for _, p := range phases {
				for _, f := range p.Frames {
					if f.Index != next {
						t.Fatalf("total=%d k=%d: expected frame %d, got %d", total, k, next, f.Index)
					}
					next++
				}
			}
			if next != total {
				t.Errorf("total=%d k=%d: phases cover %d frames", total, k, next)
			}
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	phases := Split(nil, "swing", "turn", "throw")
	for _, p := range phases {
		if len(p.Frames) != 0 {
			t.Errorf("expected empty phase %q", p.Name)
		}
	}
}

func TestThirds(t *testing.T) {
	prep, transition, release := Thirds(sequence(9), "preparation", "transition", "release")

	if len(prep.Frames) != 3 || len(transition.Frames) != 3 || len(release.Frames) != 3 {
		t.Fatalf("expected 3/3/3 split, got %d/%d/%d",
			len(prep.Frames), len(transition.Frames), len(release.Frames))
	}
	if prep.Name != "preparation" || release.Name != "release" {
		t.Error("phase names not preserved")
	}
	if prep.Frames[0].Index != 0 || transition.Frames[0].Index != 3 || release.Frames[0].Index != 6 {
		t.Error("phase boundaries misplaced")
	}
}

func TestQuarters(t *testing.T) {
	a, b, c, d := Quarters(sequence(10), "runup", "takeoff", "flight", "landing")

	got := []int{len(a.Frames), len(b.Frames), len(c.Frames), len(d.Frames)}
	want := []int{2, 3, 2, 3} // integer-division boundaries at 2, 5, 7
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected quarter sizes %v, got %v", want, got)
		}
	}
}
