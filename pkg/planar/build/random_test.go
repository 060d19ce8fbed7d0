package build

import (
	"errors"
	"testing"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/canon"
)

func TestRandomDeterministic(t *testing.T) {
	first, err := Random(7, 25)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	mustValidate(t, first)

	second, err := Random(7, 25)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if eq, err := first.Equal(second); err != nil || !eq {
		t.Errorf("same seed produced %v and %v (err %v)", first, second, err)
	}

	if first.ArcCount() < 26 {
		t.Errorf("ArcCount = %d, want at least one new arc per step", first.ArcCount())
	}
	if n := first.NodeCount(); n < 1 || n > 26 {
		t.Errorf("NodeCount = %d, want within 1..26", n)
	}
}

func TestRandomZeroSteps(t *testing.T) {
	d, err := Random(42, 0)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	want := "Diagram with 1 nodes, 1 arcs, and adjacencies a → V(a1 a0)"
	if d.String() != want {
		t.Errorf("Random(42, 0) = %v, want %v", d, want)
	}
}

func TestRandomNegativeSteps(t *testing.T) {
	if _, err := Random(1, -1); !errors.Is(err, planar.ErrStructure) {
		t.Errorf("Random(1, -1) err = %v, want ErrStructure", err)
	}
}

func TestRandomCanonicalizes(t *testing.T) {
	// Every walk output is fully wired, so canonicalization must succeed.
	for seed := int64(0); seed < 4; seed++ {
		d, err := Random(seed, 12)
		if err != nil {
			t.Fatalf("Random(%d, 12): %v", seed, err)
		}
		mustValidate(t, d)
		c, err := canon.Canonical(d)
		if err != nil {
			t.Fatalf("Canonical of seed %d walk: %v", seed, err)
		}
		if c.NodeCount() != d.NodeCount() || c.ArcCount() != d.ArcCount() {
			t.Errorf("canonical form of seed %d walk resized: %v from %v", seed, c, d)
		}
	}
}
