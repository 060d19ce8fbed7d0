package planar

import (
	"errors"
	"testing"
)

func TestRemoveBivalentVertex(t *testing.T) {
	d := testPath(t, "a", "b", "c")
	removed, err := RemoveBivalentVertex(d, NameOf("b"), BivalentOptions{})
	if err != nil {
		t.Fatalf("RemoveBivalentVertex: %v", err)
	}
	if !removed {
		t.Fatal("vertex b not removed")
	}
	mustValidate(t, d)
	equal, err := d.Equal(testPath(t, "a", "c"))
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !equal {
		t.Errorf("spliced path = %s, want a-c", d)
	}
}

func TestRemoveBivalentVertexErrors(t *testing.T) {
	d := New(nil)
	if err := d.AddVertex(NameOf("v"), 3, nil); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := d.AddCrossing(NameOf("x"), nil); err != nil {
		t.Fatalf("AddCrossing: %v", err)
	}
	if _, err := RemoveBivalentVertex(d, NameOf("v"), BivalentOptions{}); !errors.Is(err, ErrTypeViolation) {
		t.Errorf("degree-3 vertex error = %v, want ErrTypeViolation", err)
	}
	if _, err := RemoveBivalentVertex(d, NameOf("x"), BivalentOptions{}); !errors.Is(err, ErrTypeViolation) {
		t.Errorf("crossing error = %v, want ErrTypeViolation", err)
	}
	if _, err := RemoveBivalentVertex(d, NameOf("zz"), BivalentOptions{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing node error = %v, want ErrNotFound", err)
	}
}

func TestRemoveBivalentVertexTrivialLoop(t *testing.T) {
	d := testCycle(t, "a")
	removed, err := RemoveBivalentVertex(d, NameOf("a"), BivalentOptions{})
	if err != nil {
		t.Fatalf("RemoveBivalentVertex: %v", err)
	}
	if removed {
		t.Error("sole loop vertex removed without RemoveLoops")
	}
	if !d.HasNode(NameOf("a")) {
		t.Fatal("loop vertex vanished")
	}

	removed, err = RemoveBivalentVertex(d, NameOf("a"), BivalentOptions{RemoveLoops: true})
	if err != nil {
		t.Fatalf("RemoveBivalentVertex: %v", err)
	}
	if !removed {
		t.Error("loop vertex kept despite RemoveLoops")
	}
	if got := d.NodeCount(); got != 0 {
		t.Errorf("NodeCount() = %d, want 0", got)
	}
}

func TestRemoveBivalentVertexOrientation(t *testing.T) {
	t.Run("PassingStrand", func(t *testing.T) {
		d := New(nil)
		for _, n := range []string{"a", "c"} {
			if err := d.AddVertex(NameOf(n), 1, nil); err != nil {
				t.Fatalf("AddVertex: %v", err)
			}
		}
		if err := d.AddVertex(NameOf("b"), 2, nil); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
		if err := d.SetOrientedArc(At(NameOf("a"), 0), At(NameOf("b"), 0)); err != nil {
			t.Fatalf("SetOrientedArc: %v", err)
		}
		if err := d.SetOrientedArc(At(NameOf("b"), 1), At(NameOf("c"), 0)); err != nil {
			t.Fatalf("SetOrientedArc: %v", err)
		}

		removed, err := RemoveBivalentVertex(d, NameOf("b"), BivalentOptions{})
		if err != nil {
			t.Fatalf("RemoveBivalentVertex: %v", err)
		}
		if !removed {
			t.Fatal("passing strand vertex not spliced")
		}
		mustValidate(t, d)
		if !d.IsOriented() {
			t.Error("splice lost the orientation")
		}
		out, err := d.EndpointAt(At(NameOf("a"), 0))
		if err != nil {
			t.Fatalf("EndpointAt: %v", err)
		}
		if out.Orient != Outgoing {
			t.Errorf("endpoint at a0 is %s, want out", out.Orient)
		}
	})
	t.Run("SinkSkipped", func(t *testing.T) {
		d := New(nil)
		for _, n := range []string{"a", "c"} {
			if err := d.AddVertex(NameOf(n), 1, nil); err != nil {
				t.Fatalf("AddVertex: %v", err)
			}
		}
		if err := d.AddVertex(NameOf("b"), 2, nil); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
		// Both strands run into b, so splicing would break coherence.
		if err := d.SetOrientedArc(At(NameOf("a"), 0), At(NameOf("b"), 0)); err != nil {
			t.Fatalf("SetOrientedArc: %v", err)
		}
		if err := d.SetOrientedArc(At(NameOf("c"), 0), At(NameOf("b"), 1)); err != nil {
			t.Fatalf("SetOrientedArc: %v", err)
		}

		removed, err := RemoveBivalentVertex(d, NameOf("b"), BivalentOptions{})
		if err != nil {
			t.Fatalf("RemoveBivalentVertex: %v", err)
		}
		if removed {
			t.Error("orientation-incoherent splice not skipped")
		}
		if !d.HasNode(NameOf("b")) {
			t.Error("skipped vertex vanished")
		}
	})
}

func TestRemoveBivalentVertexMatchAttributes(t *testing.T) {
	build := func(t *testing.T) *Diagram {
		d := testPath(t, "a", "b", "c")
		// Recolor the endpoint at b0 so the two endpoints at b differ.
		if err := d.SetEndpoint(At(NameOf("a"), 0), At(NameOf("b"), 0), Unoriented, Attrs{AttrColor: IntValue(1)}); err != nil {
			t.Fatalf("SetEndpoint: %v", err)
		}
		return d
	}

	d := build(t)
	removed, err := RemoveBivalentVertex(d, NameOf("b"), BivalentOptions{MatchAttributes: true})
	if err != nil {
		t.Fatalf("RemoveBivalentVertex: %v", err)
	}
	if removed {
		t.Error("mismatched attributes spliced despite MatchAttributes")
	}

	d = build(t)
	removed, err = RemoveBivalentVertex(d, NameOf("b"), BivalentOptions{})
	if err != nil {
		t.Fatalf("RemoveBivalentVertex: %v", err)
	}
	if !removed {
		t.Error("splice refused without MatchAttributes")
	}
}

func TestRemoveBivalentVertices(t *testing.T) {
	t.Run("Chain", func(t *testing.T) {
		d := testPath(t, "a", "b", "c", "d", "e")
		n, err := RemoveBivalentVertices(d, BivalentOptions{})
		if err != nil {
			t.Fatalf("RemoveBivalentVertices: %v", err)
		}
		if n != 3 {
			t.Errorf("removed = %d, want 3", n)
		}
		mustValidate(t, d)
		equal, err := d.Equal(testPath(t, "a", "e"))
		if err != nil {
			t.Fatalf("Equal: %v", err)
		}
		if !equal {
			t.Errorf("collapsed chain = %s, want a-e", d)
		}
	})
	t.Run("CycleLeavesLoop", func(t *testing.T) {
		d := testCycle(t, "a", "b", "c")
		n, err := RemoveBivalentVertices(d, BivalentOptions{})
		if err != nil {
			t.Fatalf("RemoveBivalentVertices: %v", err)
		}
		if n != 2 {
			t.Errorf("removed = %d, want 2", n)
		}
		mustValidate(t, d)
		if got := d.NodeCount(); got != 1 {
			t.Errorf("NodeCount() = %d, want 1", got)
		}
		if got := d.ArcCount(); got != 1 {
			t.Errorf("ArcCount() = %d, want 1", got)
		}
	})
	t.Run("CycleRemoveLoops", func(t *testing.T) {
		d := testCycle(t, "a", "b", "c")
		n, err := RemoveBivalentVertices(d, BivalentOptions{RemoveLoops: true})
		if err != nil {
			t.Fatalf("RemoveBivalentVertices: %v", err)
		}
		if n != 3 {
			t.Errorf("removed = %d, want 3", n)
		}
		if got := d.NodeCount(); got != 0 {
			t.Errorf("NodeCount() = %d, want 0", got)
		}
	})
}
