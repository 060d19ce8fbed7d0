package planar

import (
	"errors"
	"testing"
)

func TestDiagramCompare(t *testing.T) {
	t.Run("EqualCopies", func(t *testing.T) {
		d := testCycle(t, "a", "b", "c")
		c, err := d.Compare(d.Copy())
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c != 0 {
			t.Errorf("Compare(copy) = %d, want 0", c)
		}
	})
	t.Run("NodeCountFirst", func(t *testing.T) {
		small := testCycle(t, "a", "b")
		big := testCycle(t, "a", "b", "c")
		c, err := small.Compare(big)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c >= 0 {
			t.Errorf("Compare(2-cycle, 3-cycle) = %d, want negative", c)
		}
	})
	t.Run("NamesBeforeCells", func(t *testing.T) {
		x := testCycle(t, "a", "b")
		y := testCycle(t, "a", "c")
		c, err := x.Compare(y)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c >= 0 {
			t.Errorf("Compare = %d, want negative", c)
		}
	})
	t.Run("UnframedBeforeFramed", func(t *testing.T) {
		x := testCycle(t, "a")
		y := testCycle(t, "a")
		y.SetFraming(0)
		c, err := x.Compare(y)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c >= 0 {
			t.Errorf("Compare(unframed, framed) = %d, want negative", c)
		}
		y.ClearFraming()
		c, err = x.Compare(y)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c != 0 {
			t.Errorf("Compare after ClearFraming = %d, want 0", c)
		}
	})
	t.Run("FramingValue", func(t *testing.T) {
		x := testCycle(t, "a")
		y := testCycle(t, "a")
		x.SetFraming(1)
		y.SetFraming(3)
		c, err := x.Compare(y)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c >= 0 {
			t.Errorf("Compare(framing 1, framing 3) = %d, want negative", c)
		}
	})
	t.Run("DiagramAttrs", func(t *testing.T) {
		x := testCycle(t, "a")
		y := testCycle(t, "a")
		y.Attrs()["title"] = StringValue("loop")
		c, err := x.Compare(y)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if c >= 0 {
			t.Errorf("Compare = %d, want negative", c)
		}
	})
	t.Run("MixedOrientation", func(t *testing.T) {
		x := testCycle(t, "a", "b")
		y := New(nil)
		for _, n := range []string{"a", "b"} {
			if err := y.AddVertex(NameOf(n), 2, nil); err != nil {
				t.Fatalf("AddVertex: %v", err)
			}
		}
		if err := y.SetOrientedArc(At(NameOf("a"), 0), At(NameOf("b"), 1)); err != nil {
			t.Fatalf("SetOrientedArc: %v", err)
		}
		if err := y.SetOrientedArc(At(NameOf("b"), 0), At(NameOf("a"), 1)); err != nil {
			t.Fatalf("SetOrientedArc: %v", err)
		}
		if _, err := x.Compare(y); !errors.Is(err, ErrTypeViolation) {
			t.Errorf("Compare(unoriented, oriented) error = %v, want ErrTypeViolation", err)
		}
	})
}

func TestRelabel(t *testing.T) {
	d := testCycle(t, "a", "b", "c")
	r, err := Relabel(d, map[Name]Name{
		NameOf("a"): IntName(0),
		NameOf("b"): IntName(1),
		NameOf("c"): IntName(2),
	})
	if err != nil {
		t.Fatalf("Relabel: %v", err)
	}
	mustValidate(t, r)
	if d.HasNode(IntName(0)) {
		t.Error("Relabel mutated the original")
	}
	tw, err := r.Twin(At(IntName(0), 0))
	if err != nil {
		t.Fatalf("Twin: %v", err)
	}
	if tw.Slot != At(IntName(1), 1) {
		t.Errorf("Twin(0 pos 0) = %s, want node 1 pos 1", tw.Slot)
	}

	// Partial mappings keep unmapped names.
	r2, err := Relabel(d, map[Name]Name{NameOf("a"): NameOf("z")})
	if err != nil {
		t.Fatalf("Relabel: %v", err)
	}
	mustValidate(t, r2)
	if !r2.HasNode(NameOf("z")) || !r2.HasNode(NameOf("b")) {
		t.Errorf("Relabel partial: nodes = %v", r2.Nodes())
	}

	if _, err := Relabel(d, map[Name]Name{NameOf("a"): NameOf("b")}); !errors.Is(err, ErrStructure) {
		t.Errorf("collision error = %v, want ErrStructure", err)
	}
	if _, err := Relabel(d, map[Name]Name{NameOf("a"): {}}); !errors.Is(err, ErrStructure) {
		t.Errorf("zero target error = %v, want ErrStructure", err)
	}
}
