package planar

import (
	"errors"
	"testing"
)

func TestContractArc(t *testing.T) {
	t.Run("TriangleToBigon", func(t *testing.T) {
		d := testCycle(t, "a", "b", "c")
		if err := ContractArc(d, At(NameOf("a"), 0), At(NameOf("b"), 1)); err != nil {
			t.Fatalf("ContractArc: %v", err)
		}
		mustValidate(t, d)
		if d.HasNode(NameOf("b")) {
			t.Error("contracted vertex b still present")
		}
		// The triangle collapses to two parallel arcs between a and c.
		equal, err := d.Equal(testCycle(t, "a", "c"))
		if err != nil {
			t.Fatalf("Equal: %v", err)
		}
		if !equal {
			t.Errorf("contracted triangle = %s, want the 2-cycle on a and c", d)
		}
	})
	t.Run("PathShortens", func(t *testing.T) {
		d := testPath(t, "a", "b", "c")
		if err := ContractArc(d, At(NameOf("a"), 0), At(NameOf("b"), 0)); err != nil {
			t.Fatalf("ContractArc: %v", err)
		}
		mustValidate(t, d)
		equal, err := d.Equal(testPath(t, "a", "c"))
		if err != nil {
			t.Fatalf("Equal: %v", err)
		}
		if !equal {
			t.Errorf("contracted path = %s, want a-c", d)
		}
	})
	t.Run("HigherDegreeFan", func(t *testing.T) {
		// A star center pulled into one of its tips: the tip inherits the
		// center's remaining endpoints in rotation order.
		d := New(nil)
		if err := d.AddVertex(NameOf("s"), 3, nil); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
		for _, n := range []string{"a", "b", "c"} {
			if err := d.AddVertex(NameOf(n), 1, nil); err != nil {
				t.Fatalf("AddVertex: %v", err)
			}
		}
		for i, n := range []string{"a", "b", "c"} {
			if err := d.SetArc(At(NameOf("s"), i), At(NameOf(n), 0)); err != nil {
				t.Fatalf("SetArc: %v", err)
			}
		}

		if err := ContractArc(d, At(NameOf("a"), 0), At(NameOf("s"), 0)); err != nil {
			t.Fatalf("ContractArc: %v", err)
		}
		mustValidate(t, d)
		deg, err := d.Degree(NameOf("a"))
		if err != nil {
			t.Fatalf("Degree: %v", err)
		}
		if deg != 2 {
			t.Errorf("Degree(a) = %d, want 2", deg)
		}
		for i, want := range []string{"b", "c"} {
			tw, err := d.Twin(At(NameOf("a"), i))
			if err != nil {
				t.Fatalf("Twin(a%d): %v", i, err)
			}
			if tw.Slot != At(NameOf(want), 0) {
				t.Errorf("Twin(a%d) = %s, want %s0", i, tw.Slot, want)
			}
		}
	})
}

func TestContractArcErrors(t *testing.T) {
	t.Run("Loop", func(t *testing.T) {
		d := testCycle(t, "a")
		if err := ContractArc(d, At(NameOf("a"), 0), At(NameOf("a"), 1)); !errors.Is(err, ErrStructure) {
			t.Errorf("contracting a loop error = %v, want ErrStructure", err)
		}
	})
	t.Run("NotAnArc", func(t *testing.T) {
		d := testCycle(t, "a", "b", "c")
		if err := ContractArc(d, At(NameOf("a"), 0), At(NameOf("c"), 0)); !errors.Is(err, ErrStructure) {
			t.Errorf("unconnected slots error = %v, want ErrStructure", err)
		}
	})
	t.Run("ThroughCrossing", func(t *testing.T) {
		d := New(nil)
		if err := d.AddVertex(NameOf("v"), 1, nil); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
		if err := d.AddCrossing(NameOf("x"), nil); err != nil {
			t.Fatalf("AddCrossing: %v", err)
		}
		if err := d.SetArc(At(NameOf("v"), 0), At(NameOf("x"), 0)); err != nil {
			t.Fatalf("SetArc: %v", err)
		}
		if err := ContractArc(d, At(NameOf("v"), 0), At(NameOf("x"), 0)); !errors.Is(err, ErrTypeViolation) {
			t.Errorf("contracting through crossing error = %v, want ErrTypeViolation", err)
		}
	})
}

func TestSubdivideThenContractRestores(t *testing.T) {
	orig := testCycle(t, "a", "b", "c")
	d := orig.Copy()

	w, err := SubdivideEndpoint(d, At(NameOf("a"), 0))
	if err != nil {
		t.Fatalf("SubdivideEndpoint: %v", err)
	}
	if err := ContractArc(d, At(NameOf("a"), 0), At(w, 0)); err != nil {
		t.Fatalf("ContractArc: %v", err)
	}
	mustValidate(t, d)

	equal, err := d.Equal(orig)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !equal {
		t.Errorf("subdivide+contract changed the diagram:\ngot  %s\nwant %s", d, orig)
	}
}
