package planar

import (
	"fmt"
	"slices"
)

// insertSlots makes room for count placeholder cells at position at.Pos of
// a vertex, in two phases: first every stored descriptor referencing a
// position >= at.Pos of that node is renumbered upward, then the
// placeholders are spliced into the node's incidence list. Renumbering
// values before touching storage keeps every reference unambiguous.
func (d *Diagram) insertSlots(at Slot, count int) error {
	nd, err := d.lookup(at.Node)
	if err != nil {
		return err
	}
	if nd.kind != KindVertex {
		return fmt.Errorf("insert at %s %s: %w", nd.kind, at.Node, ErrTypeViolation)
	}
	if at.Pos < 0 || at.Pos > nd.degree() {
		return fmt.Errorf("insert position %d out of range for %s of degree %d: %w", at.Pos, at.Node, nd.degree(), ErrStructure)
	}
	for _, other := range d.nodes {
		for i, e := range other.ends {
			if !e.IsZero() && e.Node == at.Node && e.Pos >= at.Pos {
				other.ends[i].Pos += count
			}
		}
	}
	nd.ends = slices.Insert(nd.ends, at.Pos, make([]Endpoint, count)...)
	return nil
}

// deleteSlot removes one cell from a node's incidence list and renumbers
// every stored descriptor referencing a later position of that node. The
// caller must ensure no descriptor references the removed slot itself.
func (d *Diagram) deleteSlot(s Slot) error {
	nd, err := d.lookup(s.Node)
	if err != nil {
		return err
	}
	if s.Pos < 0 || s.Pos >= nd.degree() {
		return fmt.Errorf("delete position %d out of range for %s of degree %d: %w", s.Pos, s.Node, nd.degree(), ErrStructure)
	}
	for _, other := range d.nodes {
		for i, e := range other.ends {
			if !e.IsZero() && e.Node == s.Node && e.Pos > s.Pos {
				other.ends[i].Pos--
			}
		}
	}
	nd.ends = slices.Delete(nd.ends, s.Pos, s.Pos+1)
	return nil
}

// InsertEndpoints inserts count unset placeholder cells at position at.Pos
// of a vertex, shifting the positions at and after it upward and rewriting
// every affected twin reference. Returns [ErrTypeViolation] when the target
// is not a vertex and [ErrStructure] for an out-of-range position or a
// count below one.
func InsertEndpoints(d *Diagram, at Slot, count int) error {
	if count < 1 {
		return fmt.Errorf("insert %d endpoints at %s: %w", count, at, ErrStructure)
	}
	if err := d.insertSlots(at, count); err != nil {
		return fmt.Errorf("insert endpoints: %w", err)
	}
	return nil
}

// InsertArc inserts one new endpoint at each of the two positions and
// connects them with an unoriented arc. The positions are applied in
// order: `to` addresses the rotation as it stands after the insertion at
// `at` has happened, so inserting twice at the same position of one vertex
// yields two adjacent slots with the later insertion first. Both targets
// must be vertices.
func InsertArc(d *Diagram, at, to Slot) (Arc, error) {
	second, err := d.lookup(to.Node)
	if err != nil {
		return Arc{}, fmt.Errorf("insert arc: %w", err)
	}
	if second.kind != KindVertex {
		return Arc{}, fmt.Errorf("insert arc at %s %s: %w", second.kind, to.Node, ErrTypeViolation)
	}
	limit := second.degree()
	if to.Node == at.Node {
		limit++
	}
	if to.Pos < 0 || to.Pos > limit {
		return Arc{}, fmt.Errorf("insert arc: position %d out of range for %s: %w", to.Pos, to.Node, ErrStructure)
	}
	if err := d.insertSlots(at, 1); err != nil {
		return Arc{}, fmt.Errorf("insert arc: %w", err)
	}
	first := at
	if to.Node == at.Node && to.Pos <= at.Pos {
		first.Pos++
	}
	if err := d.insertSlots(to, 1); err != nil {
		return Arc{}, fmt.Errorf("insert arc: %w", err)
	}
	if err := d.SetArc(first, to); err != nil {
		return Arc{}, fmt.Errorf("insert arc: %w", err)
	}
	return NewArc(Endpoint{Slot: first}, Endpoint{Slot: to}), nil
}

// InsertLoop inserts two adjacent endpoints at position at.Pos of a vertex
// and connects them into a trivial loop occupying positions at.Pos and
// at.Pos+1.
func InsertLoop(d *Diagram, at Slot) (Arc, error) {
	if err := d.insertSlots(at, 2); err != nil {
		return Arc{}, fmt.Errorf("insert loop: %w", err)
	}
	a, b := at, At(at.Node, at.Pos+1)
	if err := d.SetArc(a, b); err != nil {
		return Arc{}, fmt.Errorf("insert loop: %w", err)
	}
	return NewArc(Endpoint{Slot: a}, Endpoint{Slot: b}), nil
}

// InsertLeaf creates a fresh degree-1 vertex, inserts one endpoint at
// position at.Pos of the target vertex and connects the two. The new
// vertex's name continues the diagram's naming scheme; it is returned so
// the caller can address the leaf's single slot.
func InsertLeaf(d *Diagram, at Slot) (Name, error) {
	if err := d.insertSlots(at, 1); err != nil {
		return Name{}, fmt.Errorf("insert leaf: %w", err)
	}
	leaf := d.UniqueNodeName()
	if err := d.AddVertex(leaf, 1, nil); err != nil {
		return Name{}, fmt.Errorf("insert leaf: %w", err)
	}
	if err := d.SetArc(at, At(leaf, 0)); err != nil {
		return Name{}, fmt.Errorf("insert leaf: %w", err)
	}
	return leaf, nil
}

// ParallelizeArc doubles the arc through slot s: a second unoriented arc is
// inserted next to it so the two together bound an empty bigon face. At the
// arc end with the smaller slot the new endpoint lands just after it in
// rotation order, at the other end just before it. Both end nodes must be
// vertices. Returns the new arc.
func ParallelizeArc(d *Diagram, s Slot) (Arc, error) {
	t, err := d.Twin(s)
	if err != nil {
		return Arc{}, fmt.Errorf("parallelize arc: %w", err)
	}
	lo, hi := s, t.Slot
	if lo.Compare(hi) > 0 {
		lo, hi = hi, lo
	}
	for _, end := range []Name{lo.Node, hi.Node} {
		nd, err := d.lookup(end)
		if err != nil {
			return Arc{}, fmt.Errorf("parallelize arc: %w", err)
		}
		if nd.kind != KindVertex {
			return Arc{}, fmt.Errorf("parallelize arc at %s %s: %w", nd.kind, end, ErrTypeViolation)
		}
	}
	a := At(lo.Node, lo.Pos+1)
	if err := d.insertSlots(a, 1); err != nil {
		return Arc{}, fmt.Errorf("parallelize arc: %w", err)
	}
	b := At(hi.Node, hi.Pos)
	if hi.Node == lo.Node {
		// The loop's far end has shifted one past the first insertion.
		b.Pos++
	}
	if err := d.insertSlots(b, 1); err != nil {
		return Arc{}, fmt.Errorf("parallelize arc: %w", err)
	}
	if err := d.SetArc(a, b); err != nil {
		return Arc{}, fmt.Errorf("parallelize arc: %w", err)
	}
	return NewArc(Endpoint{Slot: a}, Endpoint{Slot: b}), nil
}
