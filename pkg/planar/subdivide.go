package planar

import "fmt"

// SubdivideEndpoint splits the arc through slot s by routing it over a
// fresh degree-2 vertex: s connects to the new vertex's position 0 and the
// far end to position 1. Orientation classes and endpoint attributes are
// preserved on both halves, so an oriented strand keeps its direction.
// Returns the new vertex's name.
func SubdivideEndpoint(d *Diagram, s Slot) (Name, error) {
	return d.subdivide(s, KindVertex, 0, 1)
}

// SubdivideArc splits the arc through slot s like [SubdivideEndpoint], but
// addresses the arc rather than one of its ends: naming either end slot
// yields the same diagram, with the arc's smaller slot connected to the new
// vertex's position 0.
func SubdivideArc(d *Diagram, s Slot) (Name, error) {
	t, err := d.Twin(s)
	if err != nil {
		return Name{}, fmt.Errorf("subdivide arc: %w", err)
	}
	if t.Slot.Compare(s) < 0 {
		s = t.Slot
	}
	return d.subdivide(s, KindVertex, 0, 1)
}

// SubdivideEndpointByCrossing splits the arc through slot s by routing it
// straight through a fresh classical crossing: s connects to the crossing's
// position pos and the far end to position pos+2 mod 4. The crossing's two
// remaining positions are left as unset placeholders for the caller to
// connect. Returns [ErrStructure] for a position outside 0..3.
func SubdivideEndpointByCrossing(d *Diagram, s Slot, pos int) (Name, error) {
	if pos < 0 || pos >= crossingDegree {
		return Name{}, fmt.Errorf("subdivide %s by crossing: position %d out of range: %w", s, pos, ErrStructure)
	}
	return d.subdivide(s, KindCrossing, pos, (pos+2)%crossingDegree)
}

// subdivide reroutes the arc through s over a fresh node of the given kind,
// entering it at position p0 from s's side and leaving at p1 toward the far
// end. The two old cell values move onto the new node verbatim; the two
// boundary cells keep their orientation class and a copy of their
// attributes while their slots are redirected.
func (d *Diagram) subdivide(s Slot, kind NodeKind, p0, p1 int) (Name, error) {
	cs, err := d.Twin(s)
	if err != nil {
		return Name{}, fmt.Errorf("subdivide %s: %w", s, err)
	}
	t := cs.Slot
	ct, err := d.Twin(t)
	if err != nil {
		return Name{}, fmt.Errorf("subdivide %s: %w", s, err)
	}

	w := d.UniqueNodeName()
	degree := 2
	if want, fixed := kind.FixedDegree(); fixed {
		degree = want
	}
	if err := d.AddNode(w, kind, degree, nil); err != nil {
		return Name{}, fmt.Errorf("subdivide %s: %w", s, err)
	}

	d.nodes[w].ends[p0] = ct
	d.nodes[w].ends[p1] = cs
	if err := d.setCell(s, Endpoint{Slot: At(w, p0), Orient: cs.Orient, Attrs: cs.Attrs.Clone()}); err != nil {
		return Name{}, fmt.Errorf("subdivide %s: %w", s, err)
	}
	if err := d.setCell(t, Endpoint{Slot: At(w, p1), Orient: ct.Orient, Attrs: ct.Attrs.Clone()}); err != nil {
		return Name{}, fmt.Errorf("subdivide %s: %w", s, err)
	}
	return w, nil
}
