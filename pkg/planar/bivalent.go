package planar

import "fmt"

// BivalentOptions configures bivalent vertex removal.
type BivalentOptions struct {
	// MatchAttributes only splices a vertex whose two vanishing endpoints
	// carry equal attributes, so decorated strands are never fused across a
	// decoration change.
	MatchAttributes bool
	// RemoveLoops also deletes a vertex that is the sole vertex of a
	// trivial loop, dropping its component from the diagram entirely.
	RemoveLoops bool
}

// RemoveBivalentVertex splices the two arcs meeting at a degree-2 vertex
// into one and deletes the vertex. The vertex is preserved (false, nil)
// when it is the sole vertex of a trivial loop and RemoveLoops is unset,
// and when joining the two outer endpoints would break orientation
// coherence. MatchAttributes adds a third preserve condition, see
// [BivalentOptions]. Returns [ErrTypeViolation] when the node is not a
// degree-2 vertex.
func RemoveBivalentVertex(d *Diagram, v Name, opts BivalentOptions) (bool, error) {
	nd, err := d.lookup(v)
	if err != nil {
		return false, fmt.Errorf("remove bivalent vertex: %w", err)
	}
	if nd.kind != KindVertex || nd.degree() != 2 {
		return false, fmt.Errorf("remove bivalent vertex: %s %s of degree %d: %w", nd.kind, v, nd.degree(), ErrTypeViolation)
	}
	e0, e1 := nd.ends[0], nd.ends[1]
	if e0.IsZero() || e1.IsZero() {
		return false, fmt.Errorf("remove bivalent vertex %s: slot unset: %w", v, ErrNotFound)
	}
	if e0.Node == v {
		// The sole vertex of a trivial loop. Splicing it away would leave
		// an unrepresentable bare circle, so it only goes when asked.
		if !opts.RemoveLoops {
			return false, nil
		}
		delete(d.nodes, v)
		return true, nil
	}
	if e0.Orient.Oriented() != e1.Orient.Oriented() || (e0.Orient.Oriented() && e0.Orient == e1.Orient) {
		return false, nil
	}
	if opts.MatchAttributes {
		ct0, err := d.Twin(e0.Slot)
		if err != nil {
			return false, fmt.Errorf("remove bivalent vertex %s: %w", v, err)
		}
		ct1, err := d.Twin(e1.Slot)
		if err != nil {
			return false, fmt.Errorf("remove bivalent vertex %s: %w", v, err)
		}
		if !ct0.Attrs.Equal(ct1.Attrs) {
			return false, nil
		}
	}
	if err := d.setCell(e0.Slot, e1); err != nil {
		return false, fmt.Errorf("remove bivalent vertex %s: %w", v, err)
	}
	if err := d.setCell(e1.Slot, e0); err != nil {
		return false, fmt.Errorf("remove bivalent vertex %s: %w", v, err)
	}
	delete(d.nodes, v)
	return true, nil
}

// RemoveBivalentVertices removes every bivalent vertex [RemoveBivalentVertex]
// will splice, in sorted name order, and returns how many were removed.
// Splicing never changes another node's degree and never unblocks a
// preserved vertex, so one pass reaches the fixpoint.
func RemoveBivalentVertices(d *Diagram, opts BivalentOptions) (int, error) {
	removed := 0
	for _, name := range d.Vertices() {
		nd := d.nodes[name]
		if nd.degree() != 2 || nd.ends[0].IsZero() || nd.ends[1].IsZero() {
			continue
		}
		ok, err := RemoveBivalentVertex(d, name, opts)
		if err != nil {
			return removed, fmt.Errorf("remove bivalent vertices: %w", err)
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}
