package planar

import "fmt"

// PullAndPlug pulls the endpoint occupying slot src out of its vertex and
// plugs it into a fresh slot inserted at position dst.Pos of the
// destination vertex. The endpoint keeps its orientation class and
// attributes and stays connected to the same far end; the vacated source
// slot is deleted, so the source vertex's degree drops by one. Both nodes
// must be vertices.
func PullAndPlug(d *Diagram, src, dst Slot) error {
	sn, err := d.lookup(src.Node)
	if err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	if sn.kind != KindVertex {
		return fmt.Errorf("pull and plug from %s %s: %w", sn.kind, src.Node, ErrTypeViolation)
	}
	if _, err := d.Twin(src); err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	if err := d.insertSlots(dst, 1); err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	if dst.Node == src.Node && dst.Pos <= src.Pos {
		src.Pos++
	}
	// The stored references were renumbered by the insertion, so read the
	// pair back rather than reusing stale copies.
	far, err := d.Twin(src)
	if err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	me, err := d.Twin(far.Slot)
	if err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	if err := d.setCell(dst, far); err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	if err := d.setCell(far.Slot, Endpoint{Slot: dst, Orient: me.Orient, Attrs: me.Attrs}); err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	if err := d.deleteSlot(src); err != nil {
		return fmt.Errorf("pull and plug: %w", err)
	}
	return nil
}

// Replug moves the endpoint occupying slot src into the existing unset
// slot dst, keeping its orientation class, attributes and far end, then
// deletes the vacated source slot. Unlike [PullAndPlug] it makes no room:
// the destination cell must already exist and be unset, which permits
// plugging into a crossing's placeholder. Returns [ErrTypeViolation] when
// the source node is a fixed-degree kind, whose degree must not drop, and
// [ErrStructure] when dst equals src or is occupied.
func Replug(d *Diagram, src, dst Slot) error {
	sn, err := d.lookup(src.Node)
	if err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	if sn.kind != KindVertex {
		return fmt.Errorf("replug from %s %s: %w", sn.kind, src.Node, ErrTypeViolation)
	}
	if src == dst {
		return fmt.Errorf("replug %s onto itself: %w", src, ErrStructure)
	}
	cell, err := d.cell(dst)
	if err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	if !cell.IsZero() {
		return fmt.Errorf("replug to %s: slot occupied: %w", dst, ErrStructure)
	}
	far, err := d.Twin(src)
	if err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	me, err := d.Twin(far.Slot)
	if err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	if err := d.setCell(dst, far); err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	if err := d.setCell(far.Slot, Endpoint{Slot: dst, Orient: me.Orient, Attrs: me.Attrs}); err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	if err := d.deleteSlot(src); err != nil {
		return fmt.Errorf("replug: %w", err)
	}
	return nil
}

// SwapEndpoints exchanges the endpoints occupying slots a and b: each
// keeps its orientation class and attributes but takes over the other's
// position, so their arcs trade far ends. The two endpoints must carry the
// same orientation class, and swapping the two ends of a single arc is
// refused; both are [ErrStructure].
func SwapEndpoints(d *Diagram, a, b Slot) error {
	if a == b {
		return fmt.Errorf("swap %s with itself: %w", a, ErrStructure)
	}
	ta, err := d.Twin(a)
	if err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	tb, err := d.Twin(b)
	if err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	if ta.Slot == b {
		return fmt.Errorf("swap %s and %s: two ends of one arc: %w", a, b, ErrStructure)
	}
	ea, err := d.Twin(ta.Slot)
	if err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	eb, err := d.Twin(tb.Slot)
	if err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	if ea.Orient != eb.Orient {
		return fmt.Errorf("swap %s and %s: orientation classes %s and %s differ: %w", a, b, ea.Orient, eb.Orient, ErrStructure)
	}
	if err := d.setCell(a, tb); err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	if err := d.setCell(b, ta); err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	if err := d.setCell(ta.Slot, Endpoint{Slot: b, Orient: ea.Orient, Attrs: ea.Attrs}); err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	if err := d.setCell(tb.Slot, Endpoint{Slot: a, Orient: eb.Orient, Attrs: eb.Attrs}); err != nil {
		return fmt.Errorf("swap endpoints: %w", err)
	}
	return nil
}

// PermuteNode applies a position permutation at one node: the endpoint at
// position p moves to position perm[p], and every stored reference to the
// node is rewritten to match. perm must be a bijection on 0..degree-1,
// otherwise [ErrStructure] is returned. Any node kind is permitted.
func PermuteNode(d *Diagram, n Name, perm []int) error {
	nd, err := d.lookup(n)
	if err != nil {
		return fmt.Errorf("permute node: %w", err)
	}
	deg := nd.degree()
	if len(perm) != deg {
		return fmt.Errorf("permute node %s: permutation of length %d for degree %d: %w", n, len(perm), deg, ErrStructure)
	}
	seen := make([]bool, deg)
	for _, q := range perm {
		if q < 0 || q >= deg || seen[q] {
			return fmt.Errorf("permute node %s: %v is not a bijection: %w", n, perm, ErrStructure)
		}
		seen[q] = true
	}
	for _, other := range d.nodes {
		for i, e := range other.ends {
			if !e.IsZero() && e.Node == n {
				other.ends[i].Pos = perm[e.Pos]
			}
		}
	}
	ends := make([]Endpoint, deg)
	for p, e := range nd.ends {
		ends[perm[p]] = e
	}
	nd.ends = ends
	return nil
}
