package planar

import (
	"fmt"
	"slices"
)

// ContractArc merges the two vertices joined by the arc between the given
// slots into one. The pair is ordered: the node of `keep` survives, the
// node of `remove` is dissolved into it, with the removed vertex's other
// endpoints taking the kept slot's place in counterclockwise order starting
// after `remove`. Returns [ErrTypeViolation] when either node is not a
// vertex and [ErrStructure] when the slots are not joined by an arc or the
// arc is a loop.
func ContractArc(d *Diagram, keep, remove Slot) error {
	kn, err := d.lookup(keep.Node)
	if err != nil {
		return fmt.Errorf("contract arc: %w", err)
	}
	rn, err := d.lookup(remove.Node)
	if err != nil {
		return fmt.Errorf("contract arc: %w", err)
	}
	if kn.kind != KindVertex {
		return fmt.Errorf("contract arc through %s %s: %w", kn.kind, keep.Node, ErrTypeViolation)
	}
	if rn.kind != KindVertex {
		return fmt.Errorf("contract arc through %s %s: %w", rn.kind, remove.Node, ErrTypeViolation)
	}
	tw, err := d.Twin(keep)
	if err != nil {
		return fmt.Errorf("contract arc: %w", err)
	}
	if tw.Slot != remove {
		return fmt.Errorf("contract arc: %s and %s are not joined by an arc: %w", keep, remove, ErrStructure)
	}
	if keep.Node == remove.Node {
		return fmt.Errorf("contract arc: %s-%s is a loop: %w", keep, remove, ErrStructure)
	}

	v, i := keep.Node, keep.Pos
	w, degW := remove.Node, rn.degree()
	k := degW - 1

	// Where each surviving endpoint of w lands in v, counterclockwise
	// starting after the contracted slot.
	landing := make([]int, degW)
	for m := 0; m < k; m++ {
		landing[(remove.Pos+1+m)%degW] = i + m
	}

	// Rewrite every reference before touching storage: positions after the
	// vacated kept slot shift by k-1, references into w move to v. The two
	// rules touch different nodes, so one pass applies at most one of them
	// per cell.
	for _, nd := range d.nodes {
		for c, e := range nd.ends {
			switch {
			case e.IsZero():
			case e.Node == v && e.Pos > i:
				nd.ends[c].Pos += k - 1
			case e.Node == w && e.Pos != remove.Pos:
				nd.ends[c].Slot = At(v, landing[e.Pos])
			}
		}
	}

	moved := make([]Endpoint, 0, k)
	for m := 0; m < k; m++ {
		moved = append(moved, rn.ends[(remove.Pos+1+m)%degW])
	}
	kn.ends = slices.Concat(kn.ends[:i], moved, kn.ends[i+1:])
	delete(d.nodes, w)
	return nil
}
