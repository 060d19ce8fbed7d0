package canon

import (
	"fmt"
	"slices"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/compose"
)

// Canonical returns the canonical representative of d. The input is never
// modified. It returns [planar.ErrStructure] when the diagram cannot be
// fully traversed, which happens when an endpoint slot is unset.
func Canonical(d *planar.Diagram) (*planar.Diagram, error) {
	if d.NodeCount() == 0 {
		return d.Copy(), nil
	}
	if len(compose.Components(d)) == 1 {
		return connected(d)
	}

	work := d.Copy()
	work.ClearFraming()
	parts, err := compose.Decompose(work)
	if err != nil {
		return nil, fmt.Errorf("canonical: %w", err)
	}
	for i, part := range parts {
		cp, err := connected(part)
		if err != nil {
			return nil, err
		}
		parts[i] = cp
	}
	var sortErr error
	slices.SortStableFunc(parts, func(a, b *planar.Diagram) int {
		c, err := a.Compare(b)
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return c
	})
	if sortErr != nil {
		return nil, fmt.Errorf("canonical: order components: %w", sortErr)
	}
	out, err := compose.DisjointUnion(parts...)
	if err != nil {
		return nil, fmt.Errorf("canonical: %w", err)
	}
	if f, framed := d.Framing(); framed {
		out.SetFraming(f)
	}
	return out, nil
}

// Equal reports whether a and b are the same diagram up to node relabeling
// and rotation entry choice, by comparing canonical forms.
func Equal(a, b *planar.Diagram) (bool, error) {
	ca, err := Canonical(a)
	if err != nil {
		return false, err
	}
	cb, err := Canonical(b)
	if err != nil {
		return false, err
	}
	return ca.Equal(cb)
}

// connected canonicalizes a single-component diagram by minimizing over
// all candidate start endpoints.
func connected(d *planar.Diagram) (*planar.Diagram, error) {
	names := d.Nodes()
	if len(names) == 1 {
		if deg, err := d.Degree(names[0]); err == nil && deg == 0 {
			return planar.Relabel(d, map[planar.Name]planar.Name{names[0]: planar.AlphabeticName(1)})
		}
	}
	var best *planar.Diagram
	for _, start := range candidates(d) {
		cand, err := traverseAndNormalize(d, start)
		if err != nil {
			return nil, err
		}
		if best == nil {
			best = cand
			continue
		}
		c, err := cand.Compare(best)
		if err != nil {
			return nil, fmt.Errorf("canonical: %w", err)
		}
		if c < 0 {
			best = cand
		}
	}
	if best == nil {
		return nil, fmt.Errorf("canonical: no start candidates: %w", planar.ErrStructure)
	}
	return best, nil
}

// traverseAndNormalize names every node by breadth-first traversal from
// start, relabels the diagram, and normalizes each node's rotation against
// its recorded entry position.
func traverseAndNormalize(d *planar.Diagram, start planar.Slot) (*planar.Diagram, error) {
	names, entry, err := traverse(d, start)
	if err != nil {
		return nil, err
	}
	if len(names) != d.NodeCount() {
		return nil, fmt.Errorf("canonical: traversal from %s reached %d of %d nodes: %w",
			start, len(names), d.NodeCount(), planar.ErrStructure)
	}
	cand, err := planar.Relabel(d, names)
	if err != nil {
		return nil, fmt.Errorf("canonical: %w", err)
	}
	for old, e := range entry {
		if e == 0 {
			continue
		}
		n := names[old]
		kind, err := cand.KindOf(n)
		if err != nil {
			return nil, err
		}
		if kind != planar.KindVertex {
			// Degree-4 kinds admit only the rotation by two; entries 0
			// and 3 are already normal.
			if e == 1 || e == 2 {
				if err := planar.PermuteNode(cand, n, []int{2, 3, 0, 1}); err != nil {
					return nil, fmt.Errorf("canonical: %w", err)
				}
			}
			continue
		}
		deg, err := cand.Degree(n)
		if err != nil {
			return nil, err
		}
		perm := make([]int, deg)
		for p := range perm {
			perm[p] = (p - e + deg) % deg
		}
		if err := planar.PermuteNode(cand, n, perm); err != nil {
			return nil, fmt.Errorf("canonical: %w", err)
		}
	}
	return cand, nil
}
