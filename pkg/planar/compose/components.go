package compose

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// Components groups the diagram's nodes into connected components, two
// nodes being connected when an arc joins them. Components are ordered by
// their sorted name tuples, and each component lists its names in sorted
// order. A node without arcs forms a component of its own.
func Components(d *planar.Diagram) [][]planar.Name {
	names := d.Nodes()
	u := newDSU(names)
	for _, a := range d.Arcs() {
		u.union(a.A.Node, a.B.Node)
	}
	// names is sorted, so each group is built already sorted.
	groups := make(map[planar.Name][]planar.Name)
	for _, n := range names {
		root := u.find(n)
		groups[root] = append(groups[root], n)
	}
	comps := make([][]planar.Name, 0, len(groups))
	for _, members := range groups {
		comps = append(comps, members)
	}
	slices.SortFunc(comps, func(a, b []planar.Name) int {
		return slices.CompareFunc(a, b, planar.Name.Compare)
	})
	return comps
}

// Decompose splits the diagram into one independent diagram per connected
// component, in [Components] order, keeping node names. When the diagram
// is framed, the first part receives its framing and every other part is
// framed 0, so a later [DisjointUnion] of the parts restores it.
// Diagram-level attributes are cloned onto every part.
func Decompose(d *planar.Diagram) ([]*planar.Diagram, error) {
	comps := Components(d)
	parts := make([]*planar.Diagram, 0, len(comps))
	for _, members := range comps {
		part := planar.New(d.Attrs().Clone())
		if err := copyInto(part, d, members, keepName); err != nil {
			return nil, fmt.Errorf("decompose: %w", err)
		}
		parts = append(parts, part)
	}
	if f, framed := d.Framing(); framed {
		for i, part := range parts {
			if i == 0 {
				part.SetFraming(f)
			} else {
				part.SetFraming(0)
			}
		}
	}
	return parts, nil
}

func keepName(n planar.Name) planar.Name { return n }

// copyInto copies the named nodes of src and their cells into dst, renaming
// every node reference through rename. Attribute maps are cloned so dst
// never aliases src.
func copyInto(dst, src *planar.Diagram, names []planar.Name, rename func(planar.Name) planar.Name) error {
	for _, name := range names {
		kind, err := src.KindOf(name)
		if err != nil {
			return err
		}
		deg, err := src.Degree(name)
		if err != nil {
			return err
		}
		attrs, err := src.NodeAttrs(name)
		if err != nil {
			return err
		}
		if err := dst.AddNode(rename(name), kind, deg, attrs.Clone()); err != nil {
			return err
		}
	}
	for _, name := range names {
		deg, err := src.Degree(name)
		if err != nil {
			return err
		}
		for pos := 0; pos < deg; pos++ {
			e, err := src.Twin(planar.At(name, pos))
			if errors.Is(err, planar.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			to := planar.At(rename(e.Slot.Node), e.Slot.Pos)
			if err := dst.SetEndpoint(planar.At(rename(name), pos), to, e.Orient, e.Attrs.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}
