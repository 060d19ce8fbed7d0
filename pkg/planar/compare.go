package planar

import "cmp"

// Compare three-way compares two diagrams: node count first, then the
// sorted name sequences, then each node in name order (degree, kind name,
// stored descriptors, attributes), then diagram attributes, then framing
// (unframed before framed). Canonicalization uses this order to pick the
// lexicographically smallest candidate.
//
// Comparing a diagram with oriented endpoints against one with unoriented
// endpoints returns [ErrTypeViolation].
func (d *Diagram) Compare(o *Diagram) (int, error) {
	if c := cmp.Compare(d.NodeCount(), o.NodeCount()); c != 0 {
		return c, nil
	}
	dn, on := d.Nodes(), o.Nodes()
	for i := range dn {
		if c := dn[i].Compare(on[i]); c != 0 {
			return c, nil
		}
	}
	for i := range dn {
		c, err := compareNodes(d.nodes[dn[i]], o.nodes[on[i]])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	if c := d.attrs.Compare(o.attrs); c != 0 {
		return c, nil
	}
	if d.framed != o.framed {
		if o.framed {
			return -1, nil
		}
		return 1, nil
	}
	return cmp.Compare(d.framing, o.framing), nil
}

// Equal reports whether the diagrams are identical as labeled structures
// (same names, cells, attributes and framing). For equality up to
// relabeling and re-rooting, canonicalize both sides first.
func (d *Diagram) Equal(o *Diagram) (bool, error) {
	c, err := d.Compare(o)
	return c == 0 && err == nil, err
}
