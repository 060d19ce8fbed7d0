package planar

import (
	"cmp"
	"fmt"
	"strings"
)

// NodeKind distinguishes vertices from classical and virtual crossings.
type NodeKind int

const (
	// KindVertex is a generic graph vertex of any degree.
	KindVertex NodeKind = iota
	// KindCrossing is a classical crossing: fixed degree 4, with positions
	// 0 and 2 carrying the under strand and 1 and 3 the over strand.
	KindCrossing
	// KindVirtual is a virtual crossing: fixed degree 4, no over/under
	// structure, and its mirror image is itself.
	KindVirtual
)

// crossingDegree is the fixed degree of classical and virtual crossings.
const crossingDegree = 4

// String returns the kind name. Node ordering uses these names, so
// crossings sort before vertices, which sort before virtual crossings.
func (k NodeKind) String() string {
	switch k {
	case KindCrossing:
		return "Crossing"
	case KindVirtual:
		return "VirtualCrossing"
	default:
		return "Vertex"
	}
}

// FixedDegree returns the mandatory degree for the kind and true, or
// 0 and false for kinds with variable degree.
func (k NodeKind) FixedDegree() (int, bool) {
	if k == KindCrossing || k == KindVirtual {
		return crossingDegree, true
	}
	return 0, false
}

// node is the incidence record of one diagram node: its kind, the
// counterclockwise list of stored endpoint descriptors, and attributes.
type node struct {
	kind  NodeKind
	ends  []Endpoint
	attrs Attrs
}

func (n *node) degree() int { return len(n.ends) }

func (n *node) clone() *node {
	c := &node{kind: n.kind, ends: make([]Endpoint, len(n.ends)), attrs: n.attrs.Clone()}
	for i, e := range n.ends {
		e.Attrs = e.Attrs.Clone()
		c.ends[i] = e
	}
	return c
}

// compareNodes orders nodes by degree, then kind name, then stored
// descriptors position by position, then attributes. It propagates the
// type violation from comparing oriented with unoriented descriptors.
func compareNodes(a, b *node) (int, error) {
	if c := cmp.Compare(a.degree(), b.degree()); c != 0 {
		return c, nil
	}
	if c := strings.Compare(a.kind.String(), b.kind.String()); c != 0 {
		return c, nil
	}
	for i := range a.ends {
		ae, be := a.ends[i], b.ends[i]
		if ae.IsZero() != be.IsZero() {
			if ae.IsZero() {
				return -1, nil
			}
			return 1, nil
		}
		if ae.IsZero() {
			continue
		}
		c, err := ae.Compare(be)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return a.attrs.Compare(b.attrs), nil
}

// Sign returns the sign of an oriented crossing: -1 when the descriptors
// stored at positions 0 and 1 carry equal orientation classes, +1 otherwise.
// It returns [ErrTypeViolation] if the node is not a classical crossing or
// any of its four endpoints is unoriented, and [ErrNotFound] for a missing
// node or an unset slot.
func (d *Diagram) Sign(name Name) (int, error) {
	nd, err := d.lookup(name)
	if err != nil {
		return 0, fmt.Errorf("sign of %s: %w", name, err)
	}
	if nd.kind != KindCrossing {
		return 0, fmt.Errorf("sign of %s %s: %w", nd.kind, name, ErrTypeViolation)
	}
	for i, e := range nd.ends {
		if e.IsZero() {
			return 0, fmt.Errorf("sign of %s: slot %d unset: %w", name, i, ErrNotFound)
		}
		if !e.Orient.Oriented() {
			return 0, fmt.Errorf("sign of %s: endpoint %s unoriented: %w", name, e, ErrTypeViolation)
		}
	}
	if nd.ends[0].Orient == nd.ends[1].Orient {
		return -1, nil
	}
	return 1, nil
}
