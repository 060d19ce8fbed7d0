package planar

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"strconv"
)

// Orientation classifies an endpoint as unoriented, outgoing or ingoing.
// Among oriented endpoints, outgoing orders before ingoing; comparing an
// oriented endpoint with an unoriented one is a type violation.
type Orientation int

const (
	// Unoriented marks an endpoint with no direction assigned.
	Unoriented Orientation = iota
	// Outgoing marks an endpoint where the strand leaves its node.
	Outgoing
	// Ingoing marks an endpoint where the strand enters its node.
	Ingoing
)

// String returns "unoriented", "out" or "in".
func (o Orientation) String() string {
	switch o {
	case Outgoing:
		return "out"
	case Ingoing:
		return "in"
	default:
		return "unoriented"
	}
}

// Oriented reports whether a direction is assigned.
func (o Orientation) Oriented() bool { return o != Unoriented }

// Reverse swaps ingoing and outgoing and leaves Unoriented unchanged.
func (o Orientation) Reverse() Orientation {
	switch o {
	case Outgoing:
		return Ingoing
	case Ingoing:
		return Outgoing
	default:
		return Unoriented
	}
}

// Slot addresses one rotation position: a node name plus the index into the
// node's counterclockwise incidence list. Slots are identities, not
// entities; they compare totally by name and then position.
type Slot struct {
	Node Name
	Pos  int
}

// At is shorthand for Slot{Node: n, Pos: pos}.
func At(n Name, pos int) Slot { return Slot{Node: n, Pos: pos} }

// Compare orders slots by node name, then position.
func (s Slot) Compare(o Slot) int {
	if c := s.Node.Compare(o.Node); c != 0 {
		return c
	}
	return cmp.Compare(s.Pos, o.Pos)
}

// String returns the compact form name+position, e.g. "b0".
func (s Slot) String() string { return s.Node.String() + strconv.Itoa(s.Pos) }

// Endpoint is one half-edge entity: the slot it occupies, its orientation
// class, and its attributes. Inside a [Diagram] the cell at a slot stores
// the Endpoint of the *adjacent* half-edge, so the set of stored descriptors
// is exactly the set of the diagram's endpoints.
//
// The zero value marks an unset placeholder cell.
type Endpoint struct {
	Slot
	Orient Orientation
	Attrs  Attrs
}

// IsZero reports whether the endpoint is an unset placeholder.
func (e Endpoint) IsZero() bool { return e.Node.IsZero() }

// Reversed returns the endpoint with its orientation class reversed.
func (e Endpoint) Reversed() Endpoint {
	e.Orient = e.Orient.Reverse()
	return e
}

// Compare three-way compares two endpoints: orientation class (outgoing
// before ingoing), then node name, then position, then attributes. Mixing an
// oriented endpoint with an unoriented one returns [ErrTypeViolation].
func (e Endpoint) Compare(o Endpoint) (int, error) {
	if e.Orient.Oriented() != o.Orient.Oriented() {
		return 0, fmt.Errorf("compare endpoints %s and %s: oriented with unoriented: %w", e, o, ErrTypeViolation)
	}
	if c := cmp.Compare(e.Orient, o.Orient); c != 0 {
		return c, nil
	}
	if c := e.Node.Compare(o.Node); c != 0 {
		return c, nil
	}
	if c := cmp.Compare(e.Pos, o.Pos); c != 0 {
		return c, nil
	}
	return e.Attrs.Compare(o.Attrs), nil
}

// Equal reports whether the endpoints are equal under [Endpoint.Compare].
func (e Endpoint) Equal(o Endpoint) (bool, error) {
	c, err := e.Compare(o)
	return c == 0 && err == nil, err
}

// Hash returns a 64-bit FNV-1a hash over the orientation class, the
// optional color attribute, the node name and the position. Two endpoints
// that differ only in other attributes hash alike.
func (e Endpoint) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(e.Orient), 0})
	if c, ok := e.Attrs[AttrColor]; ok {
		h.Write([]byte(c.String()))
	}
	h.Write([]byte{0})
	h.Write([]byte(e.Node.String()))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(e.Pos)))
	return h.Sum64()
}

// String returns the slot form, e.g. "b0". Orientation and attributes do
// not show in the compact form.
func (e Endpoint) String() string { return e.Slot.String() }

// Arc is an unordered pair of mutually-twinned endpoints, normalized so the
// endpoint occupying the smaller slot comes first.
type Arc struct {
	A, B Endpoint
}

// NewArc builds a normalized arc from its two endpoints.
func NewArc(a, b Endpoint) Arc {
	if a.Slot.Compare(b.Slot) > 0 {
		a, b = b, a
	}
	return Arc{A: a, B: b}
}

// Other returns the endpoint at the far side of the arc from slot s,
// and false if s is not one of the arc's slots.
func (a Arc) Other(s Slot) (Endpoint, bool) {
	switch {
	case a.A.Slot == s:
		return a.B, true
	case a.B.Slot == s:
		return a.A, true
	default:
		return Endpoint{}, false
	}
}

// Compare orders arcs by their slot pairs. Slot order is total, so arcs of
// mixed-orientation diagrams still sort deterministically.
func (a Arc) Compare(o Arc) int {
	if c := a.A.Slot.Compare(o.A.Slot); c != 0 {
		return c
	}
	return a.B.Slot.Compare(o.B.Slot)
}

// String returns the compact form "a0-b1".
func (a Arc) String() string { return a.A.String() + "-" + a.B.String() }
