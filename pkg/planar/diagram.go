package planar

import (
	"fmt"
	"maps"
	"slices"
)

// Diagram is a planar diagram: a set of named nodes, each with a
// counterclockwise-ordered list of incidence cells, connected pairwise into
// arcs by the mutuality invariant. A diagram may be disconnected, carries an
// attribute map, and optionally an integer framing.
//
// The zero value is not usable - use [New]. Diagrams are not safe for
// concurrent use without external synchronization.
type Diagram struct {
	nodes   map[Name]*node
	attrs   Attrs
	framing int
	framed  bool
}

// New creates an empty diagram with optional diagram-level attributes.
// The attrs parameter can be nil, in which case an empty map is created.
func New(attrs Attrs) *Diagram {
	if attrs == nil {
		attrs = Attrs{}
	}
	return &Diagram{nodes: make(map[Name]*node), attrs: attrs}
}

// Attrs returns the diagram-level attribute map.
// The returned map is never nil and can be safely modified.
func (d *Diagram) Attrs() Attrs { return d.attrs }

// Framing returns the framing value and whether one is set.
func (d *Diagram) Framing() (int, bool) { return d.framing, d.framed }

// SetFraming sets the integer framing.
func (d *Diagram) SetFraming(f int) { d.framing, d.framed = f, true }

// ClearFraming removes the framing.
func (d *Diagram) ClearFraming() { d.framing, d.framed = 0, false }

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// ArcCount returns the number of arcs (set cell pairs).
func (d *Diagram) ArcCount() int { return d.EndpointCount() / 2 }

// EndpointCount returns the number of set endpoint cells.
func (d *Diagram) EndpointCount() int {
	count := 0
	for _, nd := range d.nodes {
		for _, e := range nd.ends {
			if !e.IsZero() {
				count++
			}
		}
	}
	return count
}

// HasNode reports whether a node with the given name exists.
func (d *Diagram) HasNode(name Name) bool {
	_, ok := d.nodes[name]
	return ok
}

// Nodes returns all node names in sorted order.
func (d *Diagram) Nodes() []Name {
	names := slices.Collect(maps.Keys(d.nodes))
	slices.SortFunc(names, Name.Compare)
	return names
}

// Vertices returns the names of all vertex nodes in sorted order.
func (d *Diagram) Vertices() []Name { return d.nodesOfKind(KindVertex) }

// Crossings returns the names of all classical crossings in sorted order.
func (d *Diagram) Crossings() []Name { return d.nodesOfKind(KindCrossing) }

// VirtualCrossings returns the names of all virtual crossings in sorted order.
func (d *Diagram) VirtualCrossings() []Name { return d.nodesOfKind(KindVirtual) }

func (d *Diagram) nodesOfKind(k NodeKind) []Name {
	var names []Name
	for name, nd := range d.nodes {
		if nd.kind == k {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, Name.Compare)
	return names
}

// KindOf returns the kind of the named node.
func (d *Diagram) KindOf(name Name) (NodeKind, error) {
	nd, err := d.lookup(name)
	if err != nil {
		return 0, err
	}
	return nd.kind, nil
}

// Degree returns the number of incidence slots of the named node.
func (d *Diagram) Degree(name Name) (int, error) {
	nd, err := d.lookup(name)
	if err != nil {
		return 0, err
	}
	return nd.degree(), nil
}

// NodeAttrs returns the attribute map of the named node.
// The returned map is never nil and can be safely modified.
func (d *Diagram) NodeAttrs(name Name) (Attrs, error) {
	nd, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	if nd.attrs == nil {
		nd.attrs = Attrs{}
	}
	return nd.attrs, nil
}

// AddNode adds a node of the given kind with the declared degree. Crossings
// and virtual crossings must declare degree 4; any other declared degree is
// a structural violation. The new node's cells are unset placeholders.
// Returns [ErrStructure] for a zero name, a negative degree or a malformed
// fixed degree, and a duplicate-name error for an existing name.
func (d *Diagram) AddNode(name Name, kind NodeKind, degree int, attrs Attrs) error {
	if name.IsZero() {
		return fmt.Errorf("add node: empty name: %w", ErrStructure)
	}
	if _, exists := d.nodes[name]; exists {
		return fmt.Errorf("add node %s: duplicate name: %w", name, ErrStructure)
	}
	if degree < 0 {
		return fmt.Errorf("add node %s: negative degree %d: %w", name, degree, ErrStructure)
	}
	if want, fixed := kind.FixedDegree(); fixed && degree != want {
		return fmt.Errorf("add %s %s: degree %d, must be %d: %w", kind, name, degree, want, ErrStructure)
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	d.nodes[name] = &node{kind: kind, ends: make([]Endpoint, degree), attrs: attrs}
	return nil
}

// AddVertex adds a vertex with the given degree.
func (d *Diagram) AddVertex(name Name, degree int, attrs Attrs) error {
	return d.AddNode(name, KindVertex, degree, attrs)
}

// AddCrossing adds a classical crossing (degree 4).
func (d *Diagram) AddCrossing(name Name, attrs Attrs) error {
	return d.AddNode(name, KindCrossing, crossingDegree, attrs)
}

// AddVirtualCrossing adds a virtual crossing (degree 4).
func (d *Diagram) AddVirtualCrossing(name Name, attrs Attrs) error {
	return d.AddNode(name, KindVirtual, crossingDegree, attrs)
}

// RemoveNode deletes the named node. With removeIncident set, the cells of
// all partners still connected to the node are cleared first; without it the
// partners keep their now-dangling descriptors and the caller is responsible
// for repairing them.
func (d *Diagram) RemoveNode(name Name, removeIncident bool) error {
	nd, err := d.lookup(name)
	if err != nil {
		return fmt.Errorf("remove node: %w", err)
	}
	if removeIncident {
		for _, e := range nd.ends {
			if e.IsZero() {
				continue
			}
			if partner, ok := d.nodes[e.Node]; ok && e.Pos < partner.degree() {
				partner.ends[e.Pos] = Endpoint{}
			}
		}
	}
	delete(d.nodes, name)
	return nil
}

// SetEndpoint writes one directed half of a connection: the cell at slot
// `at` is set to describe the adjacent endpoint occupying slot `to`, with
// the given orientation class and attributes. Mutuality is the caller's
// duty - call SetEndpoint on both sides, or use [Diagram.SetArc] /
// [Diagram.SetOrientedArc] which write both halves together.
func (d *Diagram) SetEndpoint(at, to Slot, orient Orientation, attrs Attrs) error {
	if err := d.checkSlot(to); err != nil {
		return fmt.Errorf("set endpoint at %s: adjacent %s: %w", at, to, err)
	}
	return d.setCell(at, Endpoint{Slot: to, Orient: orient, Attrs: attrs})
}

// SetArc connects slots a and b with an unoriented arc, writing both cells.
func (d *Diagram) SetArc(a, b Slot) error {
	if err := d.SetEndpoint(a, b, Unoriented, nil); err != nil {
		return err
	}
	return d.SetEndpoint(b, a, Unoriented, nil)
}

// SetOrientedArc connects from and to with an oriented arc whose strand
// leaves the node at `from` and enters the node at `to`.
func (d *Diagram) SetOrientedArc(from, to Slot) error {
	if err := d.SetEndpoint(from, to, Ingoing, nil); err != nil {
		return err
	}
	return d.SetEndpoint(to, from, Outgoing, nil)
}

// RemoveArc clears both cells of the arc through slot s.
// Returns [ErrNotFound] if the slot is unset.
func (d *Diagram) RemoveArc(s Slot) error {
	t, err := d.Twin(s)
	if err != nil {
		return fmt.Errorf("remove arc: %w", err)
	}
	if err := d.setCell(t.Slot, Endpoint{}); err != nil {
		return fmt.Errorf("remove arc: %w", err)
	}
	return d.setCell(s, Endpoint{})
}

// Twin returns the descriptor stored at slot s: the endpoint it connects
// to. Returns [ErrNotFound] for a missing node or an unset cell and
// [ErrStructure] for a position outside the node's degree.
func (d *Diagram) Twin(s Slot) (Endpoint, error) {
	e, err := d.cell(s)
	if err != nil {
		return Endpoint{}, err
	}
	if e.IsZero() {
		return Endpoint{}, fmt.Errorf("twin of %s: endpoint not set: %w", s, ErrNotFound)
	}
	return e, nil
}

// EndpointAt returns the endpoint entity occupying slot s, which is stored
// at its twin's cell.
func (d *Diagram) EndpointAt(s Slot) (Endpoint, error) {
	t, err := d.Twin(s)
	if err != nil {
		return Endpoint{}, err
	}
	return d.Twin(t.Slot)
}

// Endpoints returns every set endpoint, sorted by the slot it occupies.
func (d *Diagram) Endpoints() []Endpoint {
	var eps []Endpoint
	for _, nd := range d.nodes {
		for _, e := range nd.ends {
			if !e.IsZero() {
				eps = append(eps, e)
			}
		}
	}
	slices.SortFunc(eps, func(a, b Endpoint) int { return a.Slot.Compare(b.Slot) })
	return eps
}

// Arcs returns every arc, normalized and sorted by slot pairs.
// Mutuality is assumed; use [Diagram.Validate] first on suspect diagrams.
func (d *Diagram) Arcs() []Arc {
	var arcs []Arc
	for name, nd := range d.nodes {
		for i, t := range nd.ends {
			if t.IsZero() {
				continue
			}
			s := Slot{Node: name, Pos: i}
			if s.Compare(t.Slot) > 0 {
				continue
			}
			here, err := d.cell(t.Slot)
			if err != nil || here.IsZero() {
				continue
			}
			arcs = append(arcs, NewArc(here, t))
		}
	}
	slices.SortFunc(arcs, Arc.Compare)
	return arcs
}

// IsOriented reports whether the diagram has at least one endpoint and
// every endpoint carries an orientation class.
func (d *Diagram) IsOriented() bool {
	seen := false
	for _, nd := range d.nodes {
		for _, e := range nd.ends {
			if e.IsZero() {
				continue
			}
			if !e.Orient.Oriented() {
				return false
			}
			seen = true
		}
	}
	return seen
}

// Copy returns a deep copy: nodes, cells, attribute maps and framing are
// all duplicated, so the copy shares no mutable state with the original.
func (d *Diagram) Copy() *Diagram {
	c := &Diagram{
		nodes:   make(map[Name]*node, len(d.nodes)),
		attrs:   d.attrs.Clone(),
		framing: d.framing,
		framed:  d.framed,
	}
	if c.attrs == nil {
		c.attrs = Attrs{}
	}
	for name, nd := range d.nodes {
		c.nodes[name] = nd.clone()
	}
	return c
}

// lookup resolves a node name or reports ErrNotFound.
func (d *Diagram) lookup(name Name) (*node, error) {
	nd, ok := d.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node %s: %w", name, ErrNotFound)
	}
	return nd, nil
}

// checkSlot verifies that a slot names an existing node and a position
// within its degree.
func (d *Diagram) checkSlot(s Slot) error {
	nd, err := d.lookup(s.Node)
	if err != nil {
		return err
	}
	if s.Pos < 0 || s.Pos >= nd.degree() {
		return fmt.Errorf("position %d out of range for %s of degree %d: %w", s.Pos, s.Node, nd.degree(), ErrStructure)
	}
	return nil
}

// cell reads the stored descriptor at a slot. An unset cell reads as the
// zero Endpoint without error; invalid slots fail.
func (d *Diagram) cell(s Slot) (Endpoint, error) {
	if err := d.checkSlot(s); err != nil {
		return Endpoint{}, err
	}
	return d.nodes[s.Node].ends[s.Pos], nil
}

// setCell writes the stored descriptor at a slot.
func (d *Diagram) setCell(s Slot, e Endpoint) error {
	if err := d.checkSlot(s); err != nil {
		return err
	}
	d.nodes[s.Node].ends[s.Pos] = e
	return nil
}
