package planar

import "fmt"

// Validate checks diagram integrity and returns nil if valid.
// It verifies four constraints:
//
//  1. Fixed-degree kinds have exactly four slots
//  2. Every set cell references an existing node and a position within
//     its degree
//  3. Mutuality: the cell at (n, i) naming (m, j) implies the cell at
//     (m, j) names (n, i)
//  4. Orientation coherence: twinned cells carry opposite orientation
//     classes, or both none
//
// Unset placeholder cells are legal; they occur as controlled intermediate
// states during editing. Use Validate after hand-built connection sequences
// or before canonicalizing diagrams of uncertain origin. Nodes are checked
// in sorted name order, so the first violation reported is deterministic.
func (d *Diagram) Validate() error {
	for _, name := range d.Nodes() {
		nd := d.nodes[name]
		if want, fixed := nd.kind.FixedDegree(); fixed && nd.degree() != want {
			return fmt.Errorf("%s %s has degree %d, must be %d: %w", nd.kind, name, nd.degree(), want, ErrStructure)
		}
		for i, e := range nd.ends {
			if e.IsZero() {
				continue
			}
			s := Slot{Node: name, Pos: i}
			partner, ok := d.nodes[e.Node]
			if !ok {
				return fmt.Errorf("cell %s references missing node %s: %w", s, e.Node, ErrNotFound)
			}
			if e.Pos < 0 || e.Pos >= partner.degree() {
				return fmt.Errorf("cell %s references %s beyond degree %d: %w", s, e.Slot, partner.degree(), ErrStructure)
			}
			back := partner.ends[e.Pos]
			if back.IsZero() || back.Slot != s {
				return fmt.Errorf("mutuality broken at %s: twin %s stores %v: %w", s, e.Slot, back.Slot, ErrStructure)
			}
			if e.Orient.Oriented() != back.Orient.Oriented() || (e.Orient.Oriented() && e.Orient == back.Orient) {
				return fmt.Errorf("orientation incoherent on arc %s-%s: %s meets %s: %w", s, e.Slot, back.Orient, e.Orient, ErrStructure)
			}
		}
	}
	return nil
}
