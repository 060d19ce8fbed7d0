package planar

import (
	"fmt"
	"strings"
)

func kindLetter(k NodeKind) string {
	switch k {
	case KindCrossing:
		return "X"
	case KindVirtual:
		return "VX"
	default:
		return "V"
	}
}

// String renders the diagram as a one-line adjacency listing, for example
//
//	Diagram with 3 nodes, 3 arcs, and adjacencies a → V(b0 c0), b → V(a0 c1), c → V(a1 b1)
//
// Nodes appear in sorted name order; each cell shows the slot it connects
// to, or _ for an unset placeholder. Orientation and attributes do not show
// in this compact form.
func (d *Diagram) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Diagram with %d nodes, %d arcs", d.NodeCount(), d.ArcCount())
	if d.framed {
		fmt.Fprintf(&b, ", framing %d", d.framing)
	}
	names := d.Nodes()
	if len(names) == 0 {
		return b.String()
	}
	b.WriteString(", and adjacencies ")
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		nd := d.nodes[name]
		b.WriteString(name.String())
		b.WriteString(" → ")
		b.WriteString(kindLetter(nd.kind))
		b.WriteByte('(')
		for j, e := range nd.ends {
			if j > 0 {
				b.WriteByte(' ')
			}
			if e.IsZero() {
				b.WriteByte('_')
			} else {
				b.WriteString(e.String())
			}
		}
		b.WriteByte(')')
	}
	return b.String()
}
