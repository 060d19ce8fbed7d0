package planar

import "fmt"

// Relabel returns a copy of the diagram with node names replaced according
// to the mapping. Names absent from the mapping are kept; mapping entries
// for names not present in the diagram are ignored. The resulting name set
// must be collision-free, otherwise [ErrStructure] is returned.
func Relabel(d *Diagram, mapping map[Name]Name) (*Diagram, error) {
	rename := func(n Name) Name {
		if to, ok := mapping[n]; ok {
			return to
		}
		return n
	}
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
		to := rename(name)
		if to.IsZero() {
			return nil, fmt.Errorf("relabel %s: empty target name: %w", name, ErrStructure)
		}
		if _, taken := c.nodes[to]; taken {
			return nil, fmt.Errorf("relabel %s to %s: name collision: %w", name, to, ErrStructure)
		}
		cn := nd.clone()
		for i := range cn.ends {
			if cn.ends[i].IsZero() {
				continue
			}
			cn.ends[i].Node = rename(cn.ends[i].Node)
		}
		c.nodes[to] = cn
	}
	return c, nil
}
