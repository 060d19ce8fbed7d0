package compose

import (
	"fmt"
	"maps"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// DisjointUnion merges the given diagrams into one with no identification
// of nodes or arcs. Every node of every input is relabeled to a fresh name:
// integers 0, 1, 2, … when every input uses integer names throughout, and
// alphabetic names a, b, c, … otherwise. Framings are summed when at least
// one input is framed; diagram-level attributes merge left to right.
func DisjointUnion(parts ...*planar.Diagram) (*planar.Diagram, error) {
	out, _, err := DisjointUnionWithMaps(parts...)
	return out, err
}

// DisjointUnionWithMaps is [DisjointUnion] returning additionally one
// old-name to new-name map per input, in input order. Join operations use
// the maps to locate the copied nodes inside the union.
func DisjointUnionWithMaps(parts ...*planar.Diagram) (*planar.Diagram, []map[planar.Name]planar.Name, error) {
	allInt := true
	for _, part := range parts {
		for _, name := range part.Nodes() {
			if !name.IsInt() {
				allInt = false
			}
		}
	}
	next := 0
	fresh := func() planar.Name {
		next++
		if allInt {
			return planar.IntName(next - 1)
		}
		return planar.AlphabeticName(next)
	}

	attrs := planar.Attrs{}
	renames := make([]map[planar.Name]planar.Name, len(parts))
	for i, part := range parts {
		maps.Copy(attrs, part.Attrs())
		renames[i] = make(map[planar.Name]planar.Name, part.NodeCount())
		for _, name := range part.Nodes() {
			renames[i][name] = fresh()
		}
	}

	out := planar.New(attrs)
	for i, part := range parts {
		m := renames[i]
		err := copyInto(out, part, part.Nodes(), func(n planar.Name) planar.Name { return m[n] })
		if err != nil {
			return nil, nil, fmt.Errorf("disjoint union: part %d: %w", i, err)
		}
	}

	framing, framed := 0, false
	for _, part := range parts {
		if f, ok := part.Framing(); ok {
			framing += f
			framed = true
		}
	}
	if framed {
		out.SetFraming(framing)
	}
	return out, renames, nil
}
