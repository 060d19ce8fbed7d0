package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// Options configures node-link rendering.
type Options struct {
	// Detailed includes node kinds, degrees and rotation positions.
	// When false, only node names are shown.
	Detailed bool
}

// ToDOT converts a diagram to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered using [SVG].
//
// Unoriented diagrams produce an undirected graph; fully oriented diagrams
// produce a digraph whose edges follow strand travel. Output is
// deterministic: nodes and arcs appear in their sorted order.
func ToDOT(d *planar.Diagram, opts Options) string {
	kind, edgeOp := "graph", "--"
	if d.IsOriented() {
		kind, edgeOp = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if f, ok := d.Framing(); ok {
		fmt.Fprintf(&buf, "  label=\"framing %d\";\n", f)
	}
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes() {
		label := fmtLabel(d, n, opts.Detailed)
		attrs := fmtNodeAttrs(d, n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, a := range d.Arcs() {
		from, to := a.A, a.B
		if to.Orient == planar.Outgoing {
			from, to = to, from
		}
		if attrs := fmtArcAttrs(from, to, opts.Detailed); len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q %s %q [%s];\n", from.Node, edgeOp, to.Node, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q %s %q;\n", from.Node, edgeOp, to.Node)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(d *planar.Diagram, n planar.Name, detailed bool) string {
	if !detailed {
		return n.String()
	}

	// Lookups cannot fail for names returned by Nodes.
	kind, _ := d.KindOf(n)
	deg, _ := d.Degree(n)
	parts := []string{fmt.Sprintf("%s, degree %d", kind, deg)}

	attrs, _ := d.NodeAttrs(n)
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, attrs[k]))
	}

	return n.String() + "\n" + strings.Join(parts, "\n")
}

func fmtNodeAttrs(d *planar.Diagram, n planar.Name, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}

	kind, _ := d.KindOf(n)
	switch kind {
	case planar.KindCrossing:
		attrs = append(attrs, "shape=box")
	case planar.KindVirtual:
		attrs = append(attrs, "shape=diamond")
	}

	na, _ := d.NodeAttrs(n)
	if c, ok := na[planar.AttrColor]; ok {
		if text, ok := c.Text(); ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", text))
		}
	}

	return attrs
}

func fmtArcAttrs(from, to planar.Endpoint, detailed bool) []string {
	var attrs []string
	if text, ok := arcColor(from, to); ok {
		attrs = append(attrs, fmt.Sprintf("color=%q", text))
	}
	if detailed {
		attrs = append(attrs,
			fmt.Sprintf("taillabel=%q", strconv.Itoa(from.Pos)),
			fmt.Sprintf("headlabel=%q", strconv.Itoa(to.Pos)))
	}
	return attrs
}

// arcColor returns the color attribute carried by either endpoint,
// preferring the tail end.
func arcColor(from, to planar.Endpoint) (string, bool) {
	for _, e := range []planar.Endpoint{from, to} {
		if c, ok := e.Attrs[planar.AttrColor]; ok {
			if text, ok := c.Text(); ok {
				return text, true
			}
		}
	}
	return "", false
}

// SVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or saving.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
