// Package render draws planar diagrams as node-link graphs.
//
// # Overview
//
// This package produces structural visualizations using Graphviz: one graph
// node per diagram node, one edge per arc. It shows the incidence structure
// of a diagram, not a geometric knot drawing.
//
// # Usage
//
// Convert a diagram to DOT format, then render to SVG:
//
//	dot := render.ToDOT(d, render.Options{Detailed: false})
//	svg, err := render.SVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include kind and degree, and edge
//     labels show the rotation positions an arc occupies at each end.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [SVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Unoriented diagrams render as undirected graphs. When every endpoint
// carries an orientation, the output is a digraph and each edge points in
// the direction of strand travel. Node shapes follow node kinds: vertices
// are ellipses, crossings boxes, virtual crossings diamonds. Color
// attributes map to Graphviz fill and edge colors.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; [ToDOT] itself has no external dependencies.
package render
