// Package build constructs the standard diagram families used by tests,
// examples and the command line tools.
//
// Every constructor returns a freshly allocated diagram with nodes named
// a, b, c, … in construction order, so repeated calls are independent and
// deterministic. [FromPD] assembles a crossing diagram from its planar
// diagram code, and [Random] grows arbitrary valid diagrams from a seed.
package build
