// Package canon computes canonical forms of planar diagrams.
//
// Two diagrams have equal canonical forms exactly when one can be turned
// into the other by renaming nodes and re-choosing rotation entry points.
// [Canonical] therefore serves as the equality and deduplication key for
// diagram classification, and [Equal] compares two diagrams through it.
//
// # Algorithm
//
// A connected diagram is canonicalized by trying a small set of start
// endpoints: nodes of globally minimal degree are filtered to those with
// the minimal breadth-first layer profile, and each surviving node
// contributes its under positions 0 and 2 when it is a crossing, or every
// position when it is a vertex. From each start endpoint a breadth-first
// traversal walks the diagram, naming nodes a, b, …, z, A, …, Z, aa, … in
// first-visit order and expanding each node counterclockwise from its entry
// position. The diagram is relabeled accordingly, every vertex is rotated
// so its entry position becomes 0, degree-4 kinds entered on positions 1
// or 2 apply the strand-preserving involution [2,3,0,1], and the
// lexicographically smallest result across all candidates wins.
//
// Disconnected diagrams are decomposed, canonicalized per component with
// the framing held aside, recombined by disjoint union in component order,
// and the original framing is restored on the result.
//
// # Known limitation
//
// Diagrams containing degree-2 vertices can yield a non-unique canonical
// form. Callers that need strict uniqueness should remove bivalent vertices
// first where the diagram semantics allow it.
package canon
