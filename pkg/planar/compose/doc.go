// Package compose splits planar diagrams into connected components and
// merges diagrams by disjoint union.
//
// # Components
//
// Two nodes belong to the same component when an arc joins them. Grouping
// runs union-find with path compression and union by rank over node names,
// so component queries stay near-linear in the number of arcs. [Decompose]
// extracts one free-standing diagram per component in a deterministic
// order; [DisjointUnion] is its inverse up to relabeling.
//
// # Framing
//
// Decomposition moves the framing of the whole diagram onto the first part
// and frames every other part 0; union sums framings when at least one
// input carries one. Chaining the two operations therefore preserves the
// framing, which canonicalization of disconnected diagrams relies on.
//
// # Relabeling
//
// [DisjointUnion] never identifies nodes: every node of every input is
// renamed to a fresh name, so the same diagram can appear as an input more
// than once. [DisjointUnionWithMaps] additionally reports where each input
// node ended up, which join and tangle operations need.
package compose
