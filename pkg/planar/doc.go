// Package planar provides the rotation-system model of planar diagrams used
// for knot and spatial-graph projections, together with the structural
// editing primitives that mutate it.
//
// # Overview
//
// A planar diagram encodes a plane graph combinatorially: every node carries
// a counterclockwise cyclic ordering of its incident half-edges (endpoints),
// and every arc is a pair of endpoints that reference each other. This
// encoding fixes the embedding up to homeomorphism, which is all that knot
// and spatial-graph classification needs. The package is the foundation the
// rest of the module builds on: canonicalization, component decomposition,
// the diagram families, and the deduplication catalog all work in terms of
// these types.
//
// # Slots, Endpoints and Mutuality
//
// A [Slot] addresses one rotation position: node name plus index. The cell
// at a slot stores an [Endpoint] descriptor of the *adjacent* endpoint, so
// [Diagram.Twin] is a single lookup. The central invariant is mutuality:
// whenever the cell at (n, i) names (m, j), the cell at (m, j) names (n, i).
// [Diagram.SetEndpoint] writes one directed half and leaves the other side
// to the caller; [Diagram.SetArc] and [Diagram.SetOrientedArc] write both
// halves together. Every editing primitive in this package restores
// mutuality before it returns, and [Diagram.Validate] re-verifies it.
//
// # Node Kinds
//
// Three node kinds cover the diagram zoo:
//
//   - [KindVertex]: variable degree, the generic graph vertex
//   - [KindCrossing]: fixed degree 4; positions 0 and 2 carry the under
//     strand, 1 and 3 the over strand, and oriented crossings have a sign
//   - [KindVirtual]: fixed degree 4 with no over/under distinction
//
// # Editing Primitives
//
// Package-level functions implement the structural edits: [InsertArc],
// [InsertLoop], [InsertLeaf], [ParallelizeArc], [SubdivideArc],
// [SubdivideEndpoint], [SubdivideEndpointByCrossing], [ContractArc],
// [RemoveBivalentVertex], [PullAndPlug], [Replug], [SwapEndpoints] and
// [PermuteNode]. Insertions renumber twin references in two phases before
// splicing new cells in, so the mutuality invariant survives positions
// shifting under existing references.
//
// # Ordering
//
// Names, attribute values, endpoints, nodes and whole diagrams each carry a
// single three-way comparison from which equality and ordering derive.
// Canonicalization leans on this: it picks the lexicographically smallest
// candidate diagram. Comparing an oriented endpoint with an unoriented one
// is a type violation rather than an arbitrary order.
//
// # Concurrency
//
// Diagrams are not safe for concurrent use. All mutation is synchronous and
// in place; [Diagram.Copy] returns a fully independent deep copy.
package planar
