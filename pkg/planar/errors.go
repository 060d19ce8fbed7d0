package planar

import "errors"

var (
	// ErrTypeViolation is returned when an operation meets the wrong node or
	// endpoint type: contracting through a crossing, inserting at a
	// non-vertex, taking the sign of an unoriented crossing, or comparing an
	// oriented endpoint with an unoriented one.
	ErrTypeViolation = errors.New("operation not defined for this kind")

	// ErrStructure is returned when an operation would break the diagram's
	// structure: contracting a loop, a malformed fixed-degree node, an
	// invalid permutation, a position outside a node's degree, or a splice
	// that would break orientation coherence.
	ErrStructure = errors.New("structural constraint violated")

	// ErrNotFound is returned on lookup failures: a missing node, an unset
	// endpoint slot, or a missing arc.
	ErrNotFound = errors.New("not found")
)
