package build

import (
	"fmt"
	"math/rand"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// Random grows a diagram from the trivial loop by applying the given
// number of randomly chosen edits: subdividing arcs by vertices, pulling
// kinks through fresh crossings, and attaching leaves, loops and parallel
// arcs at vertices. Every intermediate diagram is fully wired, so the
// result always passes Validate, and the walk is deterministic for a
// fixed seed.
func Random(seed int64, steps int) (*planar.Diagram, error) {
	if steps < 0 {
		return nil, fmt.Errorf("random walk of %d steps: %w", steps, planar.ErrStructure)
	}
	d, err := Cycle(1)
	if err != nil {
		return nil, fmt.Errorf("random walk: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < steps; i++ {
		if err := randomStep(d, rng); err != nil {
			return nil, fmt.Errorf("random walk step %d: %w", i, err)
		}
	}
	return d, nil
}

func randomStep(d *planar.Diagram, rng *rand.Rand) error {
	switch rng.Intn(5) {
	case 0:
		_, err := planar.SubdivideArc(d, randomSlot(d, rng))
		return err
	case 1:
		// A kink: route the arc through a fresh crossing and close the
		// crossing's two free slots into a loop.
		pos := rng.Intn(4)
		w, err := planar.SubdivideEndpointByCrossing(d, randomSlot(d, rng), pos)
		if err != nil {
			return err
		}
		return d.SetArc(planar.At(w, (pos+1)%4), planar.At(w, (pos+3)%4))
	case 2:
		v, degree := randomVertex(d, rng)
		_, err := planar.InsertLeaf(d, planar.At(v, rng.Intn(degree+1)))
		return err
	case 3:
		v, degree := randomVertex(d, rng)
		_, err := planar.InsertLoop(d, planar.At(v, rng.Intn(degree+1)))
		return err
	default:
		s, ok := randomVertexArc(d, rng)
		if !ok {
			// No arc runs between two vertices right now; grow one instead.
			_, err := planar.SubdivideArc(d, randomSlot(d, rng))
			return err
		}
		_, err := planar.ParallelizeArc(d, s)
		return err
	}
}

// randomSlot picks one end of a uniformly chosen arc. The walk starts
// from a loop and never removes arcs, so there is always at least one.
func randomSlot(d *planar.Diagram, rng *rand.Rand) planar.Slot {
	arcs := d.Arcs()
	a := arcs[rng.Intn(len(arcs))]
	if rng.Intn(2) == 0 {
		return a.A.Slot
	}
	return a.B.Slot
}

// randomVertex picks a uniformly chosen vertex and its degree. The walk
// starts from a vertex and never removes nodes, so there is always one.
func randomVertex(d *planar.Diagram, rng *rand.Rand) (planar.Name, int) {
	vertices := d.Vertices()
	v := vertices[rng.Intn(len(vertices))]
	degree, _ := d.Degree(v)
	return v, degree
}

// randomVertexArc picks a uniformly chosen arc whose both ends sit on
// vertices, reporting false when no such arc exists.
func randomVertexArc(d *planar.Diagram, rng *rand.Rand) (planar.Slot, bool) {
	var eligible []planar.Slot
	for _, a := range d.Arcs() {
		if isVertex(d, a.A.Slot.Node) && isVertex(d, a.B.Slot.Node) {
			eligible = append(eligible, a.A.Slot)
		}
	}
	if len(eligible) == 0 {
		return planar.Slot{}, false
	}
	return eligible[rng.Intn(len(eligible))], true
}

func isVertex(d *planar.Diagram, n planar.Name) bool {
	kind, err := d.KindOf(n)
	return err == nil && kind == planar.KindVertex
}
