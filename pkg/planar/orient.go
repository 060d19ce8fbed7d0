package planar

// Unorient removes every orientation class from the diagram in place.
func Unorient(d *Diagram) {
	for _, nd := range d.nodes {
		for i := range nd.ends {
			if !nd.ends[i].IsZero() {
				nd.ends[i].Orient = Unoriented
			}
		}
	}
}

// ReverseOrientation reverses every strand in place by swapping the
// ingoing and outgoing classes on all endpoints. Unoriented endpoints are
// unchanged, and orientation coherence is preserved.
func ReverseOrientation(d *Diagram) {
	for _, nd := range d.nodes {
		for i := range nd.ends {
			nd.ends[i].Orient = nd.ends[i].Orient.Reverse()
		}
	}
}

// mirrorPerm rotates a crossing's incidence list one position, moving the
// strand on positions 0 and 2 over the strand on 1 and 3.
var mirrorPerm = []int{1, 2, 3, 0}

// Mirror switches every classical crossing in place, turning the diagram
// into its mirror image. Virtual crossings are their own mirror image and
// vertices carry no over/under structure, so both are left alone.
func Mirror(d *Diagram) error {
	for _, name := range d.Crossings() {
		if err := PermuteNode(d, name, mirrorPerm); err != nil {
			return err
		}
	}
	return nil
}
