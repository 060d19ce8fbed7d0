package build_test

import (
	"fmt"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

func ExampleTrefoil() {
	d, _ := build.Trefoil()
	fmt.Println(d)
	// Output:
	// Diagram with 3 nodes, 6 arcs, and adjacencies a → X(c3 c2 b1 b0), b → X(a3 a2 c1 c0), c → X(b3 b2 a1 a0)
}

func ExampleNew() {
	for _, family := range build.Families() {
		d, _ := build.New(family)
		fmt.Printf("%s: %d nodes, %d arcs\n", family, d.NodeCount(), d.ArcCount())
	}
	// Output:
	// cycle: 3 nodes, 3 arcs
	// figure-eight: 4 nodes, 8 arcs
	// handcuff: 2 nodes, 3 arcs
	// hopf: 2 nodes, 4 arcs
	// path: 3 nodes, 2 arcs
	// theta: 2 nodes, 3 arcs
	// trefoil: 3 nodes, 6 arcs
	// unknot: 1 nodes, 1 arcs
}
