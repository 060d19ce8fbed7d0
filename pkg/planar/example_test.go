package planar_test

import (
	"fmt"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

func ExampleDiagram_basic() {
	// Build a triangle of bivalent vertices: a-b, a-c, b-c.
	d := planar.New(nil)
	a, b, c := planar.NameOf("a"), planar.NameOf("b"), planar.NameOf("c")
	_ = d.AddVertex(a, 2, nil)
	_ = d.AddVertex(b, 2, nil)
	_ = d.AddVertex(c, 2, nil)
	_ = d.SetArc(planar.At(a, 0), planar.At(b, 0))
	_ = d.SetArc(planar.At(a, 1), planar.At(c, 0))
	_ = d.SetArc(planar.At(b, 1), planar.At(c, 1))

	fmt.Println(d)
	// Output:
	// Diagram with 3 nodes, 3 arcs, and adjacencies a → V(b0 c0), b → V(a0 c1), c → V(a1 b1)
}

func ExampleDiagram_crossings() {
	// Two crossings joined by four arcs: the standard Hopf link shadow.
	d := planar.New(nil)
	a, b := planar.NameOf("a"), planar.NameOf("b")
	_ = d.AddCrossing(a, nil)
	_ = d.AddCrossing(b, nil)
	_ = d.SetArc(planar.At(a, 0), planar.At(b, 3))
	_ = d.SetArc(planar.At(a, 1), planar.At(b, 2))
	_ = d.SetArc(planar.At(a, 2), planar.At(b, 1))
	_ = d.SetArc(planar.At(a, 3), planar.At(b, 0))

	tw, _ := d.Twin(planar.At(a, 0))
	fmt.Println(d)
	fmt.Println("Twin of a0:", tw)
	// Output:
	// Diagram with 2 nodes, 4 arcs, and adjacencies a → X(b3 b2 b1 b0), b → X(a3 a2 a1 a0)
	// Twin of a0: b3
}

func ExampleSubdivideArc() {
	// A single strand between two leaves, split by a fresh vertex.
	d := planar.New(nil)
	a, b := planar.NameOf("a"), planar.NameOf("b")
	_ = d.AddVertex(a, 1, nil)
	_ = d.AddVertex(b, 1, nil)
	_ = d.SetArc(planar.At(a, 0), planar.At(b, 0))

	w, _ := planar.SubdivideArc(d, planar.At(a, 0))
	fmt.Println("New vertex:", w)
	fmt.Println(d)
	// Output:
	// New vertex: c
	// Diagram with 3 nodes, 2 arcs, and adjacencies a → V(c0), b → V(c1), c → V(a0 b0)
}

func ExampleRemoveBivalentVertices() {
	// A strand threaded through two passthrough vertices: a-b-c-d.
	d := planar.New(nil)
	a, b := planar.NameOf("a"), planar.NameOf("b")
	c, e := planar.NameOf("c"), planar.NameOf("d")
	_ = d.AddVertex(a, 1, nil)
	_ = d.AddVertex(b, 2, nil)
	_ = d.AddVertex(c, 2, nil)
	_ = d.AddVertex(e, 1, nil)
	_ = d.SetArc(planar.At(a, 0), planar.At(b, 0))
	_ = d.SetArc(planar.At(b, 1), planar.At(c, 0))
	_ = d.SetArc(planar.At(c, 1), planar.At(e, 0))

	n, _ := planar.RemoveBivalentVertices(d, planar.BivalentOptions{})
	fmt.Println("Removed:", n)
	fmt.Println("Arcs:", d.Arcs())
	// Output:
	// Removed: 2
	// Arcs: [a0-d0]
}

func ExampleDiagram_Sign() {
	// Strands enter the crossing at slots 0 and 1 and leave at 2 and 3.
	d := planar.New(nil)
	x := planar.NameOf("x")
	a, b := planar.NameOf("a"), planar.NameOf("b")
	c, e := planar.NameOf("c"), planar.NameOf("d")
	_ = d.AddCrossing(x, nil)
	for _, leaf := range []planar.Name{a, b, c, e} {
		_ = d.AddVertex(leaf, 1, nil)
	}
	_ = d.SetOrientedArc(planar.At(a, 0), planar.At(x, 0))
	_ = d.SetOrientedArc(planar.At(b, 0), planar.At(x, 1))
	_ = d.SetOrientedArc(planar.At(x, 2), planar.At(c, 0))
	_ = d.SetOrientedArc(planar.At(x, 3), planar.At(e, 0))

	sign, _ := d.Sign(x)
	fmt.Println("Oriented:", d.IsOriented())
	fmt.Println("Sign:", sign)
	// Output:
	// Oriented: true
	// Sign: -1
}
