package build

import (
	"fmt"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// Path returns the path on n vertices: two degree-1 ends joined through
// n-2 degree-2 interior vertices. n = 1 yields a single isolated vertex.
func Path(n int) (*planar.Diagram, error) {
	if n < 1 {
		return nil, fmt.Errorf("path on %d vertices: %w", n, planar.ErrStructure)
	}
	d := planar.New(nil)
	names := make([]planar.Name, n)
	for i := range names {
		names[i] = planar.AlphabeticName(i + 1)
		degree := 2
		switch {
		case n == 1:
			degree = 0
		case i == 0 || i == n-1:
			degree = 1
		}
		if err := d.AddVertex(names[i], degree, nil); err != nil {
			return nil, fmt.Errorf("path: %w", err)
		}
	}
	for i := 0; i+1 < n; i++ {
		from := planar.At(names[i], 0)
		if i > 0 {
			from.Pos = 1
		}
		if err := d.SetArc(from, planar.At(names[i+1], 0)); err != nil {
			return nil, fmt.Errorf("path: %w", err)
		}
	}
	return d, nil
}

// Cycle returns the cycle on n degree-2 vertices. n = 1 is the trivial
// loop.
func Cycle(n int) (*planar.Diagram, error) {
	if n < 1 {
		return nil, fmt.Errorf("cycle on %d vertices: %w", n, planar.ErrStructure)
	}
	d := planar.New(nil)
	names := make([]planar.Name, n)
	for i := range names {
		names[i] = planar.AlphabeticName(i + 1)
		if err := d.AddVertex(names[i], 2, nil); err != nil {
			return nil, fmt.Errorf("cycle: %w", err)
		}
	}
	for i := range names {
		next := names[(i+1)%n]
		if err := d.SetArc(planar.At(names[i], 0), planar.At(next, 1)); err != nil {
			return nil, fmt.Errorf("cycle: %w", err)
		}
	}
	return d, nil
}

// Theta returns the theta curve: two degree-3 vertices joined by three
// parallel arcs, with the two rotations mirrored so the embedding is
// planar.
func Theta() (*planar.Diagram, error) {
	d := planar.New(nil)
	a, b := planar.AlphabeticName(1), planar.AlphabeticName(2)
	for _, n := range []planar.Name{a, b} {
		if err := d.AddVertex(n, 3, nil); err != nil {
			return nil, fmt.Errorf("theta: %w", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := d.SetArc(planar.At(a, i), planar.At(b, 2-i)); err != nil {
			return nil, fmt.Errorf("theta: %w", err)
		}
	}
	return d, nil
}

// Handcuff returns the handcuff graph: two degree-3 vertices carrying one
// loop each, joined by a single arc.
func Handcuff() (*planar.Diagram, error) {
	d := planar.New(nil)
	a, b := planar.AlphabeticName(1), planar.AlphabeticName(2)
	for _, n := range []planar.Name{a, b} {
		if err := d.AddVertex(n, 3, nil); err != nil {
			return nil, fmt.Errorf("handcuff: %w", err)
		}
		if err := d.SetArc(planar.At(n, 0), planar.At(n, 1)); err != nil {
			return nil, fmt.Errorf("handcuff: %w", err)
		}
	}
	if err := d.SetArc(planar.At(a, 2), planar.At(b, 2)); err != nil {
		return nil, fmt.Errorf("handcuff: %w", err)
	}
	return d, nil
}

// Unknot returns the zero-crossing unknot diagram, a single looped
// degree-2 vertex, carrying the given framing.
func Unknot(framing int) (*planar.Diagram, error) {
	d, err := Cycle(1)
	if err != nil {
		return nil, fmt.Errorf("unknot: %w", err)
	}
	d.SetFraming(framing)
	return d, nil
}
