package build

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// FromPD assembles a crossing diagram from a planar diagram code. Row r
// lists the edge labels met counterclockwise around crossing r, starting
// at the ingoing under strand, and every label must name exactly two
// cells. Crossings are named a, b, c, … in row order. Returns
// [planar.ErrStructure] when a label does not appear exactly twice.
func FromPD(rows ...[4]int) (*planar.Diagram, error) {
	count := map[int]int{}
	for _, row := range rows {
		for _, label := range row {
			count[label]++
		}
	}
	for _, label := range slices.Sorted(maps.Keys(count)) {
		if count[label] != 2 {
			return nil, fmt.Errorf("pd code: label %d appears %d times, want 2: %w", label, count[label], planar.ErrStructure)
		}
	}

	d := planar.New(nil)
	names := make([]planar.Name, len(rows))
	for i := range rows {
		names[i] = planar.AlphabeticName(i + 1)
		if err := d.AddCrossing(names[i], nil); err != nil {
			return nil, fmt.Errorf("pd code: %w", err)
		}
	}
	open := map[int]planar.Slot{}
	for i, row := range rows {
		for p, label := range row {
			s := planar.At(names[i], p)
			at, ok := open[label]
			if !ok {
				open[label] = s
				continue
			}
			if err := d.SetArc(at, s); err != nil {
				return nil, fmt.Errorf("pd code: %w", err)
			}
			delete(open, label)
		}
	}
	return d, nil
}

// Trefoil returns the alternating three-crossing trefoil shadow.
func Trefoil() (*planar.Diagram, error) {
	d, err := FromPD([4]int{1, 2, 3, 4}, [4]int{4, 3, 5, 6}, [4]int{6, 5, 2, 1})
	if err != nil {
		return nil, fmt.Errorf("trefoil: %w", err)
	}
	return d, nil
}

// FigureEight returns the alternating four-crossing figure-eight shadow.
func FigureEight() (*planar.Diagram, error) {
	d, err := FromPD([4]int{1, 7, 2, 6}, [4]int{3, 1, 4, 8}, [4]int{5, 3, 6, 2}, [4]int{7, 5, 8, 4})
	if err != nil {
		return nil, fmt.Errorf("figure eight: %w", err)
	}
	return d, nil
}

// HopfLink returns the two-crossing Hopf link shadow.
func HopfLink() (*planar.Diagram, error) {
	d, err := FromPD([4]int{1, 2, 3, 4}, [4]int{4, 3, 2, 1})
	if err != nil {
		return nil, fmt.Errorf("hopf link: %w", err)
	}
	return d, nil
}
