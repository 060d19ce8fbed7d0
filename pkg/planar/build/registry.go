package build

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
)

// ErrUnknownFamily reports a family name with no registered constructor.
var ErrUnknownFamily = errors.New("unknown diagram family")

var families = map[string]func() (*planar.Diagram, error){
	"path":         func() (*planar.Diagram, error) { return Path(3) },
	"cycle":        func() (*planar.Diagram, error) { return Cycle(3) },
	"theta":        Theta,
	"handcuff":     Handcuff,
	"unknot":       func() (*planar.Diagram, error) { return Unknot(0) },
	"trefoil":      Trefoil,
	"figure-eight": FigureEight,
	"hopf":         HopfLink,
}

// Families lists the registered family names in sorted order.
func Families() []string {
	return slices.Sorted(maps.Keys(families))
}

// New builds the named family's default diagram. Returns
// [ErrUnknownFamily] for a name that [Families] does not list.
func New(family string) (*planar.Diagram, error) {
	f, ok := families[family]
	if !ok {
		return nil, fmt.Errorf("%q: %w", family, ErrUnknownFamily)
	}
	return f()
}
