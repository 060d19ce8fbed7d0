// Package classify provides the core classification loop: generate
// diagrams, canonicalize them, and catalog the distinct canonical forms.
//
// This package implements the complete generate → canonicalize → catalog
// loop that can be used by the CLI and by batch jobs. By centralizing
// this logic, we ensure consistent behavior across all entry points.
//
// # Usage
//
// Create a Runner and execute a run:
//
//	runner := classify.NewRunner(store, logger)
//	inputs, err := classify.FamilyInputs("trefoil", "hopf")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, classify.Options{Inputs: inputs})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d new forms\n", result.Stats.Added)
package classify

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/catalog"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

// Input is one diagram to classify, tagged with the family it came from.
type Input struct {
	Family  string
	Diagram *planar.Diagram
}

// Options configures a classification run.
type Options struct {
	// Inputs are the diagrams to classify, in order.
	Inputs []Input

	// RunID identifies the run in logs and hooks. Defaults to a fresh
	// UUID.
	RunID string

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Result contains the outputs of a classification run.
type Result struct {
	// RunID is the identifier the run was logged under.
	RunID string

	// Records are the newly catalogued canonical forms, in input order.
	Records []catalog.Record

	// Stats counts the run outcomes.
	Stats Stats
}

// Stats contains classification run statistics.
type Stats struct {
	Total      int
	Added      int
	Duplicates int
	Failed     int
	CanonTime  time.Duration
	StoreTime  time.Duration
}

// FamilyInputs builds one input per named family. With no arguments it
// covers every registered family.
func FamilyInputs(families ...string) ([]Input, error) {
	if len(families) == 0 {
		families = build.Families()
	}
	inputs := make([]Input, 0, len(families))
	for _, family := range families {
		d, err := build.New(family)
		if err != nil {
			return nil, fmt.Errorf("family inputs: %w", err)
		}
		inputs = append(inputs, Input{Family: family, Diagram: d})
	}
	return inputs, nil
}

// RandomInputs generates count random walks of the given length. Walk i
// uses seed+i, so a run is reproducible from the base seed.
func RandomInputs(seed int64, count, steps int) ([]Input, error) {
	inputs := make([]Input, 0, count)
	for i := 0; i < count; i++ {
		d, err := build.Random(seed+int64(i), steps)
		if err != nil {
			return nil, fmt.Errorf("random inputs: %w", err)
		}
		inputs = append(inputs, Input{Family: "random", Diagram: d})
	}
	return inputs, nil
}
