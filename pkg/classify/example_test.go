package classify_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/classify"
)

func ExampleRunner_Execute() {
	inputs, _ := classify.FamilyInputs()
	runner := classify.NewRunner(nil, log.New(io.Discard))

	result, _ := runner.Execute(context.Background(), classify.Options{Inputs: inputs})
	fmt.Printf("classified %d diagrams into %d canonical forms\n",
		result.Stats.Total, result.Stats.Added)
	// Output:
	// classified 8 diagrams into 8 canonical forms
}
