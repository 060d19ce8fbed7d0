package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/canon"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/render"
)

// Render output formats.
const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderCommand creates the render command for writing diagram drawings.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format    string
		output    string
		detailed  bool
		canonical bool
	)

	cmd := &cobra.Command{
		Use:   "render <family>",
		Short: "Write a DOT or SVG rendering of a diagram",
		Long: `Render a diagram family as a node-link drawing.

The drawing shows the incidence structure: one graph node per diagram
node, one edge per arc. SVG output is produced in-process via Graphviz;
DOT output can be post-processed with external Graphviz tools.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatSVG && format != formatDOT {
				return fmt.Errorf("unknown format %q (available: %s, %s)", format, formatSVG, formatDOT)
			}
			return c.runRender(args[0], format, output, detailed, canonical)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg or dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <family>.<format>)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with kinds and edges with rotation positions")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "render the canonical form instead of the constructed diagram")

	return cmd
}

// runRender builds the family and writes the requested rendering.
func (c *CLI) runRender(family, format, output string, detailed, canonical bool) error {
	d, err := build.New(family)
	if err != nil {
		return fmt.Errorf("build %s: %w", family, err)
	}
	if canonical {
		if d, err = canon.Canonical(d); err != nil {
			return fmt.Errorf("canonicalize %s: %w", family, err)
		}
	}

	dot := render.ToDOT(d, render.Options{Detailed: detailed})

	data := []byte(dot)
	if format == formatSVG {
		spinner := newSpinner(fmt.Sprintf("Rendering %s...", family))
		spinner.Start()
		data, err = render.SVG(dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", family, err)
		}
		spinner.Stop()
	}

	if output == "" {
		output = family + "." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", family)
	printFile(output)
	return nil
}
