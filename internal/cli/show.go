package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

// showCommand creates the show command for printing a diagram's structure.
func (c *CLI) showCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "show [family]",
		Short: "Build a diagram family and print its structure",
		Long: fmt.Sprintf(`Build a named diagram family and print its adjacency structure.

Without an argument an interactive picker is shown.

Available families: %s`, strings.Join(build.Families(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := ""
			if len(args) == 1 {
				family = args[0]
			} else {
				selected, err := pickFamily()
				if err != nil {
					return err
				}
				if selected == "" {
					printDetail("No selection made")
					return nil
				}
				family = selected
			}
			return c.runShow(family, detailed)
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "include node kinds and degrees")

	return cmd
}

// runShow builds the family and prints it.
func (c *CLI) runShow(family string, detailed bool) error {
	d, err := build.New(family)
	if err != nil {
		return fmt.Errorf("build %s: %w", family, err)
	}

	fmt.Println(StyleTitle.Render(family))
	fmt.Println(d.String())
	printStats(d.NodeCount(), d.ArcCount(), len(d.Crossings())+len(d.VirtualCrossings()))

	if detailed {
		printNewline()
		for _, n := range d.Nodes() {
			kind, _ := d.KindOf(n)
			deg, _ := d.Degree(n)
			printDetail("%-4s %s, degree %d", n, kind, deg)
		}
	}

	printNewline()
	printNextStep("Classify it", fmt.Sprintf("%s classify --family %s", appName, family))
	return nil
}
