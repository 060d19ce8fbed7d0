package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/catalog"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/planar/build"
)

// canonCommand creates the canon command for printing canonical forms.
func (c *CLI) canonCommand() *cobra.Command {
	var digestOnly bool

	cmd := &cobra.Command{
		Use:   "canon <family>",
		Short: "Print the canonical form and digest of a diagram",
		Long: `Canonicalize a diagram family and print its canonical adjacency form
together with the catalog digest of that form.

Two diagrams share a digest exactly when their canonical forms are equal,
so the digest identifies the diagram up to relabeling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCanon(args[0], digestOnly)
		},
	}

	cmd.Flags().BoolVar(&digestOnly, "digest-only", false, "print only the digest (for scripting)")

	return cmd
}

// runCanon canonicalizes the family and prints the result.
func (c *CLI) runCanon(family string, digestOnly bool) error {
	d, err := build.New(family)
	if err != nil {
		return fmt.Errorf("build %s: %w", family, err)
	}

	rec, err := catalog.NewRecord(d, family)
	if err != nil {
		return fmt.Errorf("canonicalize %s: %w", family, err)
	}

	if digestOnly {
		fmt.Println(rec.Digest)
		return nil
	}

	printKeyValue("family", family)
	printKeyValue("digest", rec.Digest)
	printNewline()
	fmt.Println(rec.Form)
	return nil
}
