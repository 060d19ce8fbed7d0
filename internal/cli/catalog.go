package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/catalog"
)

// digestDisplayLen is how many digest characters listings show.
const digestDisplayLen = 12

// catalogCommand creates the catalog management command.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the canonical-form catalog",
	}

	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogGetCommand())
	cmd.AddCommand(c.catalogDeleteCommand())
	cmd.AddCommand(c.catalogClearCommand())
	cmd.AddCommand(c.catalogPathCommand())

	return cmd
}

// catalogListCommand creates the "catalog list" subcommand.
func (c *CLI) catalogListCommand() *cobra.Command {
	var sf storeFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all catalogued canonical forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, sf)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list catalog: %w", err)
			}
			if len(records) == 0 {
				printInfo("Catalog is empty")
				return nil
			}

			printCatalogTable(records)
			printDetail("%d canonical forms", len(records))
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}

// printCatalogTable renders records as a bordered table.
func printCatalogTable(records []catalog.Record) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		family := rec.Family
		if family == "" {
			family = "—"
		}
		framing := "—"
		if rec.Framed {
			framing = strconv.Itoa(rec.Framing)
		}
		rows = append(rows, []string{
			rec.Digest[:digestDisplayLen],
			family,
			strconv.Itoa(rec.Nodes),
			strconv.Itoa(rec.Arcs),
			strconv.Itoa(rec.Crossings),
			framing,
			rec.CreatedAt.Format("2006-01-02"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Digest", "Family", "Nodes", "Arcs", "Crossings", "Framing", "Added").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}

// catalogGetCommand creates the "catalog get" subcommand.
func (c *CLI) catalogGetCommand() *cobra.Command {
	var sf storeFlags

	cmd := &cobra.Command{
		Use:   "get <digest>",
		Short: "Show one catalogued record",
		Long: `Show one catalogued record by digest.

A unique digest prefix is enough; listings show the first 12 characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, sf)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			rec, err := findRecord(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			printKeyValue("digest", rec.Digest)
			if rec.Family != "" {
				printKeyValue("family", rec.Family)
			}
			printKeyValue("nodes", strconv.Itoa(rec.Nodes))
			printKeyValue("arcs", strconv.Itoa(rec.Arcs))
			printKeyValue("crossings", strconv.Itoa(rec.Crossings))
			printKeyValue("oriented", strconv.FormatBool(rec.Oriented))
			if rec.Framed {
				printKeyValue("framing", strconv.Itoa(rec.Framing))
			}
			printKeyValue("added", rec.CreatedAt.Format("2006-01-02 15:04:05"))
			printNewline()
			fmt.Println(rec.Form)
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}

// catalogDeleteCommand creates the "catalog delete" subcommand.
func (c *CLI) catalogDeleteCommand() *cobra.Command {
	var sf storeFlags

	cmd := &cobra.Command{
		Use:   "delete <digest>",
		Short: "Delete one catalogued record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, sf)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			rec, err := findRecord(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), rec.Digest); err != nil {
				return fmt.Errorf("delete %s: %w", rec.Digest[:digestDisplayLen], err)
			}
			printSuccess("Deleted %s", rec.Digest[:digestDisplayLen])
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}

// catalogClearCommand creates the "catalog clear" subcommand.
func (c *CLI) catalogClearCommand() *cobra.Command {
	var sf storeFlags

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every catalogued record",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, sf)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list catalog: %w", err)
			}
			if len(records) == 0 {
				printInfo("Catalog is empty")
				return nil
			}

			count := 0
			for _, rec := range records {
				if err := store.Delete(cmd.Context(), rec.Digest); err != nil {
					return fmt.Errorf("delete %s: %w", rec.Digest[:digestDisplayLen], err)
				}
				count++
			}

			printSuccess("Removed %d records", count)
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}

// catalogPathCommand creates the "catalog path" subcommand.
func (c *CLI) catalogPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file backend's catalog directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.Config.Catalog.Dir
			if dir == "" {
				var err error
				if dir, err = catalogDir(); err != nil {
					return fmt.Errorf("get catalog dir: %w", err)
				}
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// findRecord resolves a digest or unique digest prefix to its record.
func findRecord(ctx context.Context, store catalog.Store, prefix string) (catalog.Record, error) {
	rec, err := store.Get(ctx, prefix)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return catalog.Record{}, fmt.Errorf("get %s: %w", prefix, err)
	}

	records, err := store.List(ctx)
	if err != nil {
		return catalog.Record{}, fmt.Errorf("list catalog: %w", err)
	}

	var matches []catalog.Record
	for _, r := range records {
		if prefix != "" && strings.HasPrefix(r.Digest, prefix) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return catalog.Record{}, fmt.Errorf("no record matches %q: %w", prefix, catalog.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return catalog.Record{}, fmt.Errorf("digest prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}
