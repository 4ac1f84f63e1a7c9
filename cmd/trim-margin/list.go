package main

import (
	"fmt"
	"path/filepath"

	"github.com/aziis98/trim-margin/internal/util"
	"github.com/aziis98/trim-margin/margin"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const renderedAtFormat = "2006-01-02 15:04:05"

func newListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached renders",
		Long: margin.Trim(`
			|List the sources recorded in the render cache, most recently
			|rendered first.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openDB(false); err != nil {
				return err
			}
			return a.runList(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of renders (0 for all)")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, limit int) error {
	records, err := a.db.ListRenders(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fileStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Bold(true)
	pathStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)
	noResultsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	if len(records) == 0 {
		fmt.Fprintln(out, noResultsStyle.Render("No renders recorded."))
		return nil
	}

	for i, rec := range records {
		base := util.Truncate(filepath.Base(rec.Source), 60)
		dir := util.TruncateLeft(filepath.Dir(rec.Source)+"/", 60)
		fmt.Fprintf(out, "%d. %s -> %s  %s\n   %s\n",
			i+1,
			fileStyle.Render(base),
			filepath.Base(rec.Output),
			pathStyle.Render(dir),
			fmt.Sprintf("%d/%d lines trimmed, rendered %s, hash %s",
				rec.TrimmedLines, rec.Lines,
				rec.RenderedAt.Local().Format(renderedAtFormat),
				util.Truncate(rec.Hash, 12)),
		)
	}
	fmt.Fprintln(out, countStyle.Render(fmt.Sprintf("Listed %d render(s).", len(records))))
	return nil
}
