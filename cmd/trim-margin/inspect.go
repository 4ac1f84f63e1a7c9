package main

import (
	"fmt"
	"strconv"

	"github.com/aziis98/trim-margin/internal/util"
	"github.com/aziis98/trim-margin/margin"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	inspectHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("13")).
				Bold(true)
	inspectStatusStyles = map[margin.Status]lipgloss.Style{
		margin.Trimmed:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		margin.Unmarked: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		margin.Dropped:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	inspectCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10")).
				Bold(true)
)

func newInspectCmd(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show what happens to every line",
		Long: margin.Trim(`
			|Print a table with one row per input line: whether its margin was
			|trimmed, whether it passes through unmarked, or whether it was
			|dropped as a blank edge line. Tabs, carriage returns and trailing
			|spaces are made visible. Reads stdin without a file or with "-".
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "-"
			if len(args) == 1 {
				arg = args[0]
			}
			text, err := readInput(cmd, a.loader(), arg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderInspection(displayName(arg), a.cfg.Trimmer(), text, width))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 60, "maximum width of the line columns")
	return cmd
}

// renderInspection renders the per-line report of text as a table followed by a summary
func renderInspection(name string, t margin.Trimmer, text string, width int) string {
	reports := t.Analyze(text)

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		result := util.Truncate(util.Visible(r.Result), width)
		if r.Status == margin.Dropped {
			result = ""
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Number),
			r.Status.String(),
			util.Truncate(util.Visible(r.Original), width),
			result,
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("3"))).
		Headers("#", "STATUS", "INPUT", "OUTPUT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 1 && row >= 0 && row < len(reports) {
				return inspectStatusStyles[reports[row].Status].Padding(0, 1)
			}
			return style
		})

	counts := margin.Counts(reports)
	header := inspectHeaderStyle.Render(fmt.Sprintf("Margin %q in %s", t.Prefix(), name))
	summary := inspectCountStyle.Render(fmt.Sprintf("%d trimmed, %d unmarked, %d dropped",
		counts[margin.Trimmed], counts[margin.Unmarked], counts[margin.Dropped]))

	return header + "\n" + tbl.Render() + "\n" + summary + "\n"
}
