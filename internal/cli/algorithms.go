package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/streemap/pkg/pipeline"
	"github.com/matzehuels/streemap/pkg/treemap"
)

// algorithmsCommand creates the algorithms command listing layout algorithms.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available layout algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), algorithmTable())
			return nil
		},
	}
}

// algorithmTable renders every algorithm with its description, marking the default.
func algorithmTable() string {
	var rows [][]string
	for _, a := range treemap.Algorithms() {
		mark := ""
		if a == pipeline.DefaultAlgorithm {
			mark = "default"
		}
		rows = append(rows, []string{a.String(), a.Description(), mark})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Description", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 2:
				return StyleSuccess
			}
			return StyleDim
		})
	return t.Render()
}
