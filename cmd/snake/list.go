package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered game variant.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Println(variantTable(games).View())
	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}

// variantTable lays the registry out as a static, unfocused table.
func variantTable(games []registry.GameInfo) table.Model {
	// Calculate column widths
	idW, titleW := len("ID"), len("Title")
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
		rows = append(rows, table.Row{g.ID, g.Title})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: idW},
			{Title: "Title", Width: titleW},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // rows plus header
		table.WithFocused(false),
	)

	// Plain styles: no highlighted cursor row outside an interactive program
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t
}
