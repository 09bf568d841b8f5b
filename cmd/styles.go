package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
)

// Centralized styles for consistent UX across views.
var (
	appTitle       = "fishtrack"
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236"))
	contentStyle   = lipgloss.NewStyle().Padding(1, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	legendBoxStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// modeTabs renders the comparison selector with the current mode highlighted.
func modeTabs(current fish.Mode, width int) string {
	var rendered []string
	for _, m := range fish.Modes {
		if m == current {
			rendered = append(rendered, activeTabStyle.Render(m.Title()))
		} else {
			rendered = append(rendered, tabStyle.Render(m.Title()))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// legendView renders one colored swatch per legend entry.
func legendView(entries []layers.LegendEntry) string {
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render("Legend"))
	for _, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color.Hex())).Render("●")
		rows = append(rows, swatch+" "+e.Label)
	}
	return legendBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
