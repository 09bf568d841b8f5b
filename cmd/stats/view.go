package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	infoStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

// View renders the summary table followed by the track figures.
func View(p *Pane) string {
	b := &strings.Builder{}
	b.WriteString(titleStyle.Render("Summary Statistics"))
	b.WriteString("\n")
	if p == nil {
		b.WriteString(infoStyle.Render("(initializing)"))
		return b.String()
	}
	if p.summary == nil || len(p.summary.Rows) == 0 {
		b.WriteString(infoStyle.Render("No summary statistics loaded"))
		b.WriteString("\n")
	} else {
		b.WriteString(p.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Tracks"))
	b.WriteString("\n")
	if len(p.tracks) == 0 {
		b.WriteString(infoStyle.Render("No layers shown"))
		return b.String()
	}
	for _, t := range p.tracks {
		fmt.Fprintf(b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", t.Label)),
			infoStyle.Render(fmt.Sprintf("%5d pts  %8.2f km", t.Points, t.Length/1000)))
	}
	return b.String()
}
