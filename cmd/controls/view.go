package controls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
	faint      = lipgloss.NewStyle().Faint(true)
)

// View renders the form with a short hint line.
func View(m *Model) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, titleStyle.Render("Filters"))
	if m == nil || m.form == nil {
		fmt.Fprintln(b, faint.Render("(initializing)"))
		return b.String()
	}
	fmt.Fprintln(b, m.form.View())
	fmt.Fprintln(b, faint.Render("space toggles, enter applies, esc cancels"))
	return b.String()
}
