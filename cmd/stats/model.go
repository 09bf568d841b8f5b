package stats

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterstace/simplefeatures/geom"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/mapview"
)

// Track summarizes one layer as a path through its points in playback order.
type Track struct {
	Label  string
	Points int
	Length float64 // metres along the projected path
}

// Tracks measures every layer. Lengths are planar distances in Web Mercator
// and overstate ground distance by 1/cos(lat).
func Tracks(ls []layers.Layer) []Track {
	out := make([]Track, 0, len(ls))
	for _, l := range ls {
		out = append(out, Track{Label: l.ID, Points: len(l.Points), Length: trackLength(l.Points)})
	}
	return out
}

func trackLength(points []fish.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		xy := mapview.ToMercator(p)
		flat = append(flat, xy.X, xy.Y)
	}
	ls, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
	if err != nil {
		return 0
	}
	return ls.Length()
}

// Pane shows the summary statistics table and the per-layer track table.
type Pane struct {
	summary *fish.Summary
	table   table.Model
	tracks  []Track
	lengths map[string]measured
	width   int
	height  int
}

// measured remembers a track length together with the point slice it was
// measured on; memoized layers keep handing back the same slice.
type measured struct {
	first  *fish.Point
	n      int
	length float64
}

// NewPane creates the pane for sum, which may be nil.
func NewPane(sum *fish.Summary) *Pane {
	p := &Pane{summary: sum, lengths: make(map[string]measured)}
	p.table = table.New(
		table.WithColumns(summaryColumns(sum)),
		table.WithRows(summaryRows(sum)),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	p.table.SetStyles(s)
	return p
}

// SetTracks replaces the per-layer figures. Lengths are only recomputed for
// layers whose points changed.
func (p *Pane) SetTracks(ls []layers.Layer) {
	p.tracks = make([]Track, 0, len(ls))
	for _, l := range ls {
		p.tracks = append(p.tracks, Track{Label: l.ID, Points: len(l.Points), Length: p.length(l)})
	}
}

func (p *Pane) length(l layers.Layer) float64 {
	var first *fish.Point
	if len(l.Points) > 0 {
		first = &l.Points[0]
	}
	if m, ok := p.lengths[l.ID]; ok && m.first == first && m.n == len(l.Points) {
		return m.length
	}
	m := measured{first: first, n: len(l.Points), length: trackLength(l.Points)}
	p.lengths[l.ID] = m
	return m.length
}

// SetSize fits the table into the pane.
func (p *Pane) SetSize(width, height int) {
	p.width, p.height = width, height
	p.table.SetWidth(max(20, width-4))
	p.table.SetHeight(max(3, min(len(p.table.Rows())+1, height/2)))
}

// Update forwards navigation keys to the table.
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func summaryColumns(sum *fish.Summary) []table.Column {
	if sum == nil {
		return []table.Column{{Title: "Summary", Width: 30}}
	}
	cols := make([]table.Column, len(sum.Columns))
	for i, c := range sum.Columns {
		cols[i] = table.Column{Title: c, Width: max(12, len(c)+2)}
	}
	return cols
}

func summaryRows(sum *fish.Summary) []table.Row {
	if sum == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(sum.Rows))
	for _, r := range sum.Rows {
		row := make(table.Row, len(sum.Columns))
		for i := range row {
			if i < len(r) {
				row[i] = FormatCell(i, r[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatCell renders one summary value. Columns 3 and 4 are coordinates
// shown with five decimals and column 5 a distance with one.
func FormatCell(col int, v any) string {
	f, isFloat := v.(float64)
	switch {
	case v == nil:
		return ""
	case isFloat && (col == 3 || col == 4):
		return fmt.Sprintf("%.5f", f)
	case isFloat && col == 5:
		return fmt.Sprintf("%.1f", f)
	case isFloat:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
