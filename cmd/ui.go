package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prowe/fishtrack/cmd/animate"
	"github.com/prowe/fishtrack/cmd/controls"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/mapview"
	"github.com/prowe/fishtrack/cmd/stats"
)

type pane int

const (
	paneMap pane = iota
	paneFilter
	paneStats
)

type model struct {
	sel        fish.Selection
	compositor *layers.Compositor
	mounter    *layers.Mounter
	director   *animate.Director
	canvas     *mapview.Canvas
	layers     []layers.Layer
	legend     []layers.LegendEntry
	controls   *controls.Model
	stats      *stats.Pane
	view       pane
	logger     *slog.Logger
	width      int
	height     int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func newModel(ds fish.Dataset, cfg Config, logger *slog.Logger) model {
	if logger == nil {
		logger = slog.Default()
	}
	canvas := mapview.NewCanvas(cfg.Map.LayerOpacity, cfg.Center())
	canvas.Fit(allPoints(ds), cfg.Center())

	m := model{
		sel:        fish.DefaultSelection(),
		compositor: layers.NewCompositor(ds.Tables),
		mounter:    layers.NewMounter(canvas, logger),
		director:   animate.NewDirector(canvas, cfg.Settings(), logger),
		canvas:     canvas,
		stats:      stats.NewPane(ds.Summary),
		logger:     logger,
		keys:       keys,
		help:       bhelp.New(),
	}
	m.sel.Mode = cfg.Mode()
	m.apply()
	return m
}

func allPoints(ds fish.Dataset) []fish.Point {
	var pts []fish.Point
	for _, g := range fish.AllGroups {
		for _, o := range ds.Tables[g] {
			if o.Point.Valid() {
				pts = append(pts, o.Point)
			}
		}
	}
	return pts
}

func (m model) Init() tea.Cmd {
	return nil
}

// apply recomputes everything derived from the selection and returns the
// commands of any animation loops it started.
func (m *model) apply() tea.Cmd {
	m.layers = m.compositor.Build(m.sel)
	if m.sel.ShowPoints {
		m.mounter.Sync(m.layers)
	} else {
		m.mounter.UnmountAll()
	}
	m.legend = layers.BuildLegend(m.sel)
	m.stats.SetTracks(m.layers)
	m.logger.Debug("selection applied",
		"mode", m.sel.Mode, "groups", len(m.sel.Groups), "species", len(m.sel.Species),
		"layers", len(m.layers), "animate", m.sel.Animate, "clear", m.sel.Clear)
	return m.director.Reconcile(m.layers, m.sel)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.stats.SetSize(msg.Width, msg.Height)
		return m, nil
	case animate.TickMsg:
		return m, m.director.Update(msg)
	}

	if m.view == paneFilter {
		return m.updateFilter(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		m.director.TeardownAll()
		m.mounter.UnmountAll()
		return m, tea.Quit
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(km, m.keys.Statistics):
		if m.view == paneStats {
			m.view = paneMap
		} else {
			m.view = paneStats
		}
		return m, nil
	case key.Matches(km, m.keys.Filter):
		m.controls = controls.NewModel(m.sel)
		m.view = paneFilter
		return m, m.controls.Init()
	case key.Matches(km, m.keys.Mode):
		m.sel.Mode = m.sel.Mode.Next()
	case key.Matches(km, m.keys.PickMode):
		m.sel.Mode = fish.Modes[int(km.String()[0]-'1')]
	case key.Matches(km, m.keys.Points):
		m.sel.ShowPoints = !m.sel.ShowPoints
	case key.Matches(km, m.keys.Start):
		m.sel.Animate, m.sel.Clear = true, false
	case key.Matches(km, m.keys.Stop):
		m.sel.Animate, m.sel.Clear = false, false
	case key.Matches(km, m.keys.Clear):
		m.sel.Animate, m.sel.Clear = false, true
	default:
		if m.view == paneStats {
			return m, m.stats.Update(msg)
		}
		return m, nil
	}
	return m, m.apply()
}

func (m model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		m.view, m.controls = paneMap, nil
		return m, nil
	}
	cmd := m.controls.Update(msg)
	switch {
	case m.controls.Done():
		m.sel = m.controls.Apply(m.sel)
		m.view, m.controls = paneMap, nil
		return m, tea.Batch(cmd, m.apply())
	case m.controls.Aborted():
		m.view, m.controls = paneMap, nil
		return m, nil
	}
	return m, cmd
}

func (m model) View() string {
	mapW := max(20, m.width-32)
	mapH := max(5, m.height-8)

	var left string
	switch m.view {
	case paneStats:
		left = stats.View(m.stats)
	default:
		left = m.canvas.Render(mapW, mapH)
	}

	var right string
	if m.view == paneFilter {
		right = controls.View(m.controls)
	} else {
		right = lipgloss.JoinVertical(lipgloss.Left, legendView(m.legend), "", m.status())
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(left), dividerStyle.Render("│"), contentStyle.Render(right))

	header := headerStyle.Render(appTitle) + " " + modeTabs(m.sel.Mode, max(0, m.width-12))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	foot := footerStyle.Render(m.help.View(m.keys))
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

func (m model) status() string {
	if len(m.layers) == 0 {
		return errorStyle.Render("no fish match the filters")
	}
	points := "shown"
	if !m.sel.ShowPoints {
		points = "hidden"
	}
	anim := "stopped"
	switch {
	case m.sel.Clear:
		anim = "cleared"
	case m.sel.Animate:
		anim = "running"
	}
	return footerStyle.Render(fmt.Sprintf("%d layers\npoints %s\nanimation %s", len(m.layers), points, anim))
}
