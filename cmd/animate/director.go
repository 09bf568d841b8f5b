package animate

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/mapview"
)

// Director owns one Animator per animated category and keeps them in step
// with the current layers and selection.
type Director struct {
	surface   mapview.Surface
	settings  Settings
	logger    *slog.Logger
	animators map[fish.CategoryKey]*Animator
	animating bool
}

// NewDirector creates a director drawing particles onto surface.
func NewDirector(surface mapview.Surface, settings Settings, logger *slog.Logger) *Director {
	if logger == nil {
		logger = slog.Default()
	}
	return &Director{
		surface:   surface,
		settings:  settings,
		logger:    logger,
		animators: make(map[fish.CategoryKey]*Animator),
	}
}

// Animator returns the animator of key, if one exists.
func (d *Director) Animator(key fish.CategoryKey) (*Animator, bool) {
	a, ok := d.animators[key]
	return a, ok
}

// Len is the number of live animators.
func (d *Director) Len() int { return len(d.animators) }

// Reconcile applies a selection change. Animators of categories no longer
// shown are torn down; animators are created the first time their category
// is shown with Animate set. Start and Stop act on the edges of
// sel.Animate; sel.Clear resets every animator and wins over Animate.
func (d *Director) Reconcile(ls []layers.Layer, sel fish.Selection) tea.Cmd {
	present := make(map[fish.CategoryKey]layers.Layer, len(ls))
	for _, l := range ls {
		present[l.Key] = l
	}
	for key, a := range d.animators {
		l, ok := present[key]
		if !ok || !sameSource(a.source, l.Points) {
			a.Teardown()
			delete(d.animators, key)
			continue
		}
		a.SetColor(l.Color)
	}

	var cmds []tea.Cmd
	for _, l := range ls {
		if _, ok := d.animators[l.Key]; ok || !sel.Animate || sel.Clear {
			continue
		}
		a := New(l.Key, l.Points, l.Color, d.surface, d.settings, d.logger)
		d.animators[l.Key] = a
		cmds = append(cmds, a.Start())
	}

	switch {
	case sel.Clear:
		for _, a := range d.animators {
			a.Clear()
		}
	case sel.Animate && !d.animating:
		for _, a := range d.animators {
			cmds = append(cmds, a.Start())
		}
	case !sel.Animate && d.animating:
		for _, a := range d.animators {
			a.Stop()
		}
	}
	d.animating = sel.Animate && !sel.Clear
	return tea.Batch(cmds...)
}

// Update routes tick messages to their animator.
func (d *Director) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok {
		return nil
	}
	a, ok := d.animators[tick.Key]
	if !ok {
		return nil
	}
	return a.Update(tick)
}

// TeardownAll releases every animator.
func (d *Director) TeardownAll() {
	for key, a := range d.animators {
		a.Teardown()
		delete(d.animators, key)
	}
	d.animating = false
}

func sameSource(a, b []fish.Point) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
