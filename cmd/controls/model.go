package controls

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/prowe/fishtrack/cmd/fish"
)

// Model is the filter form: which groups and species are shown and how they
// are colored. It edits a copy of the selection and hands it back through
// Apply once the form completes.
type Model struct {
	form      *huh.Form
	groups    []string
	species   []string
	mode      string
	completed bool
}

// NewModel builds a form pre-filled from sel.
func NewModel(sel fish.Selection) *Model {
	m := &Model{mode: string(sel.Mode)}
	for _, g := range sel.Groups {
		m.groups = append(m.groups, string(g))
	}
	for _, s := range sel.Species {
		m.species = append(m.species, string(s))
	}
	m.buildForm()
	return m
}

func (m *Model) buildForm() {
	groupOpts := make([]huh.Option[string], 0, len(fish.AllGroups))
	for _, g := range fish.AllGroups {
		groupOpts = append(groupOpts, huh.NewOption(string(g), string(g)).Selected(slices.Contains(m.groups, string(g))))
	}
	speciesOpts := make([]huh.Option[string], 0, len(fish.AllSpecies))
	for _, s := range fish.AllSpecies {
		speciesOpts = append(speciesOpts, huh.NewOption(string(s), string(s)).Selected(slices.Contains(m.species, string(s))))
	}
	modeOpts := make([]huh.Option[string], 0, len(fish.Modes))
	for _, md := range fish.Modes {
		modeOpts = append(modeOpts, huh.NewOption(md.Title(), string(md)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Groups").Options(groupOpts...).Value(&m.groups),
			huh.NewMultiSelect[string]().Title("Species").Options(speciesOpts...).Value(&m.species),
			huh.NewSelect[string]().Title("Comparison").Options(modeOpts...).Value(&m.mode),
		),
	).WithShowHelp(false)
}

// Init starts the form's cursor.
func (m *Model) Init() tea.Cmd {
	if m == nil || m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update forwards msg to the form.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.completed = true
	}
	return cmd
}

// Done reports whether the form was submitted.
func (m *Model) Done() bool { return m != nil && m.completed }

// Aborted reports whether the form was cancelled.
func (m *Model) Aborted() bool {
	return m != nil && m.form != nil && m.form.State == huh.StateAborted
}

// Apply returns base with the form's groups, species and mode.
func (m *Model) Apply(base fish.Selection) fish.Selection {
	return Merge(base, m.groups, m.species, m.mode)
}

// Merge replaces the filter fields of base. Values are kept in canonical
// category order regardless of the order they were picked in; unknown
// values are dropped and an unknown mode leaves base.Mode untouched.
func Merge(base fish.Selection, groups, species []string, mode string) fish.Selection {
	out := base
	out.Groups = nil
	for _, g := range fish.AllGroups {
		if slices.Contains(groups, string(g)) {
			out.Groups = append(out.Groups, g)
		}
	}
	out.Species = nil
	for _, s := range fish.AllSpecies {
		if slices.Contains(species, string(s)) {
			out.Species = append(out.Species, s)
		}
	}
	if md, ok := fish.ParseMode(mode); ok {
		out.Mode = md
	}
	return out
}
