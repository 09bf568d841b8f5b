package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Mode       key.Binding
	PickMode   key.Binding
	Points     key.Binding
	Start      key.Binding
	Stop       key.Binding
	Clear      key.Binding
	Filter     key.Binding
	Statistics key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Start, k.Stop, k.Clear, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.PickMode, k.Points, k.Filter}, // display
		{k.Start, k.Stop, k.Clear},               // animation
		{k.Statistics, k.Help, k.Quit},           // app
	}
}

var keys = keyMap{
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "next comparison"),
	),
	PickMode: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "pick comparison"),
	),
	Points: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle points"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filters"),
	),
	Statistics: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "statistics"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
