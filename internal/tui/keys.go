package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings of the drawing screen.
type keyMap struct {
	Save    key.Binding
	Cursors key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func newKeyMap(animated bool) keyMap {
	km := keyMap{
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save snapshot"),
		),
		Cursors: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle cursors"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	// A single deterministic curve has nothing to restart into.
	km.Restart.SetEnabled(animated)
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cursors, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
