package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the form-level key bindings. Picker bindings live in the
// timepicker package.
type KeyMap struct {
	// Common
	Quit       key.Binding
	Abort      key.Binding
	ToggleHelp key.Binding

	// Form
	Submit key.Binding
	Reset  key.Binding
	Now    key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Now: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "now"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	return h
}

// formKeyMap merges the picker's contextual bindings with the form bindings.
type formKeyMap struct {
	picker   help.KeyMap
	keys     KeyMap
	expanded bool
}

// ShortHelp implements help.KeyMap.
func (f formKeyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, f.picker.ShortHelp()...)
	if f.expanded {
		return append(out, f.keys.ToggleHelp)
	}
	return append(out, f.keys.Submit, f.keys.Reset, f.keys.ToggleHelp, f.keys.Quit)
}

// FullHelp implements help.KeyMap.
func (f formKeyMap) FullHelp() [][]key.Binding {
	return append(f.picker.FullHelp(),
		[]key.Binding{f.keys.Submit, f.keys.Reset, f.keys.Now},
		[]key.Binding{f.keys.ToggleHelp, f.keys.Quit, f.keys.Abort},
	)
}
