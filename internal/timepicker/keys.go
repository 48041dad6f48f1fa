package timepicker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the picker.
type KeyMap struct {
	// Collapsed
	Toggle key.Binding

	// Expanded
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Clear   key.Binding
}

// DefaultKeys returns the default key bindings for the picker.
func DefaultKeys() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose time"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k", "increase"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j", "decrease"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "confirm"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "backspace", "delete"),
			key.WithHelp("x", "clear"),
		),
	}
}

type stateKeyMap struct {
	keys  KeyMap
	state state
}

// ForState returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForState(s state) help.KeyMap {
	return stateKeyMap{keys: k, state: s}
}

// ShortHelp implements help.KeyMap.
func (s stateKeyMap) ShortHelp() []key.Binding {
	if s.state == stateExpanded {
		return []key.Binding{s.keys.Up, s.keys.Down, s.keys.Left, s.keys.Right, s.keys.Confirm, s.keys.Clear}
	}
	return []key.Binding{s.keys.Toggle}
}

// FullHelp implements help.KeyMap.
func (s stateKeyMap) FullHelp() [][]key.Binding {
	if s.state == stateExpanded {
		return [][]key.Binding{{s.keys.Up, s.keys.Down}, {s.keys.Left, s.keys.Right}, {s.keys.Confirm, s.keys.Clear}}
	}
	return [][]key.Binding{{s.keys.Toggle}}
}

// allKeyMap lists every binding regardless of state.
type allKeyMap KeyMap

// ShortHelp implements help.KeyMap.
func (a allKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{a.Toggle, a.Up, a.Down, a.Confirm, a.Clear}
}

// FullHelp implements help.KeyMap.
func (a allKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{a.Toggle}, {a.Up, a.Down}, {a.Left, a.Right}, {a.Confirm, a.Clear}}
}
