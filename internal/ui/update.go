package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/timefield/internal/clock"
	"github.com/stigoleg/timefield/internal/timepicker"
)

const errRequired = "Please choose a time"

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Help.Width = msg.Width
		return m, nil

	case timepicker.ChangedMsg:
		m.log.Debug("field changed", "field", msg.Name, "value", msg.Value)
		if msg.Value != "" {
			m.Form.SetError(msg.Name, "")
		}
		return m, nil

	case tea.MouseMsg:
		if m.ShowHelp {
			return m, nil
		}
		msg.Y -= pickerTop
		return forward(msg, m)

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Abort) {
			m.State = StateAborted
			return m, tea.Quit
		}

		if m.ShowHelp {
			if key.Matches(msg, m.Keys.ToggleHelp, m.Keys.Quit) {
				m.ShowHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.ShowHelp = true
			return m, nil
		case key.Matches(msg, m.Keys.Submit):
			return submit(m)
		case key.Matches(msg, m.Keys.Reset):
			m.Form.Reset()
			m.log.Debug("form reset")
			return forward(timepicker.SyncMsg{}, m)
		case key.Matches(msg, m.Keys.Now):
			now := m.Now()
			m.Form.Set(m.name, clock.Format(clock.FromClock(now.Hour(), now.Minute())))
			return forward(timepicker.SyncMsg{}, m)
		case key.Matches(msg, m.Keys.Quit) && !m.Picker.Expanded():
			m.State = StateAborted
			return m, tea.Quit
		}
	}

	return forward(msg, m)
}

func forward(msg tea.Msg, m Model) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)
	return m, cmd
}

func submit(m Model) (Model, tea.Cmd) {
	if m.Required && m.Form.Value(m.name) == "" {
		m.Form.SetError(m.name, errRequired)
		return m, nil
	}
	m.State = StateSubmitted
	m.log.Info("submitted", "field", m.name, "value", m.Form.Value(m.name))
	return m, tea.Quit
}
