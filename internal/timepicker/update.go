package timepicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/timefield/internal/clock"
)

// Update handles messages and returns the next picker state.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m = m.reconcile()
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateExpanded {
			return m.updateExpanded(msg)
		}
		if key.Matches(msg, m.keys.Toggle) {
			m.state = stateExpanded
		}
	case tea.MouseMsg:
		if m.summaryClicked(msg) {
			m.state = m.state.toggle()
		}
	}
	return m, nil
}

// summaryClicked reports a left click on the summary, which occupies the
// first rows of the widget. Mouse coordinates are relative to the widget.
func (m Model) summaryClicked(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	return msg.Y >= 0 && msg.Y < lipgloss.Height(m.summaryView())
}

func (m Model) updateExpanded(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.step(clock.Increment)
	case key.Matches(msg, m.keys.Down):
		return m.step(clock.Decrement)
	case key.Matches(msg, m.keys.Left):
		m.column = m.column.Prev()
	case key.Matches(msg, m.keys.Right):
		m.column = m.column.Next()
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Toggle):
		m.state = stateCollapsed
	case key.Matches(msg, m.keys.Clear):
		return m.clear()
	}
	return m, nil
}

func (m Model) step(d clock.Direction) (Model, tea.Cmd) {
	next := clock.Step(m.time, m.column, d)
	m.time = next
	v := clock.Format(next)
	m.field.SetValue(v)
	m.lastWritten = v
	m.log.Debug("stepped", "column", m.column, "direction", d, "value", v)
	return m, m.changed(v)
}

// clear resets the display, writes an empty value and collapses. The empty
// value is written as is; it is never derived from the display time.
func (m Model) clear() (Model, tea.Cmd) {
	m.time = clock.Default()
	m.field.SetValue("")
	m.lastWritten = ""
	m.state = stateCollapsed
	m.log.Debug("cleared")
	return m, m.changed("")
}

// reconcile re-derives the display time when the field was changed by
// someone other than this picker. A value that already formats to the
// current display is left alone.
func (m Model) reconcile() Model {
	current := m.field.Value()
	if current == m.lastWritten {
		return m
	}
	m.lastWritten = current

	t, err := clock.Parse(current)
	if err != nil {
		m.log.Warn("external field value is malformed", "value", current, "error", err)
	}
	if clock.Format(t) == clock.Format(m.time) {
		return m
	}
	m.log.Debug("synced external change", "value", current, "time", t)
	m.time = t
	return m
}

func (m Model) changed(v string) tea.Cmd {
	msg := ChangedMsg{ID: m.id, Name: m.field.Name(), Value: v}
	return func() tea.Msg {
		return msg
	}
}
