package timepicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/stigoleg/timefield/internal/clock"
)

const (
	iconClock     = "◷"
	chevronDown   = "▾"
	chevronUp     = "▴"
	arrowUp       = "▲"
	arrowDown     = "▼"
	truncationTip = "…"
)

// View renders the picker.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.summaryView())

	if msg := m.field.Meta().Error; msg != "" {
		b.WriteString("\n" + m.style.Error.Render(msg))
	}

	if m.state == stateExpanded {
		b.WriteString("\n" + m.panelView())
	}

	return b.String()
}

// DisplayString is the summary text: the formatted time, or the placeholder
// when the field is empty.
func (m Model) DisplayString() string {
	return clock.DisplayString(m.time, m.HasValue(), m.Placeholder())
}

func (m Model) summaryView() string {
	text := m.DisplayString()
	if m.width > 0 {
		text = ansi.Truncate(text, m.width, truncationTip)
	}

	textStyle := m.style.Value
	if !m.HasValue() {
		textStyle = m.style.Placeholder
	}

	chevron := chevronDown
	if m.state == stateExpanded {
		chevron = chevronUp
	}

	line := fmt.Sprintf("%s %s %s",
		m.style.Icon.Render(iconClock),
		textStyle.Render(text),
		m.style.Icon.Render(chevron),
	)
	return m.style.Summary.Render(line)
}

func (m Model) panelView() string {
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.columnView(clock.FieldHours, fmt.Sprintf("%02d", m.time.Hours), m.labels.Hours),
		m.style.Separator.Render(":"),
		m.columnView(clock.FieldMinutes, fmt.Sprintf("%02d", m.time.Minutes), m.labels.Minutes),
		m.columnView(clock.FieldPeriod, m.time.Period.String(), ""),
	)

	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		m.style.Primary.Render("["+m.labels.Confirm+"]"),
		m.style.Button.Render("["+m.labels.Clear+"]"),
	)

	return m.style.Panel.Render(lipgloss.JoinVertical(lipgloss.Center, columns, "", actions))
}

func (m Model) columnView(f clock.Field, value, label string) string {
	cell := m.style.Cell[f]
	if m.focused && f == m.column {
		cell = m.style.FocusedCell[f]
	}

	return m.style.Column.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.style.Arrow.Render(arrowUp),
		cell.Render(value),
		m.style.Arrow.Render(arrowDown),
		m.style.Label.Render(label),
	))
}
