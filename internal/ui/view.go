package ui

import (
	"strings"
)

// pickerTop is the screen row of the picker's summary line: title, blank
// line and field label come first.
const pickerTop = 3

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	switch m.State {
	case StateSubmitted, StateAborted:
		return ""
	}

	var b strings.Builder

	b.WriteString(Current.Title.Render("Choose a Time"))
	b.WriteString("\n\n")

	b.WriteString(Current.Label.Render(m.name))
	b.WriteString("\n")
	b.WriteString(m.Picker.View())
	b.WriteString("\n\n")

	keys := formKeyMap{picker: m.Picker.HelpKeys(), keys: m.Keys, expanded: m.Picker.Expanded()}
	b.WriteString(Current.Help.Render(m.Help.ShortHelpView(keys.ShortHelp())))

	return b.String()
}

func helpView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Timefield Help"))
	b.WriteString("\n\n")

	b.WriteString(Current.Help.Render(`Collapsed, the field shows the chosen time or a placeholder.
Open it to step hours, minutes and AM/PM; every step updates the value.
Confirm closes the panel, Clear removes the value.`))
	b.WriteString("\n\n")

	keys := formKeyMap{picker: m.Picker.AllKeys(), keys: m.Keys}
	b.WriteString(m.Help.FullHelpView(keys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString(Current.Help.Render("Press '?' or 'q' to close help"))
	return b.String()
}
