package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/oops"

	"github.com/stigoleg/timefield/internal/ui"
)

// FormatError renders err for the terminal. Errors carrying a hint (such as
// the accepted time formats) get a box with the hint below the headline.
func FormatError(err error) string {
	msg := err.Error()

	oopsErr, ok := oops.AsOops(err)
	if !ok || oopsErr.Hint() == "" {
		return ui.Current.Error.Render(msg)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF4040")).
		Render(msg)

	details := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#999999")).
		Render(oopsErr.Hint())

	return ui.Current.ErrorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
}
