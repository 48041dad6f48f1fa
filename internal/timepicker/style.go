package timepicker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors defines the palette of the picker.
type Colors struct {
	Subtle  lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Hours   lipgloss.AdaptiveColor
	Minutes lipgloss.AdaptiveColor
	Period  lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:  lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
	Text:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#E5E7EB"},
	Hours:   lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
	Minutes: lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"},
	Period:  lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#C084FC"},
	Error:   lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style is the set of lipgloss styles the picker renders with.
type Style struct {
	Summary     lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Icon        lipgloss.Style
	Panel       lipgloss.Style
	Column      lipgloss.Style
	Arrow       lipgloss.Style
	Label       lipgloss.Style
	Separator   lipgloss.Style
	Button      lipgloss.Style
	Primary     lipgloss.Style
	Error       lipgloss.Style

	// Cell styles indexed by clock.Field; the focused variant is used for
	// the column that currently receives steps.
	Cell        [3]lipgloss.Style
	FocusedCell [3]lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	base := lipgloss.NewStyle()

	cell := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return base.Bold(true).Foreground(c).Width(4).Align(lipgloss.Center)
	}
	focused := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return cell(c).Reverse(true)
	}

	return Style{
		Summary:     base.PaddingLeft(1).PaddingRight(1),
		Value:       base.Foreground(defaultColors.Text),
		Placeholder: base.Foreground(defaultColors.Subtle),
		Icon:        base.Foreground(defaultColors.Subtle),
		Panel: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Subtle).
			Padding(0, 1),
		Column:    base.Padding(0, 1),
		Arrow:     base.Foreground(defaultColors.Subtle),
		Label:     base.Foreground(defaultColors.Subtle),
		Separator: base.Bold(true).Foreground(defaultColors.Subtle).PaddingTop(1),
		Button:    base.Padding(0, 1).Foreground(defaultColors.Text),
		Primary:   base.Padding(0, 1).Bold(true).Foreground(defaultColors.Hours),
		Error:     base.PaddingLeft(1).Foreground(defaultColors.Error),
		Cell: [3]lipgloss.Style{
			cell(defaultColors.Hours),
			cell(defaultColors.Minutes),
			cell(defaultColors.Period),
		},
		FocusedCell: [3]lipgloss.Style{
			focused(defaultColors.Hours),
			focused(defaultColors.Minutes),
			focused(defaultColors.Period),
		},
	}
}

// presets maps a class name to a variation of DefaultStyle.
var presets = map[string]func(Style) Style{
	"bordered": func(s Style) Style {
		s.Summary = s.Summary.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Subtle)
		return s
	},
	"compact": func(s Style) Style {
		s.Summary = s.Summary.UnsetPadding()
		s.Panel = s.Panel.UnsetBorderStyle().UnsetPadding()
		s.Column = s.Column.UnsetPadding()
		return s
	},
	"plain": func(s Style) Style {
		s.Summary = lipgloss.NewStyle()
		s.Panel = lipgloss.NewStyle()
		return s
	},
}

// StyleFor returns the style preset named by className. Several space
// separated class names are applied in order; unknown names are ignored.
func StyleFor(className string) Style {
	s := DefaultStyle()
	for _, name := range strings.Fields(className) {
		if apply, ok := presets[name]; ok {
			s = apply(s)
		}
	}
	return s
}
