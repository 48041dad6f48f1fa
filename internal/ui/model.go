package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/timefield/internal/form"
	"github.com/stigoleg/timefield/internal/timepicker"
)

// Options configures the initial model.
type Options struct {
	Name        string
	Value       string
	Placeholder string
	ClassName   string
	Locale      string
	Required    bool
	Width       int
	Logger      *slog.Logger
}

// Model holds the form, the picker bound to it and the session state.
type Model struct {
	State        State
	Form         *form.Form
	Picker       timepicker.Model
	Keys         KeyMap
	Help         help.Model
	ShowHelp     bool
	Required     bool

	// Now returns the wall clock time; replaced in tests.
	Now func() time.Time

	name string
	log  *slog.Logger
}

// InitialModel returns the initial model for the TUI.
func InitialModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	f := form.New(map[string]string{opts.Name: opts.Value})
	picker := timepicker.New(f.Field(opts.Name),
		timepicker.WithLabels(timepicker.LabelsFor(opts.Locale)),
		timepicker.WithPlaceholder(opts.Placeholder),
		timepicker.WithClassName(opts.ClassName),
		timepicker.WithWidth(opts.Width),
		timepicker.WithLogger(logger),
	)

	return Model{
		State:    StateEditing,
		Form:     f,
		Picker:   picker,
		Keys:     DefaultKeys(),
		Help:     NewHelpModel(),
		Required: opts.Required,
		Now:      time.Now,
		name:     opts.Name,
		log:      logger.With("component", "ui"),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.Picker.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Result returns the field value and whether the user submitted it.
func (m Model) Result() (string, bool) {
	return m.Form.Value(m.name), m.State == StateSubmitted
}
