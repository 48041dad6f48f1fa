// Package timepicker provides a 12-hour time selection widget for Bubble Tea
// programs. The widget is bound to a form field holding a canonical "HH:MM"
// value and edits it through an expandable hour/minute/period stepper.
package timepicker

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/stigoleg/timefield/internal/clock"
	"github.com/stigoleg/timefield/internal/form"
)

// ChangedMsg is emitted after the picker writes a new value to its field.
// Value is empty when the picker was cleared.
type ChangedMsg struct {
	ID    string
	Name  string
	Value string
}

// SyncMsg asks the picker to reconcile with its field right away. Any other
// message does the same as a side effect.
type SyncMsg struct{}

// Option configures a Model.
type Option func(*Model)

// WithPlaceholder sets the text shown while the field has no value.
func WithPlaceholder(p string) Option {
	return func(m *Model) { m.placeholder = p }
}

// WithClassName selects a style preset by name (see StyleFor).
func WithClassName(className string) Option {
	return func(m *Model) {
		m.className = className
		m.style = StyleFor(className)
	}
}

// WithStyle sets the styles directly.
func WithStyle(s Style) Option {
	return func(m *Model) { m.style = s }
}

// WithLabels sets the fixed labels.
func WithLabels(l Labels) Option {
	return func(m *Model) { m.labels = l }
}

// WithKeyMap overrides the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithLogger sets the logger; the picker logs nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithWidth truncates the summary line to w cells. Zero disables it.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// Model is the time picker component.
type Model struct {
	id          string
	field       form.Field
	placeholder string
	className   string
	width       int

	keys   KeyMap
	labels Labels
	style  Style
	log    *slog.Logger

	state   state
	time    clock.Time
	column  clock.Field
	focused bool

	// lastWritten is the field value as of the last write or reconcile by
	// this picker. A field value differing from it is an external change.
	lastWritten string
}

// New returns a collapsed, focused picker bound to field.
func New(field form.Field, opts ...Option) Model {
	m := Model{
		id:      uuid.NewString(),
		field:   field,
		keys:    DefaultKeys(),
		labels:  EnglishLabels(),
		style:   DefaultStyle(),
		log:     slog.New(slog.DiscardHandler),
		focused: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.log = m.log.With("component", "timepicker", "picker_id", m.id, "field", field.Name())

	m.lastWritten = field.Value()
	t, err := clock.Parse(m.lastWritten)
	if err != nil {
		m.log.Warn("initial field value is malformed", "value", m.lastWritten, "error", err)
	}
	m.time = t
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ID returns the unique id of this picker instance.
func (m Model) ID() string { return m.id }

// Name returns the bound field name.
func (m Model) Name() string { return m.field.Name() }

// Value returns the bound field's current canonical value.
func (m Model) Value() string { return m.field.Value() }

// HasValue reports whether the bound field holds a value.
func (m Model) HasValue() bool { return m.field.Value() != "" }

// Time returns the display time.
func (m Model) Time() clock.Time { return m.time }

// Column returns the column that up/down keys step.
func (m Model) Column() clock.Field { return m.column }

// Expanded reports whether the stepper panel is open.
func (m Model) Expanded() bool { return m.state == stateExpanded }

// ClassName returns the configured class name.
func (m Model) ClassName() string { return m.className }

// Placeholder returns the text shown while no value is set.
func (m Model) Placeholder() string {
	if m.placeholder != "" {
		return m.placeholder
	}
	return m.labels.Placeholder
}

// Focused reports whether the picker receives key presses.
func (m Model) Focused() bool { return m.focused }

// Focus lets the picker receive key presses.
func (m *Model) Focus() { m.focused = true }

// Blur stops the picker from receiving key presses and collapses it.
func (m *Model) Blur() {
	m.focused = false
	m.state = stateCollapsed
}

// HelpKeys returns the bindings relevant to the current state.
func (m Model) HelpKeys() help.KeyMap {
	return m.keys.ForState(m.state)
}

// AllKeys returns every binding of the picker, for full help screens.
func (m Model) AllKeys() help.KeyMap {
	return allKeyMap(m.keys)
}
