package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/timefield/internal/clock"
	"github.com/stigoleg/timefield/internal/timepicker"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and then every message produced by the returned command,
// like the Bubble Tea runtime would. tea.Quit is not followed.
func send(m Model, msgs ...tea.Msg) (Model, bool) {
	quit := false
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = Update(msg, m)
		for cmd != nil {
			out := cmd()
			if _, ok := out.(tea.QuitMsg); ok {
				quit = true
				break
			}
			m, cmd = Update(out, m)
		}
	}
	return m, quit
}

func newModel(value string) Model {
	return InitialModel(Options{Name: "start", Value: value})
}

func TestInitialModel(t *testing.T) {
	m := newModel("13:05")
	if m.State != StateEditing {
		t.Error("expected initial state to be StateEditing")
	}
	if m.ShowHelp {
		t.Error("expected help to be hidden")
	}
	if m.Picker.Name() != "start" {
		t.Errorf("expected picker bound to start, got %q", m.Picker.Name())
	}
	if got := m.Picker.Time(); got != (clock.Time{Hours: 1, Minutes: 5, Period: clock.PM}) {
		t.Errorf("unexpected picker time %v", got)
	}
	if m.Init() != nil {
		t.Error("expected no initial command")
	}
}

func TestFormView(t *testing.T) {
	m := newModel("")
	view := ansi.Strip(View(m))

	for _, want := range []string{"Choose a Time", "start", "Choose a time", "submit", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m = InitialModel(Options{Name: "start", Locale: "ar"})
	if !strings.Contains(ansi.Strip(View(m)), "اختر الوقت") {
		t.Error("expected Arabic placeholder")
	}
}

func TestSubmit(t *testing.T) {
	m := newModel("")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	m, quit := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.True(t, quit)
	assert.Equal(t, StateSubmitted, m.State)
	value, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, "01:00", value)
	assert.Empty(t, View(m))
}

func TestSubmitEmptyValue(t *testing.T) {
	m := newModel("")
	m, quit := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.True(t, quit)
	value, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestSubmitRequired(t *testing.T) {
	m := InitialModel(Options{Name: "start", Required: true})

	m, quit := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, quit)
	assert.Equal(t, StateEditing, m.State)
	assert.Contains(t, ansi.Strip(View(m)), errRequired)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyDown})
	assert.NotContains(t, ansi.Strip(View(m)), errRequired)

	m, quit = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, quit)
	value, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, "11:00", value)
}

func TestResetResyncsPicker(t *testing.T) {
	m := newModel("08:15")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "10:15", m.Form.Value("start"))

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "08:15", m.Form.Value("start"))
	assert.Equal(t, clock.Time{Hours: 8, Minutes: 15, Period: clock.AM}, m.Picker.Time())
}

func TestSetNow(t *testing.T) {
	m := newModel("")
	m.Now = func() time.Time { return time.Date(2024, 1, 1, 15, 42, 10, 0, time.Local) }

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, "15:42", m.Form.Value("start"))
	assert.Equal(t, clock.Time{Hours: 3, Minutes: 42, Period: clock.PM}, m.Picker.Time())
	assert.Contains(t, ansi.Strip(View(m)), "03:42 PM")
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.Msg
		wantQuit  bool
		wantState State
	}{
		{
			name:      "q while collapsed aborts",
			keys:      []tea.Msg{runes("q")},
			wantQuit:  true,
			wantState: StateAborted,
		},
		{
			name:      "esc while expanded collapses the picker",
			keys:      []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc}},
			wantQuit:  false,
			wantState: StateEditing,
		},
		{
			name:      "q while expanded is ignored",
			keys:      []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, runes("q")},
			wantQuit:  false,
			wantState: StateEditing,
		},
		{
			name:      "ctrl+c always aborts",
			keys:      []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlC}},
			wantQuit:  true,
			wantState: StateAborted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, quit := send(newModel("09:00"), tt.keys...)
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
			if m.State != tt.wantState {
				t.Errorf("state = %v, want %v", m.State, tt.wantState)
			}
			if _, ok := m.Result(); ok {
				t.Error("expected no submitted result")
			}
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := newModel("")
	m, _ = send(m, runes("?"))
	require.True(t, m.ShowHelp)

	view := ansi.Strip(View(m))
	for _, want := range []string{"Timefield Help", "increase", "clear", "reset", "now"} {
		assert.Contains(t, view, want)
	}

	// keys other than close are swallowed while help is open
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Picker.Expanded())

	m, _ = send(m, runes("q"))
	assert.False(t, m.ShowHelp)
	assert.Equal(t, StateEditing, m.State)
}

func TestChangedMsgIsConsumed(t *testing.T) {
	m := newModel("")
	m, cmd := Update(timepicker.ChangedMsg{Name: "start", Value: "10:00"}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, StateEditing, m.State)
}

func TestMouseClickOnSummary(t *testing.T) {
	m := newModel("")
	lines := strings.Split(ansi.Strip(View(m)), "\n")
	require.Greater(t, len(lines), pickerTop)
	assert.Contains(t, lines[pickerTop], "Choose a time")

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	title := click
	m, _ = send(m, title)
	assert.False(t, m.Picker.Expanded(), "clicking the title does nothing")

	summary := click
	summary.Y = pickerTop
	m, _ = send(m, summary)
	assert.True(t, m.Picker.Expanded())

	m, _ = send(m, summary)
	assert.False(t, m.Picker.Expanded())
}

func TestWindowSize(t *testing.T) {
	m := newModel("")
	m, _ = Update(tea.WindowSizeMsg{Width: 42, Height: 10}, m)
	assert.Equal(t, 42, m.Help.Width)
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateEditing:   "Editing",
		StateSubmitted: "Submitted",
		StateAborted:   "Aborted",
		State(99):      "Unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
