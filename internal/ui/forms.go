package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/logging/events"
	"github.com/atomicstack/ze/internal/ui/state"
)

const (
	namePlaceholder = "Enter session name (optional)"
	nameCharLimit   = 64
)

// NameForm is the prompt shown in name-input mode.
type NameForm struct {
	input textinput.Model
	title string
	help  string
}

func newNameForm(initial string, firstSession bool, mode cursor.Mode) *NameForm {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = nameCharLimit
	ti.Cursor.SetMode(mode)
	ti.SetValue(initial)
	ti.CursorEnd()
	title := "Create New Session"
	if firstSession {
		title = "Create Your First Session"
	}
	return &NameForm{
		input: ti,
		title: title,
		help:  "Press Enter to continue • Esc to cancel",
	}
}

func (f *NameForm) Value() string { return f.input.Value() }
func (f *NameForm) Title() string { return f.title }
func (f *NameForm) Help() string  { return f.help }

// InputView renders the caret followed by the placeholder while the value
// is empty.
func (f *NameForm) InputView() string {
	view := f.input.View()
	if f.input.Value() != "" {
		return view
	}
	return view + renderStyled(styles.Placeholder, namePlaceholder)
}

func (f *NameForm) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f *NameForm) SetCursorMode(mode cursor.Mode) {
	f.input.Cursor.SetMode(mode)
}

// UpdateCursor forwards non-key messages such as blink ticks.
func (f *NameForm) UpdateCursor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// Update applies a key press to the text input and reports whether the
// value changed.
func (f *NameForm) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd, f.input.Value() != before
}

func (m *Model) openNameForm() tea.Cmd {
	snap := m.machine.Snapshot()
	m.nameForm = newNameForm(snap.Form.SessionName, !snap.HasSessions, m.cursorMode)
	return m.nameForm.Focus()
}

// syncNameForm opens or discards the name prompt after a mode change.
func (m *Model) syncNameForm(before state.Mode) tea.Cmd {
	switch {
	case m.machine.Mode == state.ModeNameInput && before != state.ModeNameInput:
		return m.openNameForm()
	case m.machine.Mode != state.ModeNameInput:
		m.nameForm = nil
	}
	return nil
}

func (m *Model) handleNameForm(msg tea.KeyMsg) tea.Cmd {
	if m.nameForm == nil {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		events.Session.CancelNew(events.SessionReasonEscape)
		return m.apply(state.Escape{})
	case key.Matches(msg, m.keys.Select):
		value := strings.TrimSpace(m.nameForm.Value())
		events.Session.SubmitNew(value)
		return m.apply(state.SubmitName{Text: value})
	}
	cmd, changed := m.nameForm.Update(msg)
	if changed {
		if applied := m.apply(state.EditName{Text: m.nameForm.Value()}); applied != nil {
			return tea.Batch(cmd, applied)
		}
	}
	return cmd
}

func (m *Model) viewNameForm() []string {
	lines := []string{"Session name:", ""}
	prompt := "› "
	if styles.Prompt != nil {
		prompt = styles.Prompt.Render(prompt)
	}
	return append(lines, prompt+m.nameForm.InputView())
}
