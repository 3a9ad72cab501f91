package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/logging/events"
	"github.com/atomicstack/ze/internal/menu"
	"github.com/atomicstack/ze/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.machine.Mode == state.ModeNameInput {
		return m.handleNameForm(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveCursor(state.MoveUp{})
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveCursor(state.MoveDown{})
	case key.Matches(keyMsg, m.keys.Select):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Delete):
		return m.handleDeleteKey()
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	}
	if m.machine.Mode == state.ModeList {
		return m.handleTextInput(keyMsg)
	}
	return nil
}

func (m *Model) moveCursor(ev state.Event) tea.Cmd {
	before := m.machine.Cursor.Index
	cmd := m.apply(ev)
	if m.machine.Cursor.Index != before {
		events.UI.Cursor(m.machine.Mode.String(), m.machine.Cursor.Index)
	}
	return cmd
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.machine.Busy {
		return nil
	}
	item, ok := m.machine.Current()
	if !ok {
		return nil
	}
	events.UI.Enter(m.machine.Mode.String(), item.Kind.String(), item.Label(), m.machine.Search.Query)
	switch item.Intent() {
	case menu.IntentBeginName:
		events.Session.NewPrompt(len(m.machine.Sessions))
	case menu.IntentBeginLayout:
		events.Session.FromQuery(item.Name)
	case menu.IntentCreate:
		events.Layout.Select(m.machine.Form.SessionName, item.Name)
	}
	return m.apply(state.Select{})
}

func (m *Model) handleDeleteKey() tea.Cmd {
	return m.apply(state.Delete{})
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.machine.Mode == state.ModeLayoutSelect && !m.machine.Busy {
		events.Layout.Cancel(m.machine.Form.SessionName)
	}
	return m.apply(state.Escape{})
}
