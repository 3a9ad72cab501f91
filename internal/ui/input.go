package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/logging/events"
	"github.com/atomicstack/ze/internal/ui/state"
)

// handleTextInput turns printable keys into search edits.
func (m *Model) handleTextInput(msg tea.KeyMsg) tea.Cmd {
	if m.machine.Busy {
		return nil
	}
	if key.Matches(msg, m.keys.Backspace) {
		return m.removeFilterRune()
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	}
	return nil
}

func (m *Model) appendToFilter(text string) tea.Cmd {
	before := m.machine.Search.Query
	cmd := m.apply(state.TypeText{Text: text})
	if m.machine.Search.Query != before {
		m.filterCursorDirty = true
		events.Filter.Append(m.machine.Search.Query)
	}
	return cmd
}

func (m *Model) removeFilterRune() tea.Cmd {
	before := m.machine.Search.Query
	cmd := m.apply(state.Backspace{})
	if m.machine.Search.Query != before {
		m.filterCursorDirty = true
		if m.machine.Search.Query == "" {
			events.Filter.Cleared()
		} else {
			events.Filter.Backspace(m.machine.Search.Query)
		}
	}
	return cmd
}

// filterLine renders the search query with a trailing caret, or nothing
// when no query is active.
func (m *Model) filterLine() string {
	query := m.machine.Search.Query
	if query == "" {
		return ""
	}
	label := "Search: "
	if styles.SearchLabel != nil {
		label = styles.SearchLabel.Render(label)
	}
	text := query
	if styles.Filter != nil {
		text = styles.Filter.Render(text)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	m.filterCursor.SetChar(" ")
	return label + text + m.filterCursor.View()
}
