package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/logging"
	"github.com/atomicstack/ze/internal/logging/events"
	"github.com/atomicstack/ze/internal/ui/state"
)

// handleResultMsg feeds adapter results produced by the command bus back
// into the state machine.
func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(state.Event)
	if !ok {
		return nil
	}
	switch res := ev.(type) {
	case state.LayoutsLoaded:
		events.Layout.Loaded(m.machine.Form.SessionName, res.Layouts)
	case state.DeleteFinished:
		if res.Err != nil && !res.Fatal {
			logging.Error(res.Err)
		}
	}
	return m.apply(ev)
}
