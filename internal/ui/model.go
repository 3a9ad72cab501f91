package ui

import (
	"context"
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/logging/events"
	"github.com/atomicstack/ze/internal/menu"
	"github.com/atomicstack/ze/internal/theme"
	"github.com/atomicstack/ze/internal/ui/command"
	"github.com/atomicstack/ze/internal/ui/state"
	"github.com/atomicstack/ze/internal/zellij"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Context    context.Context
	Adapter    menu.Adapter
	Sessions   []zellij.Session
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the session picker.
type Model struct {
	ctx     context.Context
	machine state.Machine
	bus     *command.Bus
	keys    keyMap

	nameForm   *NameForm
	cursorMode cursor.Mode

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handoff state.Effect

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker from the sessions listed at startup.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:        ctx,
		machine:    state.New(menu.SessionItemsFromZellij(opts.Sessions)),
		bus:        command.New(opts.Adapter),
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
		cursorMode: cursor.CursorBlink,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	if m.machine.Mode == state.ModeNameInput {
		m.openNameForm()
		events.Session.NewPrompt(0)
	}
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.nameForm != nil {
		if cmd := m.nameForm.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateCursors(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(state.SessionsLoaded{}): m.handleResultMsg,
		reflect.TypeOf(state.LayoutsLoaded{}):  m.handleResultMsg,
		reflect.TypeOf(state.DeleteFinished{}): m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncViewport()
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// apply feeds one event through the state machine and turns the resulting
// effect into a command.
func (m *Model) apply(ev state.Event) tea.Cmd {
	before := m.machine.Mode
	next, eff := state.Reduce(m.machine, ev)
	m.machine = next
	var cmds []tea.Cmd
	if next.Mode != before {
		events.UI.Mode(before.String(), next.Mode.String())
		if cmd := m.syncNameForm(before); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.dispatch(eff); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) dispatch(eff state.Effect) tea.Cmd {
	switch {
	case eff.Kind == state.EffectNone:
		return nil
	case eff.Terminal():
		m.handoff = eff
		if eff.Kind != state.EffectQuit {
			events.App.Handoff(eff.Kind.String(), eff.Session)
		}
		return tea.Quit
	default:
		return m.bus.Execute(m.ctx, eff)
	}
}

// Handoff returns the terminal effect that ended the program, if any.
// Attach and create are executed by the caller once the terminal is free.
func (m *Model) Handoff() (state.Effect, bool) {
	if m.handoff.Kind == state.EffectNone {
		return state.Effect{}, false
	}
	return m.handoff, true
}

// Snapshot exposes the current picker state.
func (m *Model) Snapshot() state.Snapshot {
	return m.machine.Snapshot()
}

// SetCursorMode switches the blinking behaviour of every caret in the UI.
func (m *Model) SetCursorMode(mode cursor.Mode) tea.Cmd {
	m.cursorMode = mode
	cmd := m.filterCursor.SetMode(mode)
	if m.nameForm != nil {
		m.nameForm.SetCursorMode(mode)
	}
	return cmd
}

func (m *Model) updateCursors(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.nameForm != nil {
		if cmd := m.nameForm.UpdateCursor(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncViewport() {
	m.machine.Cursor.EnsureVisible(len(m.machine.Items), m.maxVisibleItems())
}
