package state

import (
	"fmt"

	"github.com/atomicstack/ze/internal/menu"
)

// Mode selects the active screen.
type Mode int

const (
	ModeList Mode = iota
	ModeNameInput
	ModeLayoutSelect
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeNameInput:
		return "name-input"
	case ModeLayoutSelect:
		return "layout-select"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Form collects what is needed to create a session.
type Form struct {
	SessionName string
	Layouts     []string
}

// Machine is the whole picker state. It is passed by value through Reduce;
// slices are replaced, never mutated in place.
type Machine struct {
	Mode     Mode
	Sessions []menu.Item
	Search   Search
	Cursor   Cursor
	Form     Form
	Items    []menu.Item
	// Busy is set while an adapter call is outstanding; input is ignored
	// until its result arrives.
	Busy bool
	Err  string
	Info string
}

// New builds the initial machine. With no sessions the picker opens
// straight on the name prompt.
func New(sessions []menu.Item) Machine {
	m := Machine{Sessions: menu.CloneItems(sessions)}
	if len(m.Sessions) == 0 {
		m.Mode = ModeNameInput
	}
	m.rebuild()
	return m
}

// Snapshot is the read-only view handed to the renderer after each event.
type Snapshot struct {
	Mode        Mode
	Items       []menu.Item
	Cursor      int
	Offset      int
	Query       string
	Form        Form
	HasSessions bool
	Busy        bool
	Err         string
	Info        string
}

func (m Machine) Snapshot() Snapshot {
	return Snapshot{
		Mode:        m.Mode,
		Items:       menu.CloneItems(m.Items),
		Cursor:      m.Cursor.Index,
		Offset:      m.Cursor.Offset,
		Query:       m.Search.Query,
		Form:        Form{SessionName: m.Form.SessionName, Layouts: append([]string(nil), m.Form.Layouts...)},
		HasSessions: len(m.Sessions) > 0,
		Busy:        m.Busy,
		Err:         m.Err,
		Info:        m.Info,
	}
}

// Current returns the item under the cursor.
func (m Machine) Current() (menu.Item, bool) {
	return m.Cursor.Current(m.Items)
}

func (m *Machine) rebuild() {
	switch m.Mode {
	case ModeList:
		m.Items = m.Search.Apply(m.Sessions, true)
	case ModeLayoutSelect:
		m.Items = m.Search.Apply(menu.LayoutItems(m.Form.Layouts), false)
	default:
		m.Items = nil
	}
	m.Cursor.Clamp(len(m.Items))
}

func (m *Machine) enter(mode Mode) {
	m.Mode = mode
	m.Search.Clear()
	m.Cursor.Reset()
	m.rebuild()
}
