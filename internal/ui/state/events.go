package state

import "github.com/atomicstack/ze/internal/menu"

// Event is an input or adapter result fed to Reduce.
type Event interface {
	event()
}

type (
	MoveUp    struct{}
	MoveDown  struct{}
	Backspace struct{}
	Select    struct{}
	Delete    struct{}
	Escape    struct{}

	// TypeText appends text to the search query.
	TypeText struct{ Text string }
	// EditName mirrors the name prompt contents while the user types.
	EditName struct{ Text string }
	// SubmitName confirms the name prompt.
	SubmitName struct{ Text string }

	SessionsLoaded struct{ Sessions []menu.Item }
	LayoutsLoaded  struct{ Layouts []string }
	// DeleteFinished reports a delete. Fatal marks a refused precondition
	// that ends the program instead of being shown in the status line.
	DeleteFinished struct {
		Name  string
		Err   error
		Fatal bool
	}
)

func (MoveUp) event()         {}
func (MoveDown) event()       {}
func (Backspace) event()      {}
func (Select) event()         {}
func (Delete) event()         {}
func (Escape) event()         {}
func (TypeText) event()       {}
func (EditName) event()       {}
func (SubmitName) event()     {}
func (SessionsLoaded) event() {}
func (LayoutsLoaded) event()  {}
func (DeleteFinished) event() {}

// EffectKind names a side effect requested by Reduce.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectQuit
	EffectAttach
	EffectCreate
	EffectDelete
	EffectListLayouts
	EffectListSessions
	EffectFail
)

func (k EffectKind) String() string {
	switch k {
	case EffectQuit:
		return "quit"
	case EffectAttach:
		return "attach"
	case EffectCreate:
		return "create"
	case EffectDelete:
		return "delete"
	case EffectListLayouts:
		return "list-layouts"
	case EffectListSessions:
		return "list-sessions"
	case EffectFail:
		return "fail"
	default:
		return "none"
	}
}

// Effect is data describing an adapter call or program exit.
type Effect struct {
	Kind    EffectKind
	Session string
	Layout  string
	Err     error
}

// Terminal reports whether the effect ends the event loop.
func (e Effect) Terminal() bool {
	switch e.Kind {
	case EffectQuit, EffectAttach, EffectCreate, EffectFail:
		return true
	default:
		return false
	}
}
