package command

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/logging/events"
	"github.com/atomicstack/ze/internal/menu"
	"github.com/atomicstack/ze/internal/ui/state"
	"github.com/atomicstack/ze/internal/zellij"
)

// Bus maps state machine effects onto adapter calls.
type Bus struct {
	adapter menu.Adapter
}

// New initialises a command bus backed by the given adapter.
func New(adapter menu.Adapter) *Bus {
	return &Bus{adapter: adapter}
}

// Run performs a non-terminal effect and returns the event carrying its
// result. Terminal effects and EffectNone yield nil.
func (b *Bus) Run(ctx context.Context, eff state.Effect) state.Event {
	switch eff.Kind {
	case state.EffectListSessions:
		sessions := b.adapter.ListSessions(ctx)
		events.Session.Loaded(len(sessions))
		return state.SessionsLoaded{Sessions: menu.SessionItemsFromZellij(sessions)}
	case state.EffectListLayouts:
		return state.LayoutsLoaded{Layouts: b.adapter.ListLayouts(ctx)}
	case state.EffectDelete:
		events.Session.Delete(eff.Session)
		err := b.adapter.DeleteSession(ctx, eff.Session)
		events.Session.DeleteFailed(eff.Session, err)
		return state.DeleteFinished{
			Name:  eff.Session,
			Err:   err,
			Fatal: errors.Is(err, zellij.ErrCurrentSession),
		}
	default:
		return nil
	}
}

// Execute wraps Run into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(ctx context.Context, eff state.Effect) tea.Cmd {
	if eff.Kind == state.EffectNone || eff.Terminal() {
		return nil
	}
	events.Command.Queue(eff.Kind.String(), eff.Session)
	return func() tea.Msg {
		ev := b.Run(ctx, eff)
		events.Command.Result(eff.Kind.String(), eff.Session, fmt.Sprintf("%T", ev))
		return ev
	}
}

// Handoff performs a terminal effect once the UI has released the
// terminal. Attach and create block until zellij exits.
func (b *Bus) Handoff(ctx context.Context, eff state.Effect) error {
	var err error
	switch eff.Kind {
	case state.EffectAttach:
		events.Session.Attach(eff.Session)
		err = b.adapter.AttachSession(ctx, eff.Session)
	case state.EffectCreate:
		events.Session.Create(eff.Session, eff.Layout)
		err = b.adapter.CreateSession(ctx, eff.Session, eff.Layout)
	case state.EffectFail:
		err = eff.Err
		if err == nil {
			err = errors.New("unknown failure")
		}
	default:
		return nil
	}
	if err != nil {
		return &HandoffError{Action: eff.Kind.String(), Session: eff.Session, Err: err}
	}
	return nil
}

// HandoffError reports a failed terminal action along with the session
// involved.
type HandoffError struct {
	Action  string
	Session string
	Err     error
}

func (e *HandoffError) Error() string {
	if e.Session == "" {
		return fmt.Sprintf("%s session: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("%s session %q: %v", e.Action, e.Session, e.Err)
}

func (e *HandoffError) Unwrap() error {
	return e.Err
}

// ExitCode mirrors zellij's exit status when it ran and failed, else 1.
func (e *HandoffError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
