// Package ui contains the Bubble Tea program that powers the zellij session
// picker. Model.Update stays thin: it maps messages onto events for the pure
// state machine in internal/ui/state and turns the effects it returns into
// commands.
//
// Message flow:
//   - Key presses are routed through a typed handler registry. In name-input
//     mode they go to the NameForm text input; otherwise navigation helpers
//     (navigation.go) and the search helpers (input.go) translate them into
//     state events.
//   - state.Reduce returns the next machine and an Effect. Non-terminal
//     effects (list sessions, list layouts, delete) run through the
//     internal/ui/command bus as tea.Cmd values whose result messages are
//     reduced in turn. While one is outstanding the machine is busy and
//     ignores input.
//   - Terminal effects (attach, create, quit, fatal failure) are recorded and
//     the program quits. The caller retrieves them with Model.Handoff and runs
//     them after the terminal has been restored.
//
// Rendering reads the machine directly; the only state the view owns is the
// viewport offset and the caret models.
package ui
