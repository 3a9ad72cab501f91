package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/menu"
	"github.com/atomicstack/ze/internal/ui"
	"github.com/atomicstack/ze/internal/ui/command"
	"github.com/atomicstack/ze/internal/ui/state"
	"github.com/atomicstack/ze/internal/zellij"
)

// Config describes user-provided application options.
type Config struct {
	Zellij       string
	LayoutDir    string
	ExtraLayouts []string
	Width        int
	Height       int
	ShowFooter   bool
}

// Run lists sessions, drives the picker and then performs whatever the user
// chose once the terminal has been released.
func Run(ctx context.Context, cfg Config) error {
	client := zellij.NewClient(zellij.Options{
		Binary:       cfg.Zellij,
		LayoutDir:    cfg.LayoutDir,
		ExtraLayouts: cfg.ExtraLayouts,
	})
	return run(ctx, cfg, client, func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	})
}

var _ menu.Adapter = (*zellij.Client)(nil)

type programRunner func(tea.Model) (tea.Model, error)

func run(ctx context.Context, cfg Config, adapter menu.Adapter, runProgram programRunner) error {
	model := ui.NewModel(ui.Options{
		Context:    ctx,
		Adapter:    adapter,
		Sessions:   adapter.ListSessions(ctx),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	final, err := runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	if m, ok := final.(*ui.Model); ok {
		model = m
	}
	eff, ok := model.Handoff()
	if !ok || eff.Kind == state.EffectQuit {
		return nil
	}
	return command.New(adapter).Handoff(ctx, eff)
}
