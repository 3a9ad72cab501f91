package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/ze/internal/menu"
	"github.com/atomicstack/ze/internal/ui/state"
	"github.com/atomicstack/ze/internal/zellij"
)

type fakeAdapter struct {
	mu        sync.Mutex
	sessions  []zellij.Session
	layouts   []string
	deleteErr error
	calls     []string
}

func (f *fakeAdapter) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAdapter) ListSessions(context.Context) []zellij.Session {
	f.record("list-sessions")
	return append([]zellij.Session(nil), f.sessions...)
}

func (f *fakeAdapter) ListLayouts(context.Context) []string {
	f.record("list-layouts")
	return append([]string(nil), f.layouts...)
}

func (f *fakeAdapter) AttachSession(_ context.Context, name string) error {
	f.record("attach " + name)
	return nil
}

func (f *fakeAdapter) CreateSession(_ context.Context, name, layout string) error {
	f.record("create " + name + " " + layout)
	return nil
}

func (f *fakeAdapter) DeleteSession(_ context.Context, name string) error {
	f.record("delete " + name)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.sessions[:0]
	for _, s := range f.sessions {
		if s.Name != name {
			kept = append(kept, s)
		}
	}
	f.sessions = kept
	return nil
}

func (f *fakeAdapter) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

var _ menu.Adapter = (*fakeAdapter)(nil)

func newHarness(t *testing.T, adapter *fakeAdapter, showFooter bool) *Harness {
	t.Helper()
	model := NewModel(Options{
		Adapter:    adapter,
		Sessions:   adapter.ListSessions(context.Background()),
		Width:      120,
		Height:     24,
		ShowFooter: showFooter,
	})
	return NewHarness(model)
}

func sampleAdapter() *fakeAdapter {
	return &fakeAdapter{
		sessions: []zellij.Session{
			{Name: "dev", Created: "2h", Active: true},
			{Name: "web", Created: "10m"},
		},
		layouts: []string{"default", "compact", "classic"},
	}
}

func TestNoSessionsStartsWithFirstSessionPrompt(t *testing.T) {
	h := newHarness(t, &fakeAdapter{layouts: []string{"default"}}, false)
	if got := h.Model().Snapshot().Mode; got != state.ModeNameInput {
		t.Fatalf("expected name-input mode, got %s", got)
	}
	view := h.View()
	if !strings.Contains(view, "Create Your First Session") {
		t.Fatalf("expected first-session title, got:\n%s", view)
	}
	if !strings.Contains(view, namePlaceholder) {
		t.Fatalf("expected placeholder, got:\n%s", view)
	}
}

func TestListShowsSessionsAndNewSession(t *testing.T) {
	h := newHarness(t, sampleAdapter(), false)
	view := h.View()
	for _, want := range []string{"Select Session", "> dev", "web", "(10m)", activeGlyph, menu.NewSessionLabel} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Search:") {
		t.Fatalf("expected search line hidden without query:\n%s", view)
	}
}

func TestCtrlJKNavigation(t *testing.T) {
	h := newHarness(t, sampleAdapter(), false)
	h.Key("ctrl+j")
	if got := h.Model().Snapshot().Cursor; got != 1 {
		t.Fatalf("expected cursor 1 after ctrl+j, got %d", got)
	}
	h.Key("ctrl+k")
	h.Key("ctrl+k")
	if got := h.Model().Snapshot().Cursor; got != 2 {
		t.Fatalf("expected wrap to last row, got %d", got)
	}
	if !strings.Contains(h.View(), "> "+menu.NewSessionLabel) {
		t.Fatalf("expected new-session row selected:\n%s", h.View())
	}
}

func TestEnterOnSessionHandsOffAttach(t *testing.T) {
	adapter := sampleAdapter()
	h := newHarness(t, adapter, false)
	h.Key("down")
	h.Key("enter")
	if !h.Quit() {
		t.Fatalf("expected program to quit")
	}
	eff, ok := h.Model().Handoff()
	if !ok || eff.Kind != state.EffectAttach || eff.Session != "web" {
		t.Fatalf("unexpected hand-off %+v", eff)
	}
	for _, call := range adapter.Calls() {
		if strings.HasPrefix(call, "attach") {
			t.Fatalf("attach must wait until the terminal is released, got %v", adapter.Calls())
		}
	}
}

func TestTypedQueryCreatesSessionThroughLayoutSelect(t *testing.T) {
	adapter := sampleAdapter()
	h := newHarness(t, adapter, false)
	h.Type("abc")
	snap := h.Model().Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].Kind != menu.KindCreateFromQuery {
		t.Fatalf("expected only the create item, got %#v", snap.Items)
	}
	view := h.View()
	if !strings.Contains(view, "Search: abc") || !strings.Contains(view, `[ + Create Session "abc" ]`) {
		t.Fatalf("unexpected view:\n%s", view)
	}

	h.Key("enter")
	snap = h.Model().Snapshot()
	if snap.Mode != state.ModeLayoutSelect || snap.Busy {
		t.Fatalf("expected loaded layout-select, got %s busy=%v", snap.Mode, snap.Busy)
	}
	names := make([]string, len(snap.Items))
	for i, item := range snap.Items {
		names[i] = item.Name
	}
	if strings.Join(names, ",") != "default,classic,compact" {
		t.Fatalf("unexpected layout order %v", names)
	}
	view = h.View()
	if !strings.Contains(view, "Select Layout") || !strings.Contains(view, `for session "abc"`) {
		t.Fatalf("expected layout title, got:\n%s", view)
	}

	h.Key("down")
	h.Key("enter")
	eff, ok := h.Model().Handoff()
	if !ok || eff.Kind != state.EffectCreate || eff.Session != "abc" || eff.Layout != "classic" {
		t.Fatalf("unexpected hand-off %+v", eff)
	}
}

func TestNewSessionPromptAcceptsName(t *testing.T) {
	h := newHarness(t, sampleAdapter(), false)
	h.Key("ctrl+k")
	h.Key("enter")
	snap := h.Model().Snapshot()
	if snap.Mode != state.ModeNameInput {
		t.Fatalf("expected name-input, got %s", snap.Mode)
	}
	if !strings.Contains(h.View(), "Create New Session") {
		t.Fatalf("expected new session title:\n%s", h.View())
	}
	h.Type("work")
	if got := h.Model().Snapshot().Form.SessionName; got != "work" {
		t.Fatalf("expected form to track input, got %q", got)
	}
	h.Key("enter")
	h.Key("enter")
	eff, ok := h.Model().Handoff()
	if !ok || eff.Kind != state.EffectCreate || eff.Session != "work" || eff.Layout != menu.DefaultLayout {
		t.Fatalf("unexpected hand-off %+v", eff)
	}
}

func TestEscapeChainQuits(t *testing.T) {
	h := newHarness(t, sampleAdapter(), false)
	h.Key("ctrl+k")
	h.Key("enter")
	h.Type("tmp")
	h.Key("enter")
	if got := h.Model().Snapshot().Mode; got != state.ModeLayoutSelect {
		t.Fatalf("expected layout-select, got %s", got)
	}
	h.Key("esc")
	snap := h.Model().Snapshot()
	if snap.Mode != state.ModeNameInput || snap.Form.SessionName != "tmp" {
		t.Fatalf("expected name prompt with kept name, got %s %q", snap.Mode, snap.Form.SessionName)
	}
	if !strings.Contains(h.View(), "tmp") {
		t.Fatalf("expected name restored in prompt:\n%s", h.View())
	}
	h.Key("esc")
	if got := h.Model().Snapshot().Mode; got != state.ModeList {
		t.Fatalf("expected list, got %s", got)
	}
	if h.Quit() {
		t.Fatalf("did not expect quit yet")
	}
	h.Key("esc")
	if !h.Quit() {
		t.Fatalf("expected quit from list")
	}
	eff, ok := h.Model().Handoff()
	if !ok || eff.Kind != state.EffectQuit {
		t.Fatalf("expected quit hand-off, got %+v", eff)
	}
}

func TestDeleteRefetchesSessions(t *testing.T) {
	adapter := sampleAdapter()
	h := newHarness(t, adapter, false)
	h.Key("down")
	h.Key("ctrl+d")
	calls := adapter.Calls()
	if len(calls) < 3 || calls[1] != "delete web" || calls[2] != "list-sessions" {
		t.Fatalf("expected delete then refetch, got %v", calls)
	}
	snap := h.Model().Snapshot()
	if snap.Busy || len(snap.Items) != 2 || snap.Items[0].Name != "dev" {
		t.Fatalf("expected list rebuilt without web, got %#v", snap.Items)
	}
	if snap.Cursor != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", snap.Cursor)
	}
	if !strings.Contains(h.View(), "Session 'web' deleted") {
		t.Fatalf("expected deletion notice:\n%s", h.View())
	}
}

func TestDeleteFailureShowsError(t *testing.T) {
	adapter := sampleAdapter()
	adapter.deleteErr = errors.New("permission denied")
	h := newHarness(t, adapter, false)
	h.Key("ctrl+d")
	if h.Quit() {
		t.Fatalf("did not expect quit")
	}
	view := h.View()
	if !strings.Contains(view, "Failed to delete session 'dev'") {
		t.Fatalf("expected error line:\n%s", view)
	}
	h.Key("down")
	if strings.Contains(h.View(), "Failed to delete") {
		t.Fatalf("expected error cleared on next key")
	}
}

func TestDeleteCurrentSessionFails(t *testing.T) {
	adapter := sampleAdapter()
	adapter.deleteErr = zellij.ErrCurrentSession
	h := newHarness(t, adapter, false)
	h.Key("ctrl+d")
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	eff, ok := h.Model().Handoff()
	if !ok || eff.Kind != state.EffectFail || !errors.Is(eff.Err, zellij.ErrCurrentSession) {
		t.Fatalf("unexpected hand-off %+v", eff)
	}
}

func TestFooterText(t *testing.T) {
	h := newHarness(t, sampleAdapter(), true)
	if !strings.Contains(h.View(), "Type: Search") {
		t.Fatalf("expected search hint:\n%s", h.View())
	}
	h.Type("d")
	view := h.View()
	for _, want := range []string{"Ctrl+D: Delete", "Backspace/Del: Clear", "Esc: Exit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in footer:\n%s", want, view)
		}
	}
	h.Key("backspace")
	if h.Model().Snapshot().Query != "" {
		t.Fatalf("expected query cleared")
	}
}

func TestFooterHiddenByDefault(t *testing.T) {
	h := newHarness(t, sampleAdapter(), false)
	if strings.Contains(h.View(), "Navigate") {
		t.Fatalf("expected no footer:\n%s", h.View())
	}
}

func TestAltRunesIgnored(t *testing.T) {
	h := newHarness(t, sampleAdapter(), false)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if got := h.Model().Snapshot().Query; got != "" {
		t.Fatalf("expected alt chord ignored, got %q", got)
	}
	h.Type("w b")
	if got := h.Model().Snapshot().Query; got != "w b" {
		t.Fatalf("expected spaces kept in query, got %q", got)
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	adapter := &fakeAdapter{}
	for _, name := range []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9"} {
		adapter.sessions = append(adapter.sessions, zellij.Session{Name: name})
	}
	model := NewModel(Options{
		Adapter:  adapter,
		Sessions: adapter.sessions,
		Width:    40,
		Height:   9,
	})
	h := NewHarness(model)
	h.Key("up")
	view := h.View()
	if !strings.Contains(view, "> "+menu.NewSessionLabel) {
		t.Fatalf("expected wrapped cursor visible:\n%s", view)
	}
	if strings.Contains(view, "s0") {
		t.Fatalf("expected first rows scrolled out:\n%s", view)
	}
}
