package state

import (
	"fmt"
	"strings"

	"github.com/atomicstack/ze/internal/menu"
)

// Reduce applies one event and returns the next machine together with the
// side effect the caller must perform. It never fails; events that do not
// apply to the current mode are ignored.
func Reduce(m Machine, ev Event) (Machine, Effect) {
	switch ev := ev.(type) {
	case SessionsLoaded:
		return m.sessionsLoaded(ev), Effect{}
	case LayoutsLoaded:
		return m.layoutsLoaded(ev), Effect{}
	case DeleteFinished:
		return m.deleteFinished(ev)
	}
	if m.Busy {
		return m, Effect{}
	}
	m.Err = ""
	m.Info = ""
	switch m.Mode {
	case ModeList:
		return m.reduceList(ev)
	case ModeNameInput:
		return m.reduceNameInput(ev)
	case ModeLayoutSelect:
		return m.reduceLayoutSelect(ev)
	}
	return m, Effect{}
}

func (m Machine) reduceList(ev Event) (Machine, Effect) {
	switch ev := ev.(type) {
	case MoveUp:
		m.Cursor.MoveUp(m.Items)
	case MoveDown:
		m.Cursor.MoveDown(m.Items)
	case TypeText:
		if m.Search.Append(ev.Text) {
			m.Cursor.Reset()
			m.rebuild()
		}
	case Backspace:
		if m.Search.RemoveLast() {
			m.Cursor.Reset()
			m.rebuild()
		}
	case Select:
		item, ok := m.Current()
		if !ok {
			return m, Effect{}
		}
		switch item.Intent() {
		case menu.IntentAttach:
			return m, Effect{Kind: EffectAttach, Session: item.Name}
		case menu.IntentBeginName:
			m.Form = Form{}
			m.enter(ModeNameInput)
		case menu.IntentBeginLayout:
			m.Form = Form{SessionName: strings.TrimSpace(item.Name)}
			m.enter(ModeLayoutSelect)
			m.Busy = true
			return m, Effect{Kind: EffectListLayouts}
		}
	case Delete:
		item, ok := m.Current()
		if !ok || !item.Deletable() {
			return m, Effect{}
		}
		m.Busy = true
		return m, Effect{Kind: EffectDelete, Session: item.Name}
	case Escape:
		return m, Effect{Kind: EffectQuit}
	}
	return m, Effect{}
}

func (m Machine) reduceNameInput(ev Event) (Machine, Effect) {
	switch ev := ev.(type) {
	case EditName:
		m.Form.SessionName = ev.Text
	case SubmitName:
		m.Form = Form{SessionName: strings.TrimSpace(ev.Text)}
		m.enter(ModeLayoutSelect)
		m.Busy = true
		return m, Effect{Kind: EffectListLayouts}
	case Escape:
		m.Form = Form{}
		m.enter(ModeList)
	}
	return m, Effect{}
}

func (m Machine) reduceLayoutSelect(ev Event) (Machine, Effect) {
	switch ev.(type) {
	case MoveUp:
		m.Cursor.MoveUp(m.Items)
	case MoveDown:
		m.Cursor.MoveDown(m.Items)
	case Select:
		item, ok := m.Current()
		if !ok || item.Intent() != menu.IntentCreate {
			return m, Effect{}
		}
		return m, Effect{Kind: EffectCreate, Session: m.Form.SessionName, Layout: item.Name}
	case Escape:
		m.Form.Layouts = nil
		m.enter(ModeNameInput)
	}
	return m, Effect{}
}

func (m Machine) sessionsLoaded(ev SessionsLoaded) Machine {
	m.Sessions = menu.CloneItems(ev.Sessions)
	m.Busy = false
	if m.Mode == ModeList {
		m.rebuild()
	}
	return m
}

func (m Machine) layoutsLoaded(ev LayoutsLoaded) Machine {
	if m.Mode != ModeLayoutSelect {
		return m
	}
	m.Busy = false
	m.Form.Layouts = SortLayouts(ev.Layouts)
	m.Cursor.Reset()
	m.rebuild()
	return m
}

func (m Machine) deleteFinished(ev DeleteFinished) (Machine, Effect) {
	if ev.Err != nil && ev.Fatal {
		m.Busy = false
		return m, Effect{Kind: EffectFail, Session: ev.Name, Err: ev.Err}
	}
	if ev.Err != nil {
		m.Err = fmt.Sprintf("Failed to delete session '%s': %v", ev.Name, ev.Err)
	} else {
		m.Info = fmt.Sprintf("Session '%s' deleted", ev.Name)
	}
	m.Busy = true
	return m, Effect{Kind: EffectListSessions}
}
