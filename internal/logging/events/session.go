package events

import "github.com/atomicstack/ze/internal/logging"

type SessionTracer struct{}

type sessionReason string

const SessionReasonEscape sessionReason = "escape"

var Session = SessionTracer{}

func (SessionTracer) Loaded(count int) {
	logging.Trace("session.list", map[string]interface{}{"count": count})
}

func (SessionTracer) NewPrompt(existing int) {
	logging.Trace("session.new.prompt", map[string]interface{}{"existing": existing})
}

func (SessionTracer) FromQuery(name string) {
	logging.Trace("session.new.query", map[string]interface{}{"name": name})
}

func (SessionTracer) SubmitNew(name string) {
	logging.Trace("session.new.submit", map[string]interface{}{"name": name})
}

func (SessionTracer) CancelNew(reason sessionReason) {
	logging.Trace("session.new.cancel", map[string]interface{}{"reason": string(reason)})
}

func (SessionTracer) Attach(target string) {
	logging.Trace("session.attach", map[string]interface{}{"target": target})
}

func (SessionTracer) Create(name, layout string) {
	logging.Trace("session.new.create", map[string]interface{}{"name": name, "layout": layout})
}

func (SessionTracer) Delete(target string) {
	logging.Trace("session.delete", map[string]interface{}{"target": target})
}

func (SessionTracer) DeleteFailed(target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.delete.error", map[string]interface{}{"target": target, "error": err.Error()})
}
