package events

import "github.com/atomicstack/ze/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Enter(mode, kind, label, query string) {
	logging.Trace("ui.enter", map[string]interface{}{
		"mode":  mode,
		"kind":  kind,
		"label": label,
		"query": query,
	})
}

func (UITracer) Cursor(mode string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"mode": mode, "cursor": cursor})
}

func (UITracer) Mode(from, to string) {
	if from == to {
		return
	}
	logging.Trace("ui.mode", map[string]interface{}{"from": from, "to": to})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (CommandTracer) Queue(effect, target string) {
	logging.Trace("command.queue", map[string]interface{}{"effect": effect, "target": target})
}

func (CommandTracer) Result(effect, target, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"effect": effect, "target": target, "msg": msgType})
}
