package events

import "github.com/atomicstack/ze/internal/logging"

type LayoutTracer struct{}

var Layout = LayoutTracer{}

func (LayoutTracer) Loaded(session string, layouts []string) {
	logging.Trace("layout.list", map[string]interface{}{"session": session, "layouts": layouts})
}

func (LayoutTracer) Select(session, layout string) {
	logging.Trace("layout.select", map[string]interface{}{"session": session, "layout": layout})
}

func (LayoutTracer) Cancel(session string) {
	logging.Trace("layout.cancel", map[string]interface{}{"session": session})
}
