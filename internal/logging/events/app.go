package events

import "github.com/atomicstack/gradebook/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Interrupted() {
	logging.Trace("app.interrupt", nil)
}

func (AppTracer) Stop(saved int) {
	logging.Trace("app.stop", map[string]interface{}{"saved": saved})
}
