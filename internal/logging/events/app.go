package events

import "github.com/atomicstack/popup-grep/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Moves(script string, count int) {
	logging.Trace("app.moves", map[string]interface{}{"script": script, "count": count})
}

func (AppTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.error", map[string]interface{}{"error": err.Error()})
}
