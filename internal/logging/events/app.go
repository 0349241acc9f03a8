package events

import "github.com/atomicstack/stream-status/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seed(names []string) {
	logging.Trace("app.seed", map[string]interface{}{"names": names})
}
