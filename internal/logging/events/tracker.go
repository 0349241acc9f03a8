package events

import "github.com/atomicstack/stream-status/internal/logging"

type TrackerTracer struct{}

type FetchTracer struct{}

type trackerReason string

const (
	TrackerReasonEscape trackerReason = "escape"
	TrackerReasonSubmit trackerReason = "submit"
)

var (
	Tracker = TrackerTracer{}
	Fetch   = FetchTracer{}
)

func (TrackerTracer) Add(name, token string) {
	logging.Trace("tracker.add", map[string]interface{}{"name": name, "token": token})
}

func (TrackerTracer) Reject(name string, err error) {
	logging.Trace("tracker.reject", map[string]interface{}{"name": name, "error": err.Error()})
}

func (TrackerTracer) Remove(name string) {
	logging.Trace("tracker.remove", map[string]interface{}{"name": name})
}

func (TrackerTracer) Move(name, direction string, moved bool) {
	logging.Trace("tracker.move", map[string]interface{}{"name": name, "direction": direction, "moved": moved})
}

func (TrackerTracer) FormOpen(tracked int) {
	logging.Trace("tracker.form.open", map[string]interface{}{"tracked": tracked})
}

func (TrackerTracer) FormClose(reason trackerReason) {
	logging.Trace("tracker.form.close", map[string]interface{}{"reason": string(reason)})
}

func (FetchTracer) Queue(stage, name string) {
	logging.Trace("fetch.queue", map[string]interface{}{"stage": stage, "name": name})
}

func (FetchTracer) Result(stage, name, status string, err error) {
	payload := map[string]interface{}{"stage": stage, "name": name, "status": status}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("fetch.result", payload)
}

func (FetchTracer) Stale(stage, name string) {
	logging.Trace("fetch.stale", map[string]interface{}{"stage": stage, "name": name})
}
