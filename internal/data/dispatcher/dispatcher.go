package dispatcher

import (
	"strings"

	"github.com/atomicstack/stream-status/internal/backend"
	"github.com/atomicstack/stream-status/internal/logging/events"
	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/twitch"
	"github.com/charmbracelet/x/ansi"
)

// Result reports what applying an event changed.
type Result struct {
	Updated bool
	Stale   bool
	// FetchStream is set when the profile stage succeeded and the stream
	// stage should be issued for the same request.
	FetchStream bool
}

// Dispatcher applies fetch events to the tracked collection.
type Dispatcher struct {
	tracked *state.Collection
}

func New(tracked *state.Collection) *Dispatcher {
	return &Dispatcher{tracked: tracked}
}

// Handle applies evt. Events for records that were removed, re-added, or are
// already resolved are reported as stale and leave the collection untouched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	req := evt.Request
	stage := evt.Kind.String()
	if !d.tracked.Alive(req.Name, req.Token) {
		events.Fetch.Stale(stage, req.Name)
		res.Stale = true
		return res
	}
	switch evt.Kind {
	case backend.KindProfile:
		user, ok := evt.Data.(twitch.User)
		if evt.Err != nil || !ok {
			res.Updated = d.unresolved(stage, req, evt.Err)
			return res
		}
		d.tracked.ApplyProfile(req.Name, req.Token, clean(user.DisplayName), clean(user.LogoURL()))
		events.Fetch.Result(stage, req.Name, "profile", nil)
		res.Updated = true
		res.FetchStream = true
	case backend.KindStream:
		status, ok := evt.Data.(twitch.StreamStatus)
		if evt.Err != nil || !ok {
			res.Updated = d.unresolved(stage, req, evt.Err)
			return res
		}
		if status.Live() {
			text := clean(status.Title())
			if text == "" {
				text = state.LiveText
			}
			res.Updated = d.tracked.Resolve(req.Name, req.Token, state.StatusLive, text)
			events.Fetch.Result(stage, req.Name, state.StatusLive.String(), nil)
			return res
		}
		res.Updated = d.tracked.Resolve(req.Name, req.Token, state.StatusOffline, state.OfflineText)
		events.Fetch.Result(stage, req.Name, state.StatusOffline.String(), nil)
	}
	return res
}

func (d *Dispatcher) unresolved(stage string, req backend.Request, err error) bool {
	events.Fetch.Result(stage, req.Name, state.StatusUnresolved.String(), err)
	return d.tracked.Resolve(req.Name, req.Token, state.StatusUnresolved, state.UnresolvedText)
}

// clean strips terminal control sequences and collapses whitespace in text
// received from the API before it reaches the screen.
func clean(text string) string {
	return strings.Join(strings.Fields(ansi.Strip(text)), " ")
}
