package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/stream-status/internal/backend"
	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/twitch"
)

func seed(t *testing.T, names ...string) (*state.Collection, map[string]backend.Request) {
	t.Helper()
	tracked := state.NewCollection()
	reqs := make(map[string]backend.Request, len(names))
	for _, name := range names {
		rec, err := tracked.Add(name)
		if err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
		reqs[name] = backend.Request{Name: rec.Name, Token: rec.Token}
	}
	return tracked, reqs
}

func logo(s string) *string { return &s }

func TestProfileErrorMarksUnresolvedWithoutStreamStage(t *testing.T) {
	tracked, reqs := seed(t, "a1zz", "b22x")
	d := New(tracked)

	res := d.Handle(backend.Event{Kind: backend.KindProfile, Request: reqs["a1zz"], Err: twitch.ErrNotFound})
	if !res.Updated || res.FetchStream || res.Stale {
		t.Fatalf("unexpected result %+v", res)
	}
	rec, _ := tracked.Get("a1zz")
	if rec.Status != state.StatusUnresolved || rec.StatusText != state.UnresolvedText {
		t.Fatalf("expected unresolved placeholder, got %+v", rec)
	}
	other, _ := tracked.Get("b22x")
	if other.Status != state.StatusLoading {
		t.Fatalf("expected other record unaffected, got %+v", other)
	}
}

func TestProfileThenLiveStream(t *testing.T) {
	tracked, reqs := seed(t, "b22x")
	d := New(tracked)

	res := d.Handle(backend.Event{
		Kind:    backend.KindProfile,
		Request: reqs["b22x"],
		Data:    twitch.User{DisplayName: "B22", Logo: logo("http://x/i.png")},
	})
	if !res.FetchStream {
		t.Fatalf("expected stream stage to be requested, got %+v", res)
	}
	rec, _ := tracked.Get("b22x")
	if rec.Status != state.StatusLoading || rec.DisplayName != "B22" || rec.IconURL != "http://x/i.png" {
		t.Fatalf("unexpected record after profile %+v", rec)
	}

	res = d.Handle(backend.Event{
		Kind:    backend.KindStream,
		Request: reqs["b22x"],
		Data:    twitch.StreamStatus{Stream: &twitch.Stream{Channel: twitch.Channel{Status: "Playing"}}},
	})
	if !res.Updated || res.FetchStream {
		t.Fatalf("unexpected result %+v", res)
	}
	rec, _ = tracked.Get("b22x")
	if rec.Status != state.StatusLive || rec.StatusText != "Playing" || rec.IconURL != "http://x/i.png" {
		t.Fatalf("expected live record, got %+v", rec)
	}
}

func TestStreamOfflineAndError(t *testing.T) {
	tracked, reqs := seed(t, "cretetion", "storbeck")
	d := New(tracked)

	d.Handle(backend.Event{Kind: backend.KindStream, Request: reqs["cretetion"], Data: twitch.StreamStatus{}})
	rec, _ := tracked.Get("cretetion")
	if rec.Status != state.StatusOffline || rec.StatusText != state.OfflineText {
		t.Fatalf("expected offline, got %+v", rec)
	}

	d.Handle(backend.Event{Kind: backend.KindStream, Request: reqs["storbeck"], Err: errors.New("timeout")})
	rec, _ = tracked.Get("storbeck")
	if rec.Status != state.StatusUnresolved {
		t.Fatalf("expected unresolved after network error, got %+v", rec)
	}
}

func TestLiveStreamWithoutTitle(t *testing.T) {
	tracked, reqs := seed(t, "habathcx")
	d := New(tracked)
	d.Handle(backend.Event{Kind: backend.KindStream, Request: reqs["habathcx"], Data: twitch.StreamStatus{Stream: &twitch.Stream{}}})
	rec, _ := tracked.Get("habathcx")
	if rec.Status != state.StatusLive || rec.StatusText != state.LiveText {
		t.Fatalf("expected live placeholder text, got %+v", rec)
	}
}

func TestEventForRemovedRecordIsStale(t *testing.T) {
	tracked, reqs := seed(t, "b22x")
	d := New(tracked)
	tracked.Remove("b22x")

	res := d.Handle(backend.Event{
		Kind:    backend.KindStream,
		Request: reqs["b22x"],
		Data:    twitch.StreamStatus{Stream: &twitch.Stream{Channel: twitch.Channel{Status: "Playing"}}},
	})
	if !res.Stale || res.Updated {
		t.Fatalf("expected stale result, got %+v", res)
	}
	if tracked.Has("b22x") {
		t.Fatalf("expected record not recreated")
	}
}

func TestEventForReaddedRecordIsStale(t *testing.T) {
	tracked, reqs := seed(t, "b22x")
	d := New(tracked)
	old := reqs["b22x"]
	tracked.Remove("b22x")
	if _, err := tracked.Add("b22x"); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	res := d.Handle(backend.Event{Kind: backend.KindProfile, Request: old, Err: twitch.ErrNotFound})
	if !res.Stale {
		t.Fatalf("expected stale result, got %+v", res)
	}
	rec, _ := tracked.Get("b22x")
	if rec.Status != state.StatusLoading {
		t.Fatalf("expected fresh record still loading, got %+v", rec)
	}
}

func TestCleanStripsControlSequences(t *testing.T) {
	if got := clean("\x1b[31mred\x1b[0m  title\n"); got != "red title" {
		t.Fatalf("unexpected cleaned text %q", got)
	}
}
