package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/backend"
	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/testutil"
	"github.com/atomicstack/stream-status/internal/twitch"
)

func startLive(t *testing.T, api *testutil.API, names ...string) *Harness {
	t.Helper()
	loader := backend.NewLoader(twitch.NewClient(api.URL(), time.Second), time.Second, 0)
	t.Cleanup(loader.Stop)
	h := NewHarness(NewModel(100, 30, true, false, loader, names))
	h.Start()
	return h
}

func requested(api *testutil.API, path string) bool {
	for _, p := range api.Requests() {
		if p == path {
			return true
		}
	}
	return false
}

func TestIntegrationResolvesSeedList(t *testing.T) {
	api := testutil.NewAPI(t)
	api.SetUser("freecodecamp", `{"display_name":"FreeCodeCamp","logo":"http://x/fcc.png"}`)
	api.SetUser("esl_sc2", `{"display_name":"ESL_SC2","logo":null}`)
	api.SetStream("esl_sc2", `{"stream":{"channel":{"status":"RERUN: StarCraft II"}}}`)

	h := startLive(t, api, "freecodecamp", "esl_sc2", "brunofin")
	if !h.WaitFor(3*time.Second, func(m *Model) bool { return m.Pending() == 0 }) {
		t.Fatalf("records still loading: %+v", h.Model().Records())
	}

	want := map[string]state.Status{
		"freecodecamp": state.StatusOffline,
		"esl_sc2":      state.StatusLive,
		"brunofin":     state.StatusUnresolved,
	}
	for name, status := range want {
		if rec := record(t, h, name); rec.Status != status {
			t.Fatalf("%s: expected %v, got %+v", name, status, rec)
		}
	}
	if requested(api, "streams/brunofin") {
		t.Fatalf("stream stage issued for unresolved profile")
	}

	view := testutil.StripANSI(h.View())
	for _, text := range []string{"FreeCodeCamp", "RERUN: StarCraft II", "Channel coming soon!", "3/3 tracked channels"} {
		if !strings.Contains(view, text) {
			t.Fatalf("expected %q in view, got:\n%s", text, view)
		}
	}
}

func TestIntegrationRemoveWhileStreamInFlight(t *testing.T) {
	api := testutil.NewAPI(t)
	api.SetUser("bb22", `{"display_name":"B22","logo":"http://x/i.png"}`)
	api.SetStream("bb22", `{"stream":{"channel":{"status":"Playing"}}}`)
	release := api.Hold("streams", "bb22")

	h := startLive(t, api, "aaa1", "bb22")
	ok := h.WaitFor(3*time.Second, func(m *Model) bool {
		rec, found := m.tracked.Get("bb22")
		return found && rec.DisplayName == "B22" && requested(api, "streams/bb22")
	})
	if !ok {
		t.Fatalf("stream stage for bb22 never started: %v", api.Requests())
	}

	h.Model().list.Select("bb22")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	release()
	h.WaitFor(300*time.Millisecond, func(*Model) bool { return false })

	if h.Model().tracked.Has("bb22") {
		t.Fatalf("late stream result recreated bb22: %+v", h.Model().Records())
	}
	if rec := record(t, h, "aaa1"); rec.Status != state.StatusUnresolved {
		t.Fatalf("expected aaa1 unresolved, got %+v", rec)
	}
	if names := h.Model().VisibleNames(); len(names) != 1 || names[0] != "aaa1" {
		t.Fatalf("unexpected rows after removal: %v", names)
	}
}
