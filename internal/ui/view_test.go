package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/testutil"
)

func viewOf(h *Harness) string {
	return testutil.StripANSI(h.View())
}

func TestViewEmptyCollection(t *testing.T) {
	h, _ := newTestModel(t)
	view := viewOf(h)
	if !strings.Contains(view, "(no channels)") {
		t.Fatalf("expected empty placeholder, got:\n%s", view)
	}
	if !strings.Contains(view, "0/0 tracked channels") {
		t.Fatalf("expected counts in header, got:\n%s", view)
	}
}

func TestViewNarrowShowsCardInline(t *testing.T) {
	h, fetcher := newTestModel(t, "storbeck", "habathcx")
	h.Send(profileEvent(fetcher.profileFor(t, "storbeck"), "Storbeck", "http://x/s.png"))
	h.Send(offlineEvent(fetcher.profileFor(t, "storbeck")))

	view := viewOf(h)
	for _, text := range []string{"Channel: Storbeck", "http://x/s.png", "https://www.twitch.tv/storbeck", "Offline"} {
		if !strings.Contains(view, text) {
			t.Fatalf("expected %q in view, got:\n%s", text, view)
		}
	}
	if strings.Contains(view, "╭") {
		t.Fatalf("expected no side panel at width 80, got:\n%s", view)
	}
}

func TestViewWideShowsSidePanel(t *testing.T) {
	h, _ := newTestModel(t, "storbeck")
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 20})
	if view := viewOf(h); strings.Contains(view, "╭") {
		t.Fatalf("fixed width must ignore resize, got:\n%s", view)
	}

	m := NewModel(120, 20, true, false, &fakeFetcher{}, []string{"storbeck"})
	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "╭") || !strings.Contains(view, "Channel: storbeck") {
		t.Fatalf("expected side panel, got:\n%s", view)
	}
	if !strings.Contains(view, "ctrl+n add") {
		t.Fatalf("expected footer help, got:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("expected view to fill 20 rows, got %d", got)
	}
}

func TestViewUnresolvedCardOmitsChannelLink(t *testing.T) {
	h, fetcher := newTestModel(t, "brunofin")
	h.Send(backendEventMsg{event: errorEvent(fetcher.profileFor(t, "brunofin"))})
	view := viewOf(h)
	if !strings.Contains(view, "Channel coming soon!") {
		t.Fatalf("expected placeholder, got:\n%s", view)
	}
	if strings.Contains(view, "twitch.tv/brunofin") {
		t.Fatalf("unresolved card must not link to a channel, got:\n%s", view)
	}
}

func TestViewSearchWithoutMatches(t *testing.T) {
	h, _ := newTestModel(t, "storbeck")
	typeText(h, "zzz")
	view := viewOf(h)
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
	if !strings.Contains(view, "» zzz") {
		t.Fatalf("expected search prompt, got:\n%s", view)
	}
}

func TestViewShowsSeedRejection(t *testing.T) {
	h, _ := newTestModel(t, "abc")
	if view := viewOf(h); !strings.Contains(view, "Error: Username must be between 4 and 25 characters") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
}

func TestViewRemovalInfo(t *testing.T) {
	h, _ := newTestModel(t, "storbeck", "habathcx")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	view := viewOf(h)
	if !strings.Contains(view, "Stopped tracking storbeck") {
		t.Fatalf("expected removal info, got:\n%s", view)
	}
	if strings.Contains(view, "twitch.tv/storbeck") {
		t.Fatalf("removed card still shown, got:\n%s", view)
	}
}
