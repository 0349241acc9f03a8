package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/testutil"
)

func TestFromRecordLabelIncludesName(t *testing.T) {
	item := FromRecord(state.Record{Name: "esl_sc2", DisplayName: "ESL SC2"})
	if item.ID != "esl_sc2" {
		t.Fatalf("unexpected id %q", item.ID)
	}
	if item.Label != "ESL SC2 esl_sc2" {
		t.Fatalf("unexpected label %q", item.Label)
	}
	same := FromRecord(state.Record{Name: "storbeck", DisplayName: "storbeck"})
	if same.Label != "storbeck" {
		t.Fatalf("expected label without duplicate name, got %q", same.Label)
	}
}

func TestRowsRenderStatusColumns(t *testing.T) {
	items := FromRecords([]state.Record{
		{Name: "freecodecamp", DisplayName: "FreeCodeCamp", Status: state.StatusOffline, StatusText: state.OfflineText},
		{Name: "ESL_SC2", DisplayName: "ESL_SC2", Status: state.StatusLive, StatusText: "RERUN: StarCraft II"},
		{Name: "brunofin", Status: state.StatusUnresolved, StatusText: state.UnresolvedText},
		{Name: "habathcx", Status: state.StatusLoading, StatusText: state.LoadingText},
	})
	rows := Rows(items, nil)
	testutil.AssertGolden(t, "card_rows.txt", strings.Join(rows, "\n")+"\n")
}

func TestRowsUseCustomGlyph(t *testing.T) {
	items := FromRecords([]state.Record{{Name: "habathcx", Status: state.StatusLoading, StatusText: state.LoadingText}})
	rows := Rows(items, func(state.Record) string { return "*" })
	if rows[0] != "*  habathcx  Loading" {
		t.Fatalf("unexpected row %q", rows[0])
	}
}

func TestDetailsOmitMissingFields(t *testing.T) {
	live := Details(state.Record{Name: "cretetion", Status: state.StatusLive, StatusText: "Playing", IconURL: "https://x/logo.png"})
	want := []Detail{
		{Label: "Name", Value: "cretetion"},
		{Label: "Status", Value: "Playing"},
		{Label: "Icon", Value: "https://x/logo.png"},
		{Label: "Channel", Value: "https://www.twitch.tv/cretetion"},
	}
	if diff := cmp.Diff(want, live); diff != "" {
		t.Fatalf("unexpected details (-want +got):\n%s", diff)
	}

	unresolved := Details(state.Record{Name: "brunofin", Status: state.StatusUnresolved, StatusText: state.UnresolvedText})
	if len(unresolved) != 2 {
		t.Fatalf("expected name and status only, got %+v", unresolved)
	}
}

func TestCopyChannelAction(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	msg := CopyChannelAction(Item{ID: "storbeck"})()
	res, ok := msg.(ActionResult)
	if !ok || res.Err != nil {
		t.Fatalf("unexpected result %#v", msg)
	}
	if copied != "https://www.twitch.tv/storbeck" {
		t.Fatalf("unexpected clipboard contents %q", copied)
	}
	if !strings.Contains(res.Info, "storbeck") {
		t.Fatalf("expected info to mention link, got %q", res.Info)
	}
}

func TestCopyChannelActionReportsFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { writeClipboard = orig })

	res := CopyChannelAction(Item{ID: "storbeck"})().(ActionResult)
	if res.Err == nil || !strings.Contains(res.Err.Error(), "no clipboard utility") {
		t.Fatalf("expected wrapped error, got %v", res.Err)
	}
	empty := CopyChannelAction(Item{})().(ActionResult)
	if empty.Err == nil {
		t.Fatalf("expected error for empty item")
	}
}
