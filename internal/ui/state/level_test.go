package state

import (
	"testing"

	"github.com/atomicstack/stream-status/internal/card"
	tracked "github.com/atomicstack/stream-status/internal/state"
)

func testItems(names ...string) []card.Item {
	items := make([]card.Item, len(names))
	for i, name := range names {
		items[i] = card.FromRecord(tracked.Record{Name: name, DisplayName: name})
	}
	return items
}

func newTestLevel(names ...string) *Level {
	return NewLevel("test", "Test", testItems(names...))
}

func currentID(l *Level) string {
	item, _ := l.Current()
	return item.ID
}

func TestNewLevelStartsAtFirstItem(t *testing.T) {
	l := newTestLevel("vgbootcamp", "storbeck")
	if l.Cursor != 0 || currentID(l) != "vgbootcamp" {
		t.Fatalf("expected cursor on vgbootcamp, got %d/%q", l.Cursor, currentID(l))
	}
	if _, ok := newTestLevel().Current(); ok {
		t.Fatalf("expected no current item on empty level")
	}
}

func TestUpdateItemsKeepsSelectedItem(t *testing.T) {
	l := newTestLevel("vgbootcamp", "storbeck", "habathcx")
	l.Cursor = 1

	l.UpdateItems(testItems("storbeck", "vgbootcamp", "habathcx"))
	if l.Cursor != 0 {
		t.Fatalf("expected cursor to follow storbeck to 0, got %d", l.Cursor)
	}

	l.UpdateItems(testItems("vgbootcamp"))
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
}

func TestUpdateItemsClampsWhenSelectionRemoved(t *testing.T) {
	l := newTestLevel("vgbootcamp", "storbeck", "habathcx")
	l.Cursor = 2
	l.UpdateItems(testItems("vgbootcamp", "storbeck"))
	if l.Cursor != 1 {
		t.Fatalf("expected cursor clamped to last item, got %d", l.Cursor)
	}
	l.UpdateItems(nil)
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current item on empty level")
	}
}

func TestUpdateItemsReappliesSearch(t *testing.T) {
	l := newTestLevel("vgbootcamp", "storbeck")
	l.SetQuery("stor", 4)
	l.UpdateItems(testItems("vgbootcamp", "storbeck", "noobs2ninjas"))
	if len(l.Items) != 1 || l.Items[0].ID != "storbeck" {
		t.Fatalf("expected search to narrow refreshed items, got %#v", l.Items)
	}
	if !l.Contains("storbeck") || l.Contains("vgbootcamp") {
		t.Fatalf("unexpected visibility")
	}
	if len(l.Full) != 3 {
		t.Fatalf("expected full list kept, got %d", len(l.Full))
	}
}

func TestSelect(t *testing.T) {
	l := newTestLevel("vgbootcamp", "storbeck")
	if !l.Select("storbeck") || l.Cursor != 1 {
		t.Fatalf("expected cursor on storbeck, got %d", l.Cursor)
	}
	if l.Select("missing") {
		t.Fatalf("expected select of missing id to fail")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor unchanged, got %d", l.Cursor)
	}
}
