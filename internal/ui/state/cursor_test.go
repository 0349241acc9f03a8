package state

import "testing"

func TestStepWraps(t *testing.T) {
	l := newTestLevel("vgbootcamp", "storbeck", "habathcx")
	if !l.Step(-1) || currentID(l) != "habathcx" {
		t.Fatalf("expected wrap to last row, got %q", currentID(l))
	}
	if !l.Step(1) || currentID(l) != "vgbootcamp" {
		t.Fatalf("expected wrap to first row, got %q", currentID(l))
	}
	if newTestLevel("storbeck").Step(1) {
		t.Fatalf("expected single row not to move")
	}
	if newTestLevel().Step(1) {
		t.Fatalf("expected empty level not to move")
	}
}

func TestHomeEndAndPaging(t *testing.T) {
	l := newTestLevel("a001", "b002", "c003", "d004", "e005")
	if !l.MoveCursorEnd() || l.Cursor != 4 {
		t.Fatalf("expected end at 4, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected second end to be a no-op")
	}
	if !l.MoveCursorPageUp(2) || l.Cursor != 2 {
		t.Fatalf("expected page up to 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected oversized page to stop at 0, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(3) || l.Cursor != 3 {
		t.Fatalf("expected page down to 3, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(0) || l.Cursor != 4 {
		t.Fatalf("expected whole-list page to reach the end, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected home at 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 3
	if empty.MoveCursorHome() || empty.Cursor != 0 {
		t.Fatalf("expected empty level reset to 0, got %d", empty.Cursor)
	}
}

func TestEnsureCursorVisibleScrolls(t *testing.T) {
	l := newTestLevel("a001", "b002", "c003", "d004", "e005")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset to follow cursor up, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 9
	l.Cursor = 4
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected stale offset clamped to 2, got %d", l.ViewportOffset)
	}

	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected unlimited rows to reset offset, got %d", l.ViewportOffset)
	}

	l.Cursor = 9
	l.EnsureCursorVisible(2)
	if l.Cursor != 4 {
		t.Fatalf("expected cursor clamped into range, got %d", l.Cursor)
	}
}
