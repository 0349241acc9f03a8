package state

import "github.com/atomicstack/stream-status/internal/card"

// Level is the visible list: Full carries the rows admitted by the status
// filter and Items narrows Full by the search query.
type Level struct {
	ID             string
	Title          string
	Items          []card.Item
	Full           []card.Item
	Query          string
	QueryCursor    int
	Cursor         int
	ViewportOffset int

	saved selection
}

// NewLevel constructs a Level using the provided items.
func NewLevel(id, title string, items []card.Item) *Level {
	l := &Level{ID: id, Title: title}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is among the visible items.
func (l *Level) Contains(id string) bool {
	return l.IndexOf(id) >= 0
}

// Current returns the item under the cursor.
func (l *Level) Current() (card.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return card.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level items. The cursor follows the previously
// selected item when it is still visible.
func (l *Level) UpdateItems(items []card.Item) {
	prevOffset := l.ViewportOffset
	selected := ""
	if item, ok := l.Current(); ok {
		selected = item.ID
	}
	l.Full = CloneItems(items)
	l.narrow()
	if idx := l.IndexOf(selected); idx >= 0 {
		l.Cursor = idx
	}
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// Select moves the cursor to id if it is visible.
func (l *Level) Select(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}
