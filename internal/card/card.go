package card

import (
	"strings"

	"github.com/atomicstack/stream-status/internal/format/table"
	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/twitch"
)

// Item represents one selectable row in the list. ID is the tracked name.
type Item struct {
	ID     string
	Label  string
	Record state.Record
}

// Detail is one labelled line of the expanded card.
type Detail struct {
	Label string
	Value string
}

// ActionResult communicates the outcome of executing a card action.
type ActionResult struct {
	Info string
	Err  error
}

// AddPrompt asks the UI to open the add form.
type AddPrompt struct {
	Tracked int
}

// FromRecord builds the list item for rec.
func FromRecord(rec state.Record) Item {
	label := rec.Label()
	if label != rec.Name {
		label = label + " " + rec.Name
	}
	return Item{ID: rec.Name, Label: label, Record: rec}
}

// FromRecords builds list items preserving order.
func FromRecords(records []state.Record) []Item {
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		items = append(items, FromRecord(rec))
	}
	return items
}

// Rows renders items as aligned glyph/name/status columns. glyph may be nil,
// in which case Glyph is used.
func Rows(items []Item, glyph func(state.Record) string) []string {
	if len(items) == 0 {
		return nil
	}
	if glyph == nil {
		glyph = Glyph
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rec := item.Record
		rows = append(rows, []string{glyph(rec), rec.Label(), rec.StatusText})
	}
	return table.Format(rows, nil)
}

// Glyph returns the plain status marker for rec.
func Glyph(rec state.Record) string {
	switch rec.Status {
	case state.StatusLive:
		return "●"
	case state.StatusOffline:
		return "○"
	case state.StatusUnresolved:
		return "?"
	default:
		return "…"
	}
}

// Details returns the lines shown for the selected card.
func Details(rec state.Record) []Detail {
	details := []Detail{
		{Label: "Name", Value: rec.Name},
		{Label: "Status", Value: rec.StatusText},
	}
	if rec.IconURL != "" {
		details = append(details, Detail{Label: "Icon", Value: rec.IconURL})
	}
	if rec.Status != state.StatusUnresolved {
		details = append(details, Detail{Label: "Channel", Value: twitch.ChannelURL(rec.Name)})
	}
	return details
}

// FormatDetails renders details as aligned "label  value" lines.
func FormatDetails(details []Detail) []string {
	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{d.Label, strings.TrimSpace(d.Value)})
	}
	return table.Format(rows, nil)
}
