package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/stream-status/internal/card"
	"github.com/atomicstack/stream-status/internal/state"
)

// previewData is the expanded card for the selected row.
type previewData struct {
	target string
	label  string
	status state.Status
	lines  []string
}

func (m *Model) activePreview() *previewData {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	rec := item.Record
	return &previewData{
		target: rec.Name,
		label:  rec.Label(),
		status: rec.Status,
		lines:  card.FormatDetails(card.Details(rec)),
	}
}

func previewTitleText(data *previewData) string {
	label := data.label
	if label == "" {
		label = data.target
	}
	return "Channel: " + label
}

func statusStyleFor(status state.Status) *lipgloss.Style {
	switch status {
	case state.StatusLive:
		return styles.StatusLive
	case state.StatusOffline:
		return styles.StatusOffline
	case state.StatusUnresolved:
		return styles.StatusUnresolved
	default:
		return styles.Loading
	}
}
