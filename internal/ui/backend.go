package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/backend"
)

func waitForBackendEvent(ch <-chan backend.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) waitForEvents() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	ch := m.fetcher.Events()
	if ch == nil {
		return nil
	}
	return waitForBackendEvent(ch)
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	return m.waitForEvents()
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.fetcher = nil
	return nil
}

// applyBackendEvent applies one stage result. A successful profile stage
// immediately queues the stream stage for the same record generation.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Stale {
		return
	}
	if res.FetchStream && m.fetcher != nil {
		m.fetcher.FetchStream(evt.Request)
	}
	if res.Updated {
		m.refreshList()
	}
}
