package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/backend"
	"github.com/atomicstack/stream-status/internal/card"
	"github.com/atomicstack/stream-status/internal/logging"
	"github.com/atomicstack/stream-status/internal/logging/events"
	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/ui/command"
)

// track adds name to the collection, shows its row, and queues the first
// fetch stage. The collection is updated before any network work starts.
func (m *Model) track(name string) error {
	rec, err := m.tracked.Add(name)
	if err != nil {
		events.Tracker.Reject(name, err)
		return err
	}
	events.Tracker.Add(rec.Name, rec.Token)
	m.refreshList()
	if m.fetcher != nil {
		m.fetcher.FetchProfile(backend.Request{Name: rec.Name, Token: rec.Token})
	}
	return nil
}

// untrack removes name. Late fetch results for it are discarded by the
// dispatcher's liveness check.
func (m *Model) untrack(name string) bool {
	if !m.tracked.Remove(name) {
		return false
	}
	events.Tracker.Remove(name)
	m.refreshList()
	return true
}

// visible reports whether rec is currently shown: it passes the status filter
// and the search query.
func (m *Model) visible(rec state.Record) bool {
	if !m.filter.Match(rec) {
		return false
	}
	if m.list.Query == "" {
		return true
	}
	return m.list.Contains(rec.Name)
}

// refreshList re-projects the collection onto the list level.
func (m *Model) refreshList() {
	records := m.tracked.Visible(m.filter.Match)
	m.list.UpdateItems(card.FromRecords(records))
	m.syncViewport(m.list)
}

func (m *Model) removeSelected() {
	item, ok := m.list.Current()
	if !ok {
		return
	}
	m.untrack(item.ID)
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Stopped tracking %s", item.Record.Label()))
}

func (m *Model) moveSelected(up bool) {
	item, ok := m.list.Current()
	if !ok {
		return
	}
	var moved bool
	direction := "down"
	if up {
		direction = "up"
		moved = m.tracked.MoveUp(item.ID, m.visible)
	} else {
		moved = m.tracked.MoveDown(item.ID, m.visible)
	}
	events.Tracker.Move(item.ID, direction, moved)
	if !moved {
		return
	}
	m.refreshList()
	m.list.Select(item.ID)
	m.syncViewport(m.list)
}

func (m *Model) cycleFilter(next bool) {
	if next {
		m.filter = m.filter.Next()
	} else {
		m.filter = m.filter.Prev()
	}
	events.Filter.Predicate(m.filter.String())
	m.refreshList()
}

func (m *Model) copySelected() tea.Cmd {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	events.UI.Enter(item.ID, m.filter.String())
	return m.bus.Execute(command.Request{ID: "copy", Label: item.ID, Handler: card.CopyChannelAction, Item: item})
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(card.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}

func errorText(err error) string {
	var verr *state.ValidationError
	if errors.As(err, &verr) {
		return verr.Message()
	}
	return err.Error()
}
