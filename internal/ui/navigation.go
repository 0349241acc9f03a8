package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/logging/events"
)

// handleEscapeKey clears an active search first and quits otherwise.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.list.Query != "" {
		before := m.list.QueryCursorPos()
		m.list.SetQuery("", 0)
		m.noteQueryCursor(before)
		events.Filter.Cleared()
		m.syncViewport(m.list)
		m.errMsg = ""
		m.forceClearInfo()
		return nil
	}
	return tea.Quit
}

// stepCursor moves the selection one row, wrapping at either end.
func (m *Model) stepCursor(delta int) {
	if m.list.Step(delta) {
		m.noteCursor()
	}
	m.syncViewport(m.list)
}

func (m *Model) moveCursorPageUp() {
	if moved := m.list.MoveCursorPageUp(m.maxVisibleItems()); moved {
		m.noteCursor()
	}
	m.syncViewport(m.list)
}

func (m *Model) moveCursorPageDown() {
	if moved := m.list.MoveCursorPageDown(m.maxVisibleItems()); moved {
		m.noteCursor()
	}
	m.syncViewport(m.list)
}

func (m *Model) moveCursorHome() {
	if moved := m.list.MoveCursorHome(); moved {
		m.noteCursor()
	}
	m.syncViewport(m.list)
}

func (m *Model) moveCursorEnd() {
	if moved := m.list.MoveCursorEnd(); moved {
		m.noteCursor()
	}
	m.syncViewport(m.list)
}

func (m *Model) noteCursor() {
	name := ""
	if item, ok := m.list.Current(); ok {
		name = item.ID
	}
	events.UI.Cursor(m.list.Cursor, name)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeList {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copySelected()
	case key.Matches(keyMsg, m.keys.Add):
		return m.openAddForm()
	case key.Matches(keyMsg, m.keys.Remove):
		m.removeSelected()
	case key.Matches(keyMsg, m.keys.MoveUp):
		m.moveSelected(true)
	case key.Matches(keyMsg, m.keys.MoveDown):
		m.moveSelected(false)
	case key.Matches(keyMsg, m.keys.NextFilter):
		m.cycleFilter(true)
	case key.Matches(keyMsg, m.keys.PrevFilter):
		m.cycleFilter(false)
	case key.Matches(keyMsg, m.keys.Up):
		m.stepCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.stepCursor(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorEnd()
	}
	return nil
}
