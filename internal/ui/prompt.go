package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/card"
	"github.com/atomicstack/stream-status/internal/logging/events"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: reset transient messages and
// run the provided action. The action can return a promptResult to control
// follow-up behaviour.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handleAddPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(card.AddPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		events.Tracker.FormOpen(prompt.Tracked)
		m.startAddForm()
		return promptResult{Info: "Adding channel"}
	})
}

func (m *Model) openAddForm() tea.Cmd {
	tracked := m.tracked.Len()
	return func() tea.Msg {
		return card.AddPrompt{Tracked: tracked}
	}
}
