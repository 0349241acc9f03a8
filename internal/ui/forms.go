package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/card"
)

func (m *Model) handleAddForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.addForm == nil {
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		// Only keys belong to the form; fetch results and ticks keep flowing.
		return false, nil
	}
	cmd, name, submitted, cancelled := m.addForm.Update(msg)
	if cancelled {
		m.closeAddForm()
		return true, cmd
	}
	if submitted {
		m.closeAddForm()
		if err := m.track(name); err != nil {
			m.errMsg = errorText(err)
			return true, cmd
		}
		m.list.Select(name)
		m.syncViewport(m.list)
		return true, tea.Batch(cmd, m.startSpinner())
	}
	return true, cmd
}

func (m *Model) startAddForm() {
	if m.addForm == nil {
		m.addForm = card.NewAddForm(m.tracked)
	}
	m.addForm.Reset()
	m.mode = ModeAddForm
}

func (m *Model) closeAddForm() {
	m.mode = ModeList
}

func (m *Model) viewAddFormWithHeader(header string) string {
	lines := []string{}
	if header != "" {
		lines = append(lines, header)
	}
	title := m.addForm.Title()
	if styles.FormTitle != nil {
		title = styles.FormTitle.Render(title)
	}
	lines = append(lines, title, "", m.addForm.InputView())
	if err := m.addForm.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", m.addForm.Help())
	return strings.Join(lines, "\n")
}
