package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Remove     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Add        key.Binding
	Copy       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
		Down:       key.NewBinding(key.WithKeys("down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Home:       key.NewBinding(key.WithKeys("home")),
		End:        key.NewBinding(key.WithKeys("end")),
		MoveUp:     key.NewBinding(key.WithKeys("shift+up", "ctrl+k"), key.WithHelp("shift+↑/↓", "reorder")),
		MoveDown:   key.NewBinding(key.WithKeys("shift+down", "ctrl+j")),
		Remove:     key.NewBinding(key.WithKeys("ctrl+d", "delete"), key.WithHelp("ctrl+d", "remove")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "all/live/offline")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab")),
		Add:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add")),
		Copy:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy link")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/quit")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// footerHelp lists the bindings that carry help text.
func (k keyMap) footerHelp() string {
	bindings := []key.Binding{k.Up, k.MoveUp, k.NextFilter, k.Add, k.Remove, k.Copy, k.Back}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
