package card

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/twitch"
)

var writeClipboard = clipboard.WriteAll

// CopyChannelAction copies the channel link for item to the system clipboard.
func CopyChannelAction(item Item) tea.Cmd {
	if item.ID == "" {
		return func() tea.Msg { return ActionResult{Err: fmt.Errorf("no channel selected")} }
	}
	link := twitch.ChannelURL(item.ID)
	return func() tea.Msg {
		if err := writeClipboard(link); err != nil {
			return ActionResult{Err: fmt.Errorf("copy %s: %w", link, err)}
		}
		return ActionResult{Info: fmt.Sprintf("Copied %s", link)}
	}
}
