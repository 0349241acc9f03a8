package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/backend"
	"github.com/atomicstack/stream-status/internal/twitch"
	"github.com/atomicstack/stream-status/internal/ui"
)

// DefaultNames is the channel list tracked when none is configured.
var DefaultNames = []string{
	"vgbootcamp", "ESL_SC2", "OgamingSC2", "cretetion", "freecodecamp",
	"storbeck", "habathcx", "RobotCaleb", "noobs2ninjas",
}

// DefaultThrottle spaces outbound API requests.
const DefaultThrottle = 100 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	APIBase    string
	Timeout    time.Duration
	Throttle   time.Duration
	Names      []string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := twitch.NewClient(cfg.APIBase, cfg.Timeout)
	loader := backend.NewLoader(client, cfg.Timeout, cfg.Throttle)
	defer loader.Stop()
	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, loader, cfg.Names)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
