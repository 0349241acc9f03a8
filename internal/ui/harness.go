package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultHarnessIdle = 20 * time.Millisecond

// Harness drives the UI model programmatically for integration tests.
// Commands run on their own goroutines and their messages are fed back into
// the model on the caller's goroutine, so blocking commands such as event
// waits and timer ticks never stall a test.
type Harness struct {
	model *Model
	msgs  chan tea.Msg
	idle  time.Duration
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model, msgs: make(chan tea.Msg, 64), idle: defaultHarnessIdle}
}

// Start runs the model's Init command.
func (h *Harness) Start() {
	if h.model == nil {
		return
	}
	h.run(h.model.Init())
	h.Settle()
}

// Send routes a message through the model and processes the messages its
// commands produce until the model goes idle.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.update(msg)
	h.Settle()
}

// Settle processes pending command results until none arrive for the idle
// interval.
func (h *Harness) Settle() {
	for {
		select {
		case msg := <-h.msgs:
			h.update(msg)
		case <-time.After(h.idle):
			return
		}
	}
}

// WaitFor processes command results until cond holds or timeout elapses.
func (h *Harness) WaitFor(timeout time.Duration, cond func(*Model) bool) bool {
	deadline := time.After(timeout)
	for !cond(h.model) {
		select {
		case msg := <-h.msgs:
			h.update(msg)
		case <-deadline:
			return cond(h.model)
		}
	}
	return true
}

func (h *Harness) update(msg tea.Msg) {
	switch m := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, cmd := range m {
			h.run(cmd)
		}
		return
	case tea.QuitMsg:
		h.quit = true
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		if msg := cmd(); msg != nil {
			h.msgs <- msg
		}
	}()
}

// Quit reports whether the model requested the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
