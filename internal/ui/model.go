package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/stream-status/internal/backend"
	"github.com/atomicstack/stream-status/internal/card"
	"github.com/atomicstack/stream-status/internal/data/dispatcher"
	"github.com/atomicstack/stream-status/internal/logging/events"
	"github.com/atomicstack/stream-status/internal/state"
	"github.com/atomicstack/stream-status/internal/theme"
	"github.com/atomicstack/stream-status/internal/ui/command"
	uistate "github.com/atomicstack/stream-status/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeList Mode = iota
	ModeAddForm
)

const listTitle = "tracked channels"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Fetcher issues the two fetch stages for a record and publishes their
// results. backend.Loader is the production implementation.
type Fetcher interface {
	FetchProfile(backend.Request)
	FetchStream(backend.Request)
	Events() <-chan backend.Event
}

// Model implements the Bubble Tea model for the stream status list.
type Model struct {
	list       *level
	filter     state.Filter
	tracked    *state.Collection
	dispatcher *dispatcher.Dispatcher
	fetcher    Fetcher

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	addForm           *card.AddForm
	spinner           spinner.Model
	spinning          bool
	filterCursor      cursor.Model
	filterCursorDirty bool
	keys              keyMap

	handlers map[reflect.Type]msgHandler

	bus  *command.Bus
	mode Mode
}

// NewModel initialises the UI state and starts tracking names. Names that
// fail validation are skipped and reported in the status line.
func NewModel(width, height int, showFooter bool, verbose bool, fetcher Fetcher, names []string) *Model {
	tracked := state.NewCollection()
	m := &Model{
		list:       uistate.NewLevel("tracked", listTitle, nil),
		filter:     state.FilterAll,
		tracked:    tracked,
		dispatcher: dispatcher.New(tracked),
		fetcher:    fetcher,
		bus:        command.New(),
		keys:       defaultKeyMap(),
		showFooter: showFooter,
		verbose:    verbose,
		mode:       ModeList,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	// Rows carry their own status styling, so the spinner renders bare frames.
	m.spinner = spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(lipgloss.NewStyle()))
	m.seed(names)
	m.registerHandlers()
	return m
}

func (m *Model) seed(names []string) {
	events.App.Seed(names)
	for _, name := range names {
		if err := m.track(name); err != nil {
			m.errMsg = errorText(err)
		}
	}
	m.list.Cursor = 0
	m.syncViewport(m.list)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.waitForEvents(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.startSpinner(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeAddForm:
		return m.handleAddForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(card.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(card.AddPrompt{}):    m.handleAddPromptMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Filter returns the active status filter.
func (m *Model) Filter() state.Filter {
	return m.filter
}

// Records returns the tracked records in display order.
func (m *Model) Records() []state.Record {
	return m.tracked.Records()
}

// VisibleNames returns the names of the rows currently shown.
func (m *Model) VisibleNames() []string {
	names := make([]string, 0, len(m.list.Items))
	for _, item := range m.list.Items {
		names = append(names, item.ID)
	}
	return names
}

// Pending reports how many records are still loading.
func (m *Model) Pending() int {
	n := 0
	for _, rec := range m.tracked.Records() {
		if rec.Status == state.StatusLoading {
			n++
		}
	}
	return n
}
