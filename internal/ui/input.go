package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/stream-status/internal/logging/events"
	uistate "github.com/atomicstack/stream-status/internal/ui/state"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// queryMotions maps caret keys to movements within the search query.
var queryMotions = map[string]uistate.Motion{
	"ctrl+a": uistate.MotionStart,
	"ctrl+e": uistate.MotionEnd,
	"left":   uistate.MotionRuneBack,
	"right":  uistate.MotionRuneForward,
	"alt+b":  uistate.MotionWordBack,
	"alt+f":  uistate.MotionWordForward,
}

// handleTextInput edits the search query. It reports whether the key was
// consumed; keys that change nothing fall through to the key map.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	l := m.list
	before := l.QueryCursorPos()
	keyName := msg.String()
	if motion, ok := queryMotions[keyName]; ok {
		if !l.MoveQueryCursor(motion) {
			return false, nil
		}
		m.noteQueryCursor(before)
		events.Filter.Cursor(l.QueryCursor)
		return true, nil
	}
	switch {
	case keyName == "ctrl+u":
		if l.Query == "" {
			return false, nil
		}
		l.SetQuery("", 0)
		events.Filter.Cleared()
	case keyName == "ctrl+w":
		if !l.DeleteQueryBack(true) {
			return false, nil
		}
		events.Filter.WordBackspace(l.Query)
	case msg.Type == tea.KeyBackspace || msg.Type == tea.KeyCtrlH:
		if !l.DeleteQueryBack(false) {
			return false, nil
		}
		events.Filter.Backspace(l.Query)
	case msg.Type == tea.KeySpace:
		l.InsertQuery(" ")
		events.Filter.Append(l.Query)
	case msg.Type == tea.KeyRunes:
		if !printable(msg) || !l.InsertQuery(string(msg.Runes)) {
			return false, nil
		}
		events.Filter.Append(l.Query)
	default:
		return false, nil
	}
	m.noteQueryCursor(before)
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(l)
	return true, nil
}

func printable(msg tea.KeyMsg) bool {
	if msg.Alt || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// noteQueryCursor restarts the caret blink when the caret moved.
func (m *Model) noteQueryCursor(before int) {
	if before != m.list.QueryCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.list.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
