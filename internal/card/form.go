package card

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/logging/events"
	"github.com/atomicstack/stream-status/internal/state"
)

// Validator reports whether a name may be added.
type Validator interface {
	Validate(name string) error
}

// AddForm collects a username to track.
type AddForm struct {
	input     textinput.Model
	validator Validator
	err       string
}

func NewAddForm(v Validator) *AddForm {
	ti := textinput.New()
	ti.Placeholder = "username"
	ti.CharLimit = 64
	ti.Prompt = "> "
	ti.Focus()
	return &AddForm{input: ti, validator: v}
}

func (f *AddForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *AddForm) InputView() string { return f.input.View() }
func (f *AddForm) Error() string     { return f.err }
func (f *AddForm) Title() string     { return "Track a channel" }
func (f *AddForm) Help() string      { return "Press Enter to add. Esc to close." }

// Reset clears the input and any error.
func (f *AddForm) Reset() {
	f.input.SetValue("")
	f.input.CursorStart()
	f.err = ""
}

// Update feeds msg to the form. submitted is set when Enter produced a valid
// name, which is returned in name; cancelled is set on Esc.
func (f *AddForm) Update(msg tea.Msg) (cmd tea.Cmd, name string, submitted bool, cancelled bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, "", false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.Tracker.FormClose(events.TrackerReasonEscape)
			f.Reset()
			return nil, "", false, true
		case tea.KeyEnter:
			value := f.Value()
			if err := f.validator.Validate(value); err != nil {
				f.err = errorMessage(err)
				events.Tracker.Reject(value, err)
				return nil, "", false, false
			}
			events.Tracker.FormClose(events.TrackerReasonSubmit)
			f.Reset()
			return nil, value, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, "", false, false
}

func errorMessage(err error) string {
	var verr *state.ValidationError
	if errors.As(err, &verr) {
		return verr.Message()
	}
	return err.Error()
}
