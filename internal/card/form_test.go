package card

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stream-status/internal/state"
)

func typeInto(f *AddForm, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestAddFormRejectsInvalidLength(t *testing.T) {
	tracked := state.NewCollection()
	form := NewAddForm(tracked)
	typeInto(form, "abc")

	_, name, submitted, cancelled := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted || cancelled || name != "" {
		t.Fatalf("expected rejection, got name=%q submitted=%v cancelled=%v", name, submitted, cancelled)
	}
	if form.Error() != "Username must be between 4 and 25 characters" {
		t.Fatalf("unexpected error %q", form.Error())
	}
	if form.Value() != "abc" {
		t.Fatalf("expected input preserved, got %q", form.Value())
	}
}

func TestAddFormRejectsDuplicate(t *testing.T) {
	tracked := state.NewCollection()
	if _, err := tracked.Add("storbeck"); err != nil {
		t.Fatalf("add: %v", err)
	}
	form := NewAddForm(tracked)
	typeInto(form, "storbeck")
	form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if form.Error() != "Username is already being tracked!" {
		t.Fatalf("unexpected error %q", form.Error())
	}
}

func TestAddFormSubmitClearsInput(t *testing.T) {
	form := NewAddForm(state.NewCollection())
	typeInto(form, "noobs2ninjas")
	_, name, submitted, _ := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !submitted || name != "noobs2ninjas" {
		t.Fatalf("expected submission, got name=%q submitted=%v", name, submitted)
	}
	if form.Value() != "" || form.Error() != "" {
		t.Fatalf("expected form reset, got value=%q err=%q", form.Value(), form.Error())
	}
}

func TestAddFormEscapeClearsInputAndError(t *testing.T) {
	form := NewAddForm(state.NewCollection())
	typeInto(form, "ab")
	form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if form.Error() == "" {
		t.Fatalf("expected error before escape")
	}
	_, _, submitted, cancelled := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if submitted || !cancelled {
		t.Fatalf("expected cancel, got submitted=%v cancelled=%v", submitted, cancelled)
	}
	if form.Value() != "" || form.Error() != "" {
		t.Fatalf("expected cleared form, got value=%q err=%q", form.Value(), form.Error())
	}
}

func TestAddFormCtrlUClearsInput(t *testing.T) {
	form := NewAddForm(state.NewCollection())
	typeInto(form, "vgbootcamp")
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if form.Value() != "" {
		t.Fatalf("expected input cleared, got %q", form.Value())
	}
}
