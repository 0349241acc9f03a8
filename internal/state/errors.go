package state

import (
	"errors"
	"fmt"
)

const (
	MinNameLength = 4
	MaxNameLength = 25
)

var (
	ErrDuplicateIdentity = errors.New("username is already being tracked")
	ErrInvalidLength     = fmt.Errorf("username must be between %d and %d characters", MinNameLength, MaxNameLength)
)

// ValidationKind classifies a rejected add request.
type ValidationKind int

const (
	DuplicateIdentity ValidationKind = iota
	InvalidLength
)

// ValidationError describes why a name could not be tracked.
type ValidationError struct {
	Kind ValidationKind
	Name string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.sentinel(), e.Name)
}

func (e *ValidationError) Unwrap() error {
	return e.sentinel()
}

// Message returns the text shown next to the add input.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case DuplicateIdentity:
		return "Username is already being tracked!"
	default:
		return fmt.Sprintf("Username must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
}

func (e *ValidationError) sentinel() error {
	if e.Kind == DuplicateIdentity {
		return ErrDuplicateIdentity
	}
	return ErrInvalidLength
}
