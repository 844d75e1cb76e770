package generator

import (
	"errors"
	"fmt"
)

// ErrNoCharacterClassSelected is returned when every character class is disabled,
// which would leave the alphabet empty.
var ErrNoCharacterClassSelected = errors.New("no character class selected")

// Error represents a password generation failure caused by the supplied options
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// RandomSourceError represents a failure reading from the randomness source
type RandomSourceError struct {
	Message string
	Cause   error
}

func (e *RandomSourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("random source error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("random source error: %s", e.Message)
}

func (e *RandomSourceError) Unwrap() error {
	return e.Cause
}

func noClassError() error {
	return &Error{
		Message: "select at least one of uppercase, lowercase, numbers or symbols",
		Cause:   ErrNoCharacterClassSelected,
	}
}
