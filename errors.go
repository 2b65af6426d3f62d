package phonetype

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a phone string was rejected.
type ErrorKind string

const (
	// KindInvalidFormat indicates loose-mode input the format checker
	// rejected.
	KindInvalidFormat ErrorKind = "invalid-format"
	// KindMissingPlusPrefix indicates E.164 input that does not start
	// with '+'.
	KindMissingPlusPrefix ErrorKind = "missing-plus-prefix"
	// KindInvalidCharacter indicates a non-digit in the E.164 digit body.
	KindInvalidCharacter ErrorKind = "invalid-character"
	// KindEmptyNumber indicates E.164 input that is "+" with no digits.
	KindEmptyNumber ErrorKind = "empty-number"
)

// ParseError is the error returned by every construction entry point.
// Malformed user input is never fatal: constructors return a
// *ParseError and nothing in the package panics on bad input.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Input is the string that was rejected.
	Input string

	// Position is the byte offset of the offending character within
	// Input. It is set only for KindInvalidCharacter.
	Position int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindInvalidFormat:
		return fmt.Sprintf("phonetype: %q is not a recognized phone number", e.Input)
	case KindMissingPlusPrefix:
		return fmt.Sprintf("phonetype: %q does not start with '+'", e.Input)
	case KindInvalidCharacter:
		return fmt.Sprintf("phonetype: %q contains a non-digit at position %d", e.Input, e.Position)
	case KindEmptyNumber:
		return fmt.Sprintf("phonetype: %q has no digits after '+'", e.Input)
	default:
		return fmt.Sprintf("phonetype: invalid phone number %q", e.Input)
	}
}

// Kind returns the ErrorKind carried by err, or "" if err is not a
// *ParseError.
func Kind(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
