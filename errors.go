package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a constructor or operand input has an
	// unrecognized shape or a string contains characters outside its base.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange is returned when a range operation receives from > to,
	// or a bit-string whose length does not match its window.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidBase is returned when Text is called with a base outside [2, 36].
	ErrInvalidBase = errors.New("invalid base")

	// ErrUnbounded is returned when an exact finite result is requested from
	// a cofinite set and no Infinity sentinel can express it.
	ErrUnbounded = errors.New("unbounded result")
)

// ParseError indicates an input that could not be decoded.
//
// errors.Is(err, ErrInvalidInput) reports true for every ParseError.
// The underlying decoder error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Input  string
	Offset int
	cause  error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid input %q at offset %d: %v", e.Input, e.Offset, e.cause)
	}
	return fmt.Sprintf("invalid input %q at offset %d", e.Input, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidInput.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidInput }

// RangeError indicates an invalid [From, To] window.
type RangeError struct {
	From, To uint
	Reason   string
}

func (e *RangeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid range [%d, %d]: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid range [%d, %d]", e.From, e.To)
}

// Is reports whether target is ErrInvalidRange.
func (e *RangeError) Is(target error) bool { return target == ErrInvalidRange }

// BaseError indicates an unsupported rendering base.
type BaseError struct {
	Base int
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("invalid base: %d (want 2..36)", e.Base)
}

// Is reports whether target is ErrInvalidBase.
func (e *BaseError) Is(target error) bool { return target == ErrInvalidBase }

func checkRange(from, to uint) error {
	if from > to {
		return &RangeError{From: from, To: to, Reason: "from > to"}
	}
	return nil
}
