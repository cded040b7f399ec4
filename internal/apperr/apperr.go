// Package apperr defines the error type used throughout Lumii
package apperr

import "fmt"

// Error is an application error with an optional underlying cause.
type Error struct {
	Message string
	Err     error
	base    *Error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match for the error itself or the sentinel it was derived
// from via Fmt or Wrap, so errors.Is works on formatted copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.base == t
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt fills in the message placeholders and returns a copy of the error.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Err:     e.Err,
		base:    e.root(),
	}
}

// Wrap attaches an underlying cause and returns a copy of the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		base:    e.root(),
	}
}
