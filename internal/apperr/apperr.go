// Package apperr defines the error type shared by all forge packages
package apperr

import "fmt"

// Error is a user-facing error. Package level values act as error kinds:
// errors derived from one through Fmt or Wrap still match it with errors.Is.
type Error struct {
	Cause   error
	kind    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.kind != nil {
		return e.kind
	}

	return e
}

// Fmt formats the message of the error with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		kind:    e.root(),
	}
}

// Wrap attaches an underlying cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		kind:    e.root(),
	}
}
