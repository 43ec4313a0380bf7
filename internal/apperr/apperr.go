// Package apperr defines the error type shared across zenfocus packages
package apperr

import "fmt"

// Error is an application error built from a message template. Errors derived
// from a template with Fmt or Wrap still match it with errors.Is.
type Error struct {
	tpl     *Error
	Cause   error
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

// Is reports whether target is the template this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.origin() == t
}

func (e *Error) origin() *Error {
	if e.tpl != nil {
		return e.tpl
	}

	return e
}

// Fmt formats the template message with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		tpl:     e.origin(),
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
	}
}

// Wrap attaches an underlying cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		tpl:     e.origin(),
		Message: e.Message,
		Cause:   err,
	}
}
