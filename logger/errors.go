package logger

import (
	"fmt"
)

// EmitError is returned when a line could not be written to the active
// destination.
type EmitError struct {
	Destination Destination
	Err         error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("logthis: write to %s: %v", e.Destination, e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives write failures from the level entry points, which
// have no error result. Log returns the error instead.
type ErrorHandler func(err error)

// PanicOnError is the default ErrorHandler. A destination that cannot be
// written would hide every later line, so the failure is raised at the
// call that hit it.
func PanicOnError(err error) {
	panic(err)
}

// IgnoreErrors drops lines that cannot be written.
func IgnoreErrors(error) {}
