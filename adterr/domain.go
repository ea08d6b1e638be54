package adterr

import (
	"fmt"

	"github.com/pkg/errors"

	"martianoff/adt/go_interop"
)

const errBlankMessage = "errors must always contain an error message"

// Error is the plain failure value carried by a Result. Its message is never blank.
type Error struct {
	Message string
}

// New creates an Error. A blank message is a contract violation.
func New(message string) *Error {
	if IsBlank(message) {
		panic(NewContractError(errBlankMessage))
	}
	return &Error{Message: message}
}

// Newf creates an Error from a format string.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	return e.Message
}

// CaughtPanicError is the failure produced when a guarded function panics.
type CaughtPanicError struct {
	Message string
	Value   any
	cause   error
}

// Caught converts a recovered panic value into a CaughtPanicError. The stack
// is captured at the call site, so call it from the deferred recover.
func Caught(r any) *CaughtPanicError {
	err := go_interop.PanicToError(r)
	msg := err.Error()
	if IsBlank(msg) {
		msg = fmt.Sprintf("panic: %#v", r)
	}
	return &CaughtPanicError{
		Message: msg,
		Value:   r,
		cause:   errors.WithStack(err),
	}
}

func (e *CaughtPanicError) Error() string {
	return e.Message
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *CaughtPanicError) Cause() error {
	return errors.Cause(e.cause)
}

func (e *CaughtPanicError) Unwrap() error {
	return e.Cause()
}

// Format prints the recovery stack with %+v.
func (e *CaughtPanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", e.cause)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Message)
	case 'q':
		fmt.Fprintf(s, "%q", e.Message)
	}
}
