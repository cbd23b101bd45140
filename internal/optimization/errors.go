package optimization

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying minimization failures. They are wrapped by
// *Error, so callers test for them with errors.Is.
var (
	// ErrMaxIterExceeded reports that an iteration budget was exhausted
	// before the stopping condition was satisfied.
	ErrMaxIterExceeded = errors.New("maximum number of iterations exceeded")

	// ErrInvalidArgument reports invalid configuration detected before any
	// objective evaluation: a negative supplied tolerance, or bounds with
	// lower above upper.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is a minimization error with optional operation and component
// context. It wraps one of the sentinel errors above, or an arbitrary
// underlying error for unclassified failures.
type Error struct {
	// Message describes the error that occurred.
	Message string
	// Op is the operation that caused the error.
	Op string
	// Component is the component where the error occurred.
	Component string
	// Err is the wrapped error, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var prefix string
	switch {
	case e.Component != "" && e.Op != "":
		prefix = e.Component + ": " + e.Op
	case e.Component != "":
		prefix = e.Component
	case e.Op != "":
		prefix = e.Op
	}

	msg := e.Message
	if e.Err != nil {
		if msg != "" {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		} else {
			msg = e.Err.Error()
		}
	}

	if prefix != "" {
		return prefix + ": " + msg
	}
	return msg
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WithOperation adds operation context to the error.
func (e *Error) WithOperation(op string) *Error {
	e.Op = op
	return e
}

// WithComponent adds component context to the error.
func (e *Error) WithComponent(component string) *Error {
	e.Component = component
	return e
}

// NewArgumentError reports invalid configuration with the given message.
// The result matches ErrInvalidArgument under errors.Is.
func NewArgumentError(message string) *Error {
	return &Error{
		Message: message,
		Err:     ErrInvalidArgument,
	}
}

// NewMaxIterError reports iteration-budget exhaustion in the named
// operation. The result matches ErrMaxIterExceeded under errors.Is.
func NewMaxIterError(op string) *Error {
	return &Error{
		Op:  op,
		Err: ErrMaxIterExceeded,
	}
}

// NewError creates a new minimization error with the given message.
func NewError(message string) *Error {
	return &Error{
		Message: message,
	}
}

// WrapError wraps an existing error with additional context. If err is
// nil, WrapError returns nil.
func WrapError(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// AsError finds the first *Error in err's chain. If none exists it
// returns nil and false.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
