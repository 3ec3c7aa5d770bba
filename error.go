package dlerrors

import "fmt"

// Error is the normalized error produced by Classify.
// It is immutable once created and is never retained by this package.
// Getters are safe on a nil *Error and report zero values (KindDefault for Kind).
type Error struct {
	kind        Kind
	label       string
	description string
	statusCode  int
	debug       any
	stack       string
	cause       error
}

// Error returns the string representation of the error.
// Format: "[Label] description" or "[Label] description: debug" when the
// debug payload is a non-empty string.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if s, ok := e.debug.(string); ok && s != "" {
		return fmt.Sprintf("[%s] %s: %s", e.label, e.description, s)
	}
	return fmt.Sprintf("[%s] %s", e.label, e.description)
}

// Kind returns the taxonomy kind the error was classified under.
// Unknown tags are reported as KindDefault.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindDefault
	}
	return e.kind
}

// Label returns the canonical error name emitted to callers.
func (e *Error) Label() string {
	if e == nil {
		return ""
	}
	return e.label
}

// Description returns the fixed description of the error class.
func (e *Error) Description() string {
	if e == nil {
		return ""
	}
	return e.description
}

// StatusCode returns the HTTP-style status code.
func (e *Error) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.statusCode
}

// Debug returns the debug payload derived from the cause.
func (e *Error) Debug() any {
	if e == nil {
		return nil
	}
	return e.debug
}

// Stack returns the stack trace carried by the cause, or "" if none.
func (e *Error) Stack() string {
	if e == nil {
		return ""
	}
	return e.stack
}

// HasStack reports whether the cause carried a stack trace.
func (e *Error) HasStack() bool {
	if e == nil {
		return false
	}
	return e.stack != ""
}

// Unwrap returns the original cause when it was an error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}
