package dlerrors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var normalized *dlerrors.Error
//	if dlerrors.As(err, &normalized) {
//	    status := normalized.StatusCode()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the Kind from an error.
// Returns KindDefault if the error is nil or not normalized.
func GetKind(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) && e != nil {
		return e.kind
	}
	return KindDefault
}

// GetStatusCode extracts the status code from an error.
// Returns 0 if err is nil and StatusInternal if it is not normalized,
// matching what ToJSON would report for it.
func GetStatusCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if stderrors.As(err, &e) && e != nil {
		return e.statusCode
	}
	return StatusInternal
}
