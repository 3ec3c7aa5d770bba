package dlerrors

import (
	stderrors "errors"
	"fmt"
)

// Classify normalizes cause under the taxonomy entry selected by tag.
// Unknown tags fall back to the default entry. Classify never fails and
// never panics; every input maps to a defined result.
//
// cause may be nil, an error, or any plain value. Errors contribute their
// debug payload and stack trace (see Debugger, Messager, Namer, Stacker);
// plain values become the debug payload as is.
//
// Example:
//
//	user, err := store.Find(ctx, id)
//	if err != nil {
//	    return dlerrors.Classify("NotFound", err)
//	}
func Classify(tag string, cause any) *Error {
	entry := Lookup(tag)

	e := &Error{
		kind:        entry.Kind,
		label:       entry.Label,
		description: entry.Description,
		statusCode:  entry.StatusCode,
		debug:       deriveDebug(cause),
		stack:       deriveStack(cause),
	}
	if err, ok := cause.(error); ok {
		e.cause = err
	}
	return e
}

// Classifyf normalizes a formatted message under the entry selected by tag.
// The formatted string becomes the debug payload.
//
// Example:
//
//	return dlerrors.Classifyf("BadRequest", "unsupported query operator %q", op)
func Classifyf(tag string, format string, args ...any) *Error {
	return Classify(tag, fmt.Sprintf(format, args...))
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - an *Error anywhere in the chain is returned as is (same pointer)
//   - anything else is classified under the default entry
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if stderrors.As(err, &e) && e != nil {
		return e
	}

	return Classify(string(KindDefault), err)
}
