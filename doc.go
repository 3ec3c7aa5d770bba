// Package dlerrors normalizes internal failures into the DataLink error shape.
//
// Given a classification tag and a cause (an error, a plain value, or nothing),
// Classify produces an *Error with a stable vocabulary: a label, a fixed
// description, an HTTP-style status code, a debug payload, and an optional
// stack trace. A service boundary can therefore always emit the same
// documented error shape, whatever failed internally.
//
// # Quick Start
//
//	err := dlerrors.Classify("Unauthorized", tokenErr)
//	data, _ := json.Marshal(err)
//	// {"error":"InvalidCredentials","description":"Invalid credentials.  Please
//	//  retry your request with correct credentials.","debug":"bad token","statusCode":401}
//
// # Taxonomy
//
// The taxonomy is a fixed table keyed by Kind:
//
//   - Client errors: NotFound (404), BadRequest (400), Unauthorized (401),
//     Forbidden (403), NotAllowed (405)
//   - Server errors: NotImplemented (501), RuntimeError (550),
//     IncorrectContextRoot (550)
//   - default (550) for every tag not in the table
//
// Status code 550 (StatusInternal) marks internal and runtime failures that
// have no standard HTTP equivalent. Unknown tags are not an error: they select
// the default entry.
//
// # Debug Payload
//
// For error causes, the first present, non-empty value wins:
//
//  1. Debug() any (Debugger)
//  2. Message() string (Messager), then Error()
//  3. Name() string (Namer)
//  4. String() string (fmt.Stringer)
//  5. an empty structure
//
// Plain values are used verbatim. A nil cause (including a typed nil such as a
// nil pointer, map or slice), or a falsy scalar ("", false, zero), yields an
// empty structure. A stack trace is copied only from error causes
// implementing Stacker.
//
// # Totality
//
// Classify has no error outcomes and never panics, even when the cause's own
// accessors do. It is the terminal translator for every other failure, so it
// must not fail itself.
//
// # Concurrency
//
// The taxonomy is read-only after package initialization. Classify keeps no
// state between calls and is safe for concurrent use without locking.
//
// # Standard Library Compatibility
//
// *Error implements error, json.Marshaler and slog.LogValuer. When the cause
// was an error it is preserved for errors.Is and errors.As through Unwrap,
// but it is never serialized.
package dlerrors
