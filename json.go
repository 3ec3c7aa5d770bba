package dlerrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorResponse is the wire shape of a normalized error.
// Consumers must treat it as a mapping from field name to value.
//
// StatusCode is always emitted; Stack is emitted only when the cause
// carried one. The original cause is never serialized.
type ErrorResponse struct {
	// Error is the canonical label, e.g. "InvalidCredentials".
	Error string `json:"error"`

	// Description is the fixed description of the error class.
	Description string `json:"description"`

	// Debug is the best-effort detail extracted from the cause.
	Debug any `json:"debug"`

	// StatusCode mirrors HTTP semantics; 550 marks internal failures.
	StatusCode int `json:"statusCode"`

	// Stack is the cause's stack trace, omitted when absent.
	Stack string `json:"stack,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Errors that are not already normalized are classified under the default entry.
//
// Example:
//
//	func writeError(w http.ResponseWriter, err error) {
//	    response := dlerrors.ToJSON(err)
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(response.StatusCode)
//	    json.NewEncoder(w).Encode(response)
//	}
func ToJSON(err error) *ErrorResponse {
	e := Ensure(err)
	if e == nil {
		return nil
	}
	return e.response()
}

func (e *Error) response() *ErrorResponse {
	return &ErrorResponse{
		Error:       e.label,
		Description: e.description,
		Debug:       e.debug,
		StatusCode:  e.statusCode,
		Stack:       e.stack,
	}
}

// MarshalJSON implements json.Marshaler for Error.
//
// A debug payload that cannot be encoded (channels, funcs, infinities, or a
// MarshalJSON that fails or panics) is replaced by its fmt string form so the
// error itself always serializes. Cyclic payloads are replaced by their type name.
//
// Example:
//
//	err := dlerrors.Classify("NotFound", "no such collection")
//	data, _ := json.Marshal(err)
//	// {"error":"NotFound","description":"...","debug":"no such collection","statusCode":404}
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}

	response := e.response()
	data, err := safeMarshal(response)
	if err == nil {
		return data, nil
	}

	response.Debug = fallbackDebug(e.debug, err)
	data, err = safeMarshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal error response: %w", err)
	}
	return data, nil
}

// safeMarshal is json.Marshal that reports a panicking encoder as an error.
func safeMarshal(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("panic while marshaling: %v", r)
		}
	}()
	return json.Marshal(v)
}

// fallbackDebug renders a debug payload that failed to encode.
// Cycles never reach fmt, which would recurse without bound.
func fallbackDebug(debug any, cause error) string {
	typeName := fmt.Sprintf("%T", debug)

	var unsupported *json.UnsupportedValueError
	if stderrors.As(cause, &unsupported) && strings.HasPrefix(unsupported.Str, "encountered a cycle") {
		return typeName
	}

	if s := safeString(func() string { return fmt.Sprintf("%v", debug) }); s != "" {
		return s
	}
	return typeName
}
