package dlerrors

import (
	"fmt"
	"math"
	"reflect"
)

// Debugger is implemented by causes that carry an explicit debug payload.
// A non-empty payload takes priority over every other debug source.
type Debugger interface {
	Debug() any
}

// Messager is implemented by causes whose human-readable message differs
// from their Error() string.
type Messager interface {
	Message() string
}

// Namer is implemented by causes that expose a name for their error class.
type Namer interface {
	Name() string
}

// Stacker is implemented by causes that carry a stack trace.
type Stacker interface {
	Stack() string
}

// deriveDebug extracts the debug payload from cause.
//
// For error causes the first present, non-empty source wins: Debug(),
// Message(), Error(), Name(), String(). Anything else is used verbatim
// when present. Absent payloads become an empty structure.
func deriveDebug(cause any) any {
	err, ok := cause.(error)
	if !ok {
		if present(cause) {
			return cause
		}
		return emptyDebug()
	}

	if d, ok := err.(Debugger); ok {
		if v := safeAny(func() any { return d.Debug() }); present(v) {
			return v
		}
	}
	if m, ok := err.(Messager); ok {
		if s := safeString(func() string { return m.Message() }); s != "" {
			return s
		}
	}
	if s := safeString(func() string { return err.Error() }); s != "" {
		return s
	}
	if n, ok := err.(Namer); ok {
		if s := safeString(func() string { return n.Name() }); s != "" {
			return s
		}
	}
	if st, ok := err.(fmt.Stringer); ok {
		if s := safeString(func() string { return st.String() }); s != "" {
			return s
		}
	}
	return emptyDebug()
}

// deriveStack returns the stack trace carried by an error cause, or "".
func deriveStack(cause any) string {
	err, ok := cause.(error)
	if !ok {
		return ""
	}
	s, ok := err.(Stacker)
	if !ok {
		return ""
	}
	return safeString(func() string { return s.Stack() })
}

// present mirrors a truthiness test: nil (typed or not), "", false, zero and
// NaN are absent.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case uintptr:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return !isNil(v)
	}
}

// isNil reports whether v is a typed nil such as (*T)(nil) or map[K]V(nil).
func isNil(v any) bool {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func emptyDebug() map[string]any {
	return map[string]any{}
}

// safeString calls f and reports "" if it panics.
// Accessors on causes are foreign code and must not escape Classify.
func safeString(f func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return f()
}

// safeAny calls f and reports nil if it panics.
func safeAny(f func() any) (v any) {
	defer func() {
		if recover() != nil {
			v = nil
		}
	}()
	return f()
}
