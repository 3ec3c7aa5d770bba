package dlerrors

// Kind is the classification tag used to select a taxonomy entry.
// Kinds are string-based so they can be passed through from callers untouched.
type Kind string

const (
	// Client errors.

	// KindNotFound indicates the requested entity or entities do not exist.
	KindNotFound Kind = "NotFound"

	// KindBadRequest indicates the request could not be understood.
	KindBadRequest Kind = "BadRequest"

	// KindUnauthorized indicates the request carried invalid credentials.
	KindUnauthorized Kind = "Unauthorized"

	// KindForbidden indicates the request is forbidden.
	KindForbidden Kind = "Forbidden"

	// KindNotAllowed indicates the request is not allowed.
	KindNotAllowed Kind = "NotAllowed"

	// Server errors.

	// KindNotImplemented indicates the request invoked an unimplemented method.
	KindNotImplemented Kind = "NotImplemented"

	// KindRuntimeError indicates the DataLink failed at runtime.
	KindRuntimeError Kind = "RuntimeError"

	// KindIncorrectContextRoot indicates a bad context root was specified.
	KindIncorrectContextRoot Kind = "IncorrectContextRoot"

	// KindDefault selects the fallback entry for unclassified problems.
	KindDefault Kind = "default"
)

// StatusInternal is the reserved status code for internal and runtime
// failures that have no standard HTTP equivalent.
const StatusInternal = 550

// Entry is a single row of the taxonomy.
type Entry struct {
	// Kind is the tag that selects this entry.
	Kind Kind

	// Label is the canonical error name emitted to callers.
	Label string

	// Description is the fixed human-readable explanation of the error class.
	Description string

	// StatusCode mirrors HTTP semantics.
	StatusCode int
}

// taxonomy lists the non-default entries in table order. It is never mutated.
var taxonomy = [...]Entry{
	{
		Kind:        KindNotFound,
		Label:       "NotFound",
		Description: "The requested entity or entites were not found in the collection",
		StatusCode:  404,
	},
	{
		Kind:        KindBadRequest,
		Label:       "BadRequest",
		Description: "Unable to understand the request",
		StatusCode:  400,
	},
	{
		Kind:        KindUnauthorized,
		Label:       "InvalidCredentials",
		Description: "Invalid credentials.  Please retry your request with correct credentials.",
		StatusCode:  401,
	},
	{
		Kind:        KindForbidden,
		Label:       "Forbidden",
		Description: "The request is forbidden",
		StatusCode:  403,
	},
	{
		Kind:        KindNotAllowed,
		Label:       "NotAllowed",
		Description: "The request is not allowed",
		StatusCode:  405,
	},
	{
		Kind:        KindNotImplemented,
		Label:       "NotImplemented",
		Description: "The request invoked a method that is not implemented",
		StatusCode:  501,
	},
	{
		Kind:        KindRuntimeError,
		Label:       "DataLinkRuntimeError",
		Description: "The datalink had a runtime error.  See debug message for details",
		StatusCode:  StatusInternal,
	},
	{
		Kind:        KindIncorrectContextRoot,
		Label:       "IncorrectContextRoot",
		Description: "Incorrect context root specified. See debug message for details",
		StatusCode:  StatusInternal,
	},
}

var defaultEntry = Entry{
	Kind:        KindDefault,
	Label:       "DataLinkInternalError",
	Description: "The DataLink request experienced a problem. See debug message for details.",
	StatusCode:  StatusInternal,
}

// byKind indexes taxonomy for O(1) lookups. Built once at init and read-only afterwards.
var byKind = func() map[Kind]int {
	idx := make(map[Kind]int, len(taxonomy))
	for i, e := range taxonomy {
		idx[e.Kind] = i
	}
	return idx
}()

// Lookup returns the taxonomy entry for tag.
// Unknown tags, including the empty string, return the default entry.
//
// Example:
//
//	entry := dlerrors.Lookup("Unauthorized")
//	fmt.Println(entry.Label) // InvalidCredentials
func Lookup(tag string) Entry {
	if i, ok := byKind[Kind(tag)]; ok {
		return taxonomy[i]
	}
	return defaultEntry
}

// Known reports whether tag selects a non-default taxonomy entry.
func Known(tag string) bool {
	_, ok := byKind[Kind(tag)]
	return ok
}

// Kinds returns the non-default kinds in table order.
// The returned slice is a fresh copy.
func Kinds() []Kind {
	kinds := make([]Kind, len(taxonomy))
	for i, e := range taxonomy {
		kinds[i] = e.Kind
	}
	return kinds
}

// Default returns the fallback entry used for unknown tags.
func Default() Entry {
	return defaultEntry
}
