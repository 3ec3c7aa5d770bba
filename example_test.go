package dlerrors_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/jmgilman/go/dlerrors"
)

func ExampleClassify() {
	err := dlerrors.Classify("NotFound", "collection books")
	fmt.Println(err.Label(), err.StatusCode(), err.Debug())
	// Output: NotFound 404 collection books
}

func ExampleClassify_unknownTag() {
	err := dlerrors.Classify("TotallyUnknownTag", map[string]any{"code": 7})
	data, _ := json.Marshal(err)
	fmt.Println(string(data))
	// Output: {"error":"DataLinkInternalError","description":"The DataLink request experienced a problem. See debug message for details.","debug":{"code":7},"statusCode":550}
}

func ExampleClassifyf() {
	err := dlerrors.Classifyf("BadRequest", "limit must be positive, got %d", -1)
	fmt.Println(err.Debug())
	// Output: limit must be positive, got -1
}

func ExampleLookup() {
	entry := dlerrors.Lookup("Unauthorized")
	fmt.Println(entry.Label, entry.StatusCode)
	// Output: InvalidCredentials 401
}

func ExampleEnsure() {
	err := dlerrors.Ensure(fmt.Errorf("connection reset"))
	fmt.Println(err.Label(), err.Debug())
	// Output: DataLinkInternalError connection reset
}

func ExampleToJSON() {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		response := dlerrors.ToJSON(dlerrors.Classify("Forbidden", "read only collection"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(response.StatusCode)
		_ = json.NewEncoder(w).Encode(response)
	}

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	fmt.Println(rec.Code)
	fmt.Print(rec.Body.String())
	// Output:
	// 403
	// {"error":"Forbidden","description":"The request is forbidden","debug":"read only collection","statusCode":403}
}
