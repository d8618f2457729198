package binder

import (
	"net/http"
)

// Query creates a query parameter binder.
//
// Fields are matched by the `query:"name"` tag; `query:"-"` skips the field.
// Slices accept repeated parameters or comma-separated values and pointers
// mark optional parameters.
//
//	type ListRequest struct {
//		Offset int  `query:"offset"`
//		Limit  *int `query:"limit"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
