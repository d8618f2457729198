// Package binder decodes HTTP request data into typed request structs.
//
// Each constructor returns a func(r *http.Request, v any) error that plugs
// into handler.WithBinders:
//
//   - JSON(opts...): strict application/json body decoding with a size limit
//   - Query(): URL query parameters via `query` struct tags
//   - Path(extractor): router path parameters via `path` struct tags
//
// Binders can be combined; they run in order against the same struct.
//
//	type ResolveRequest struct {
//		HumanReadable string `json:"human_readable"`
//		Type          string `query:"type"`
//	}
//
// Failures wrap one of the package errors (ErrFailedToParseJSON,
// ErrRequestTooLarge, ErrUnsupportedMediaType, ErrMissingContentType,
// ErrFailedToParseQuery, ErrFailedToParsePath) so callers can map them to
// HTTP status codes with errors.Is.
package binder
