// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request struct decoded by binders
// (see package binder) and returns a Response. JSON and JSONError render the
// envelope used by every endpoint:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "..."}}
//
// Errors from binders, rendering or returned as HTTPError values are mapped
// to status codes by Classify; NewErrorHandler additionally logs them.
//
//	h := handler.Wrap(createHandler,
//		handler.WithBinders[handler.Context, CreateRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, CreateRequest](handler.NewErrorHandler(log)),
//	)
package handler
