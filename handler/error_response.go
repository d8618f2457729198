package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render returns the wrapped error so Wrap hands it to the ErrorHandler.
func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error defers err to the configured ErrorHandler, which classifies, logs
// and renders it. Use JSONError to render an error directly instead.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
