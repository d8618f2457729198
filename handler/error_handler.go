package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/humanid/pkg/binder"
	"github.com/dmitrymomot/humanid/pkg/logger"
)

// Classify maps err to an HTTPError. Binding failures become 400 or 415;
// HTTPError values pass through; everything else is a 500.
func Classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.WithMessage(err.Error())
	case errors.Is(err, binder.ErrRequestTooLarge):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParsePath),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return ErrBadRequest.WithMessage(err.Error())
	default:
		return ErrInternalServerError
	}
}

// NewErrorHandler logs the failed request (4xx at warn level, 5xx at error)
// and writes a JSON error envelope. Request-scoped attributes such as the
// request ID come from the logger's context extractors.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		httpErr := Classify(err)
		r := ctx.Request()

		level := slog.LevelError
		if httpErr.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			slog.Int("status_code", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(httpErr).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
