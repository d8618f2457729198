package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/humanid/handler"
	"github.com/dmitrymomot/humanid/pkg/httpserver"
	"github.com/dmitrymomot/humanid/pkg/logger"
	"github.com/dmitrymomot/humanid/pkg/requestid"
)

// RouterOptions configures the API router.
type RouterOptions struct {
	IDs    *Service
	Logger *slog.Logger

	// Readiness checks, each bounded by ReadyTimeout.
	Checks       []httpserver.Check
	ReadyTimeout time.Duration
}

// Router creates the HTTP API:
//
//	POST /ids            register one original
//	POST /ids/batch      register originals in order
//	POST /ids/resolve    look up an original without registering it
//	GET  /ids            page through registrations
//	GET  /ids/{human}    look up a human-readable identifier
//	GET  /stats          registry statistics
//	GET  /health/live    liveness probe
//	GET  /health/ready   readiness probe
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, req)
	})

	r.Route("/health", func(health chi.Router) {
		health.Get("/live", httpserver.LivenessHandler())
		health.Get("/ready", httpserver.ReadinessHandler(log, opts.ReadyTimeout, opts.Checks...))
	})

	if opts.IDs != nil {
		r.Mount("/ids", opts.IDs.Handle())
		r.Get("/stats", opts.IDs.HandleStats())
	}

	return r
}
