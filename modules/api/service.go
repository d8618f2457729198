package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/humanid"
	"github.com/dmitrymomot/humanid/handler"
	"github.com/dmitrymomot/humanid/pkg/binder"
	"github.com/dmitrymomot/humanid/svc/registry"
)

const (
	// DefaultMaxBatch caps the number of originals in one batch request.
	DefaultMaxBatch = 1000
	// DefaultListLimit is the page size of GET /ids when no limit is given.
	DefaultListLimit = 100
	// MaxListLimit caps the page size of GET /ids.
	MaxListLimit = 1000
)

// Registry is the identifier registry the service serves.
type Registry interface {
	Generate(ctx context.Context, id humanid.OriginalID) (string, error)
	GenerateBatch(ctx context.Context, ids []humanid.OriginalID) ([]string, error)
	HumanReadable(id humanid.OriginalID) (string, bool)
	Original(h string) (humanid.OriginalID, bool)
	Entries() []humanid.Entry
	Stats() registry.Stats
}

// Service exposes a Registry over JSON.
type Service struct {
	reg          Registry
	errorHandler handler.ErrorHandler[handler.Context]
	maxBatch     int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithErrorHandler sets the handler for binding and registry errors.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithMaxBatch overrides DefaultMaxBatch. Non-positive values are ignored.
func WithMaxBatch(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

func NewService(reg Registry, opts ...ServiceOption) *Service {
	s := &Service{
		reg:          reg,
		errorHandler: handler.NewErrorHandler(nil),
		maxBatch:     DefaultMaxBatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the /ids routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.generate,
		handler.WithBinders[handler.Context, GenerateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, GenerateRequest](s.errorHandler),
	))
	r.Post("/batch", handler.Wrap(s.generateBatch,
		handler.WithBinders[handler.Context, BatchRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, BatchRequest](s.errorHandler),
	))
	r.Post("/resolve", handler.Wrap(s.resolve,
		handler.WithBinders[handler.Context, GenerateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, GenerateRequest](s.errorHandler),
	))
	r.Get("/", handler.Wrap(s.list,
		handler.WithBinders[handler.Context, ListRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ListRequest](s.errorHandler),
	))
	r.Get("/{human}", handler.Wrap(s.lookup,
		handler.WithBinders[handler.Context, LookupRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, LookupRequest](s.errorHandler),
	))

	return r
}

// HandleStats serves registry statistics.
func (s *Service) HandleStats() http.HandlerFunc {
	return handler.Wrap(s.stats,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	)
}

// GenerateRequest carries a single original identifier.
type GenerateRequest struct {
	Original *humanid.OriginalID `json:"original"`
}

func (s *Service) generate(ctx handler.Context, req GenerateRequest) handler.Response {
	if req.Original == nil || req.Original.IsZero() {
		return handler.Error(handler.ErrBadRequest.WithMessage("original is required"))
	}

	h, err := s.reg.Generate(ctx, *req.Original)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(humanid.Entry{Original: *req.Original, HumanReadable: h})
}

// BatchRequest carries originals to register in order.
type BatchRequest struct {
	Originals []humanid.OriginalID `json:"originals"`
}

func (s *Service) generateBatch(ctx handler.Context, req BatchRequest) handler.Response {
	switch {
	case len(req.Originals) == 0:
		return handler.Error(handler.ErrBadRequest.WithMessage("originals must not be empty"))
	case len(req.Originals) > s.maxBatch:
		return handler.Error(handler.ErrBadRequest.WithMessage(
			fmt.Sprintf("at most %d originals per batch", s.maxBatch)))
	}
	for i, id := range req.Originals {
		if id.IsZero() {
			return handler.Error(handler.ErrBadRequest.WithMessage(fmt.Sprintf("originals[%d] is empty", i)))
		}
	}

	hs, err := s.reg.GenerateBatch(ctx, req.Originals)
	if err != nil {
		return handler.Error(err)
	}

	entries := make([]humanid.Entry, len(hs))
	for i, h := range hs {
		entries[i] = humanid.Entry{Original: req.Originals[i], HumanReadable: h}
	}
	return handler.JSON(entries, handler.WithJSONMeta(map[string]any{"count": len(entries)}))
}

func (s *Service) resolve(_ handler.Context, req GenerateRequest) handler.Response {
	if req.Original == nil || req.Original.IsZero() {
		return handler.Error(handler.ErrBadRequest.WithMessage("original is required"))
	}

	h, ok := s.reg.HumanReadable(*req.Original)
	if !ok {
		return handler.Error(handler.ErrNotFound.WithMessage("original is not registered"))
	}
	return handler.JSON(humanid.Entry{Original: *req.Original, HumanReadable: h})
}

// LookupRequest selects a registration by its human-readable identifier.
type LookupRequest struct {
	HumanReadable string `path:"human"`
}

func (s *Service) lookup(_ handler.Context, req LookupRequest) handler.Response {
	id, ok := s.reg.Original(req.HumanReadable)
	if !ok {
		return handler.Error(handler.ErrNotFound.WithMessage("identifier is not registered"))
	}
	return handler.JSON(humanid.Entry{Original: id, HumanReadable: req.HumanReadable})
}

// ListRequest pages through registrations sorted by human-readable identifier.
type ListRequest struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

func (s *Service) list(_ handler.Context, req ListRequest) handler.Response {
	if req.Offset < 0 || req.Limit < 0 {
		return handler.Error(handler.ErrBadRequest.WithMessage("offset and limit must not be negative"))
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	all := s.reg.Entries()
	start := min(req.Offset, len(all))
	end := min(start+limit, len(all))

	return handler.JSON(all[start:end], handler.WithJSONMeta(map[string]any{
		"total":  len(all),
		"offset": start,
		"limit":  limit,
	}))
}

func (s *Service) stats(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(s.reg.Stats())
}
