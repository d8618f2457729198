package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/humanid/handler"
	"github.com/dmitrymomot/humanid/modules/api"
	"github.com/dmitrymomot/humanid/pkg/config"
	"github.com/dmitrymomot/humanid/pkg/httpserver"
	"github.com/dmitrymomot/humanid/pkg/logger"
	"github.com/dmitrymomot/humanid/pkg/requestid"
	"github.com/dmitrymomot/humanid/pkg/wordlist"
	"github.com/dmitrymomot/humanid/svc/registry"
)

// App wires configuration, logging, the snapshot backend and the registry.
type App struct {
	Config   Config
	Log      *slog.Logger
	Registry *registry.Registry
	Backend  *Backend
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}
	return cfg, nil
}

// NewLogger builds the application logger. Records go to stderr so command
// output on stdout stays machine-readable.
func NewLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractor(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

// LoadDictionary returns the word list at cfg.Dictionary, or the embedded
// list when no path is configured.
func LoadDictionary(cfg Config) (*wordlist.Dictionary, error) {
	if cfg.Dictionary == "" {
		return wordlist.Default(), nil
	}
	dict, err := wordlist.Load(cfg.Dictionary)
	if err != nil {
		return nil, errors.Join(ErrLoadDictionary, err)
	}
	return dict, nil
}

// New opens the configured backend and restores the registry from it.
func New(ctx context.Context, cfg Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = logger.Discard()
	}

	dict, err := LoadDictionary(cfg)
	if err != nil {
		return nil, err
	}

	backend, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	log = log.With(logger.Store(backend.Name))

	opts := append(cfg.registryOptions(), registry.WithLogger(log))
	reg, err := registry.Open(ctx, backend.Store, dict, opts...)
	if err != nil {
		return nil, errors.Join(err, backend.Close(ctx))
	}

	return &App{Config: cfg, Log: log, Registry: reg, Backend: backend}, nil
}

// Close flushes unsaved registrations and closes the backend.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.Registry.Close(ctx), a.Backend.Close(ctx))
}

// Handler returns the HTTP API for the registry.
func (a *App) Handler() http.Handler {
	svc := api.NewService(a.Registry, api.WithErrorHandler(handler.NewErrorHandler(a.Log)))
	return api.Router(api.RouterOptions{
		IDs:          svc,
		Logger:       a.Log,
		Checks:       a.Backend.Checks,
		ReadyTimeout: a.Config.HTTP.ReadyTimeout,
	})
}

// Serve runs the HTTP API until ctx is canceled.
func (a *App) Serve(ctx context.Context, opts ...httpserver.Option) error {
	opts = append([]httpserver.Option{httpserver.WithLogger(a.Log)}, opts...)
	srv := httpserver.NewFromConfig(a.Config.HTTP, opts...)
	return srv.Run(ctx, a.Handler())
}
