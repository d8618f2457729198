package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/humanid/pkg/config"
	"github.com/dmitrymomot/humanid/pkg/file"
	"github.com/dmitrymomot/humanid/pkg/httpserver"
	"github.com/dmitrymomot/humanid/pkg/mongo"
	"github.com/dmitrymomot/humanid/pkg/pg"
	"github.com/dmitrymomot/humanid/pkg/redis"
	"github.com/dmitrymomot/humanid/svc/registry"
)

// Backend is an opened snapshot store together with its readiness checks.
type Backend struct {
	Name   string
	Store  registry.Store
	Checks []httpserver.Check

	close func(context.Context) error
}

// Close releases the backend's connections.
func (b *Backend) Close(ctx context.Context) error {
	if b == nil || b.close == nil {
		return nil
	}
	if err := b.close(ctx); err != nil {
		return errors.Join(ErrCloseStore, err)
	}
	return nil
}

// OpenBackend connects the store named by cfg.Store.
func OpenBackend(ctx context.Context, cfg Config, log *slog.Logger) (*Backend, error) {
	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	b.Name = cfg.Store
	return b, nil
}

func openBackend(ctx context.Context, cfg Config, log *slog.Logger) (*Backend, error) {
	switch cfg.Store {
	case StoreMemory:
		return &Backend{Store: registry.NewMemoryStore()}, nil

	case StoreFile:
		store, err := file.NewLocalStorage(cfg.DataDir)
		if err != nil {
			return nil, errors.Join(ErrOpenStore, err)
		}
		return &Backend{
			Store:  store,
			Checks: []httpserver.Check{{Name: StoreFile, Fn: store.Healthcheck}},
		}, nil

	case StoreS3:
		var s3Cfg file.S3Config
		if err := config.Load(&s3Cfg); err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}
		store, err := file.NewS3Storage(ctx, s3Cfg)
		if err != nil {
			return nil, errors.Join(ErrOpenStore, err)
		}
		return &Backend{
			Store:  store,
			Checks: []httpserver.Check{{Name: StoreS3, Fn: store.Healthcheck(cfg.SnapshotKey)}},
		}, nil

	case StoreRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, errors.Join(ErrOpenStore, err)
		}
		return &Backend{
			Store:  redis.NewStorage(client, redis.WithKeyPrefix(redisCfg.KeyPrefix)),
			Checks: []httpserver.Check{{Name: StoreRedis, Fn: redis.Healthcheck(client)}},
			close:  func(context.Context) error { return client.Close() },
		}, nil

	case StorePostgres:
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, errors.Join(ErrOpenStore, err)
		}
		if pgCfg.AutoMigrate {
			if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
				pool.Close()
				return nil, errors.Join(ErrOpenStore, err)
			}
		}
		return &Backend{
			Store:  pg.NewSnapshotStore(pool),
			Checks: []httpserver.Check{{Name: StorePostgres, Fn: pg.Healthcheck(pool)}},
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case StoreMongo:
		var mongoCfg mongo.Config
		if err := config.Load(&mongoCfg); err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}
		client, coll, err := mongo.NewCollection(ctx, mongoCfg)
		if err != nil {
			return nil, errors.Join(ErrOpenStore, err)
		}
		return &Backend{
			Store:  mongo.NewSnapshotStore(coll),
			Checks: []httpserver.Check{{Name: StoreMongo, Fn: mongo.Healthcheck(client)}},
			close:  client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}
