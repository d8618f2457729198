package app

import (
	"github.com/dmitrymomot/humanid/pkg/httpserver"
	"github.com/dmitrymomot/humanid/svc/registry"
)

// Snapshot backends selectable with HUMANID_STORE.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreS3       = "s3"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Config is the application configuration. Backend settings (REDIS_*, PG_*,
// MONGODB_*, S3_*) are loaded separately, only for the selected store.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"` // AppEnv selects the logging preset.
	AppName  string `env:"APP_NAME" envDefault:"humanid"`    // AppName tags every log record.
	LogLevel string `env:"LOG_LEVEL"`                        // LogLevel overrides the preset level.

	Store       string `env:"HUMANID_STORE" envDefault:"file"`                        // Store is one of memory, file, s3, redis, postgres, mongo.
	SnapshotKey string `env:"HUMANID_SNAPSHOT_KEY" envDefault:"humanid.snapshot.json"` // SnapshotKey names the snapshot within the store.
	DataDir     string `env:"HUMANID_DATA_DIR" envDefault:"./data"`                   // DataDir is the base directory of the file store.
	Dictionary  string `env:"HUMANID_DICTIONARY"`                                     // Dictionary is a word list path; empty uses the embedded list.
	Seed        int64  `env:"HUMANID_SEED"`                                           // Seed applies to new registries only.
	Autosave    bool   `env:"HUMANID_AUTOSAVE" envDefault:"true"`                     // Autosave persists after every new registration.

	HTTP httpserver.Config
}

func (c Config) registryOptions() []registry.Option {
	opts := []registry.Option{registry.WithKey(c.SnapshotKey)}
	if c.Seed != 0 {
		opts = append(opts, registry.WithSeed(c.Seed))
	}
	if !c.Autosave {
		opts = append(opts, registry.WithoutAutosave())
	}
	return opts
}
