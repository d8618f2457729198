// Package config loads typed configuration from environment variables.
//
// Fields are described with `github.com/caarlos0/env/v11` struct tags. Before the
// first parse the package loads a `.env` file from the working directory with
// `github.com/joho/godotenv` when one exists; variables already present in the
// environment take precedence.
//
// Every configuration type is parsed at most once per process. Later calls to
// Load for the same type return the cached copy, so a backend config can be
// requested from several places without re-reading the environment.
//
// # Usage
//
//	type RedisConfig struct {
//	    URL string `env:"REDIS_URL,required"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Failed parses are not cached; fixing the environment and calling Load again
// succeeds. Reset clears the cache, which is mostly useful in tests.
package config
