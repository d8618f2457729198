// Package redis connects to Redis and stores identifier snapshots in it.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the connection using the supplied configuration.
//   - Storage, a key/value wrapper with Load/Save semantics where a missing key
//     is reported as a nil value rather than an error.
//   - Healthcheck, for readiness probes.
//
// Configuration is described by the Config struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := redis.NewStorage(client, redis.WithKeyPrefix(cfg.KeyPrefix))
//	data, err := store.Load(ctx, "snapshot")
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady, ErrFailedToLoad, ...) are combined with
// the underlying go-redis errors using errors.Join, so both can be matched
// with errors.Is.
package redis
