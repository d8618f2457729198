// Package pg stores identifier snapshots in PostgreSQL using the pgx/v5 driver.
//
// It offers a thin layer around connection pooling, embedded goose migrations,
// health checks and a key/blob SnapshotStore:
//
//   - Config is populated from environment variables via github.com/caarlos0/env.
//   - Connect opens a *pgxpool.Pool, retrying until the database answers.
//   - Migrate applies the embedded migrations, creating the
//     humanid_snapshots(key, data, updated_at) table.
//   - SnapshotStore loads and upserts snapshot blobs by key.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//
//	store := pg.NewSnapshotStore(pool)
//	data, err := store.Load(ctx, "default")
//
// Errors are sentinel values joined with the driver error via errors.Join.
package pg
