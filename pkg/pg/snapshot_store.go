package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectSnapshotSQL = `SELECT data FROM humanid_snapshots WHERE key = $1`
	upsertSnapshotSQL = `INSERT INTO humanid_snapshots (key, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	deleteSnapshotSQL = `DELETE FROM humanid_snapshots WHERE key = $1`
)

// Querier is the subset of *pgxpool.Pool used by SnapshotStore.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SnapshotStore keeps snapshot blobs in the humanid_snapshots table.
type SnapshotStore struct {
	db Querier
}

// NewSnapshotStore expects the schema created by Migrate.
func NewSnapshotStore(db Querier) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load returns the stored blob, or nil and no error when no row exists for key.
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var data []byte
	if err := s.db.QueryRow(ctx, selectSnapshotSQL, key).Scan(&data); err != nil {
		if IsNotFoundError(err) {
			return nil, nil
		}
		return nil, errors.Join(ErrFailedToLoadSnapshot, err)
	}
	return data, nil
}

// Save inserts or replaces the blob stored under key.
func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := s.db.Exec(ctx, upsertSnapshotSQL, key, data); err != nil {
		return errors.Join(ErrFailedToSaveSnapshot, err)
	}
	return nil
}

// Delete removes the row for key. A missing row is not an error.
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.db.Exec(ctx, deleteSnapshotSQL, key)
	return err
}
