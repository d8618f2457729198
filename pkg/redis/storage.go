package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of redis.UniversalClient used by Storage.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// Storage keeps snapshot blobs as plain string values under a key prefix.
type Storage struct {
	db     Client
	prefix string
	ttl    time.Duration
}

// StorageOption configures Storage.
type StorageOption func(*Storage)

// WithKeyPrefix sets the prefix prepended to every key.
func WithKeyPrefix(prefix string) StorageOption {
	return func(s *Storage) { s.prefix = prefix }
}

// WithTTL sets an expiration on saved values. Zero means no expiration.
func WithTTL(ttl time.Duration) StorageOption {
	return func(s *Storage) { s.ttl = ttl }
}

// NewStorage wraps a redis client. Any redis.UniversalClient satisfies Client.
func NewStorage(client Client, opts ...StorageOption) *Storage {
	s := &Storage{db: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the value stored under key, or nil and no error when it is absent.
func (s *Storage) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	val, err := s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return val, nil
}

// Save overwrites the value stored under key.
func (s *Storage) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.db.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Del(ctx, s.prefix+key).Err()
}

// Exists reports whether key holds a value.
func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	n, err := s.db.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
