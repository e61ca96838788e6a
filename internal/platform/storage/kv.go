package storage

import (
	"context"
	"errors"
)

// ErrNotFound reports a missing key regardless of the backing driver.
var ErrNotFound = errors.New("kv: key not found")

// KV persists named JSON blobs. Each console store owns exactly one key
// and serialises its full state into it, so the interface stays small.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

// Config describes the high level driver selection parameters.
type Config struct {
	Driver string
	SQLite *SQLiteConfig
	Redis  *RedisConfig
}

// SQLiteConfig locates the database file.
type SQLiteConfig struct {
	Dir string
}

// RedisConfig captures connection options.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// IsNotFound reports whether err indicates a missing key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
