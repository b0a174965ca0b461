package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the storage behind the query layer. Values are whole server
// collections keyed by their query key.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Options selects and tunes a backend.
type Options struct {
	Backend string
	// Namespace is prepended to every key on shared backends.
	Namespace string
	Redis     *RedisOptions
}

func NewCache[V any](opts Options) (Cache[V], error) {
	switch opts.Backend {
	case RedisBackend:
		if opts.Redis == nil {
			return nil, errors.New("cache: redis backend requires redis options")
		}
		return NewRedisCache[V](opts.Redis, opts.Namespace), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", opts.Backend)
	}
}
