package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultOpTimeout = 50 * time.Millisecond

// RedisOptions tunes the shared client. OpTimeout bounds every call; zero
// means defaultOpTimeout.
type RedisOptions struct {
	Addr            string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password        string        `env:"REDIS_PASSWORD"`
	DB              int           `env:"REDIS_DB" env-default:"0"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"1"`
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" env-default:"2"`
	MinRetryBackoff time.Duration `env:"REDIS_MIN_RETRY_BACKOFF" env-default:"8ms"`
	MaxRetryBackoff time.Duration `env:"REDIS_MAX_RETRY_BACKOFF" env-default:"512ms"`
	OpTimeout       time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"100ms"`
}

// RedisCache stores JSON-encoded collections so several API replicas share
// one catalog snapshot.
type RedisCache[V any] struct {
	client    *redis.Client
	namespace string
	timeout   time.Duration
}

func NewRedisCache[V any](opts *RedisOptions, namespace string) *RedisCache[V] {
	timeout := opts.OpTimeout
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	return &RedisCache[V]{
		client: redis.NewClient(&redis.Options{
			Addr:            opts.Addr,
			Password:        opts.Password,
			DB:              opts.DB,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			MaxRetries:      opts.MaxRetries,
			MinRetryBackoff: opts.MinRetryBackoff,
			MaxRetryBackoff: opts.MaxRetryBackoff,
			ClientName:      "directory-admin",
		}),
		namespace: namespace,
		timeout:   timeout,
	}
}

func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}

// Ping checks the server is reachable.
func (r *RedisCache[V]) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

func (r *RedisCache[V]) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var val V
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return val, ErrCacheMiss
	case err != nil:
		return val, err
	}
	if err := json.Unmarshal(data, &val); err != nil {
		var zero V
		return zero, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.Set(ctx, r.key(key), data, max(ttl, 0)).Err()
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.client.Del(ctx, r.key(key)).Err()
}
