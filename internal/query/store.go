package query

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/joefazee/directory-admin/internal/cache"
)

// Fetcher loads a collection from the server.
type Fetcher[V any] func(ctx context.Context) (V, error)

// Store caches one entity's collections, one entry per scope.
type Store[V any] struct {
	entity  string
	reg     *Registry
	backend cache.Cache[V]
	ttl     time.Duration
	group   singleflight.Group

	mu   sync.Mutex
	last map[string]V // latest resolved value per scope, kept across invalidation
}

func NewStore[V any](reg *Registry, entity string, backend cache.Cache[V], ttl time.Duration) *Store[V] {
	s := &Store[V]{
		entity:  entity,
		reg:     reg,
		backend: backend,
		ttl:     ttl,
		last:    make(map[string]V),
	}
	reg.register(entity, s)
	return s
}

func (s *Store[V]) key(scope string) Key {
	return Key{Entity: s.entity, Scope: scope}
}

func (s *Store[V]) evict(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// Peek returns the cached collection for scope without fetching.
func (s *Store[V]) Peek(ctx context.Context, scope string) (V, bool) {
	v, err := s.backend.Get(ctx, s.key(scope).String())
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.reg.log.Error(err, map[string]interface{}{"key": s.key(scope).String()})
		}
		var zero V
		return zero, false
	}
	return v, true
}

// Last returns the most recent collection this store resolved for scope. An
// invalidation drops the cached entry but not this value, so it stays
// available while a refetch is pending.
func (s *Store[V]) Last(ctx context.Context, scope string) (V, bool) {
	if v, ok := s.Peek(ctx, scope); ok {
		return v, true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.last[scope]
	return v, ok
}

func (s *Store[V]) remember(scope string, v V) {
	s.mu.Lock()
	s.last[scope] = v
	s.mu.Unlock()
}

// Fetch returns the cached collection for scope, loading it with fetch on a
// miss. Concurrent misses at the same generation share one call. The result
// is cached only when no invalidation happened while it was in flight; the
// caller still receives it either way.
func (s *Store[V]) Fetch(ctx context.Context, scope string, fetch Fetcher[V]) (V, error) {
	if v, ok := s.Peek(ctx, scope); ok {
		return v, nil
	}

	k := s.key(scope)
	gen := s.reg.Generation(k)
	flight := k.String() + "#" + strconv.FormatUint(gen, 10)

	res, err, _ := s.group.Do(flight, func() (interface{}, error) {
		v, err := fetch(ctx)
		if err != nil {
			return v, err
		}
		committed, cerr := s.reg.commit(k, gen, func() error {
			return s.backend.Set(ctx, k.String(), v, s.ttl)
		})
		if cerr != nil {
			s.reg.log.Error(cerr, map[string]interface{}{"key": k.String()})
		}
		if !committed {
			s.reg.log.Debug("stale fetch discarded", map[string]interface{}{"key": k.String(), "generation": gen})
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v := res.(V)
	s.remember(scope, v)
	return v, nil
}
