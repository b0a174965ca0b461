package query

import (
	"context"
	"errors"
	"sync"

	"github.com/joefazee/directory-admin/internal/logger"
)

type evicter interface {
	evict(ctx context.Context, key string) error
}

// Registry owns the generation counter of every key and the stores that
// hold them. Invalidation and commits are serialized through mu, so a fetch
// that started before an invalidation can never land after it.
type Registry struct {
	mu     sync.Mutex
	gens   map[string]uint64
	stores map[string]evicter
	log    logger.Logger
}

func NewRegistry(l logger.Logger) *Registry {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Registry{
		gens:   make(map[string]uint64),
		stores: make(map[string]evicter),
		log:    l,
	}
}

func (r *Registry) register(entity string, s evicter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[entity] = s
}

// Generation reports how many times k has been invalidated.
func (r *Registry) Generation(k Key) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gens[k.String()]
}

// Invalidate marks each key stale and drops its cached value. Keys of
// entities without a store only get their generation bumped.
func (r *Registry) Invalidate(ctx context.Context, keys ...Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, k := range keys {
		name := k.String()
		r.gens[name]++
		if s, ok := r.stores[k.Entity]; ok {
			if err := s.evict(ctx, name); err != nil {
				errs = append(errs, err)
			}
		}
		r.log.Info("query cache invalidated", map[string]interface{}{"key": name})
	}
	return errors.Join(errs...)
}

// commit runs store only while k is still at generation gen.
func (r *Registry) commit(k Key, gen uint64, store func() error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gens[k.String()] != gen {
		return false, nil
	}
	return true, store()
}
