package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value   V
	expires time.Time // zero = never
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// MemoryCache is the single-process backend. The catalog holds a few dozen
// keys at most, so one map behind one mutex is enough; a janitor drops
// expired entries that are never read again.
type MemoryCache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time

	stopOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithJanitor[V](time.Second)
}

func NewMemoryCacheWithJanitor[V any](interval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go mc.janitor(interval)
	return mc
}

// Stop ends the janitor and waits for it. Safe to call more than once.
func (mc *MemoryCache[V]) Stop() {
	mc.stopOnce.Do(func() { close(mc.quit) })
	<-mc.done
}

func (mc *MemoryCache[V]) Close() error {
	mc.Stop()
	return nil
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	e, ok := mc.entries[key]
	if ok && e.expired(mc.now()) {
		delete(mc.entries, key)
		ok = false
	}
	if !ok {
		var zero V
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	e := entry[V]{value: value}
	if ttl > 0 {
		e.expires = mc.now().Add(ttl)
	}
	mc.entries[key] = e
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.entries, key)
	mc.mu.Unlock()
	return nil
}

// Len counts stored entries, including expired ones not yet swept.
func (mc *MemoryCache[V]) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.entries)
}

func (mc *MemoryCache[V]) sweep() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	now := mc.now()
	for k, e := range mc.entries {
		if e.expired(now) {
			delete(mc.entries, k)
		}
	}
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	defer close(mc.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.quit:
			return
		}
	}
}
