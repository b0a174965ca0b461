package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/directory-admin/models"
)

func TestNewCacheMemory(t *testing.T) {
	c, err := NewCache[[]models.MainCategory](Options{Backend: MemoryBackend})
	require.NoError(t, err)
	defer c.Close()

	m, ok := c.(*MemoryCache[[]models.MainCategory])
	assert.True(t, ok, "expected *MemoryCache")
	ctx := context.Background()

	want := []models.MainCategory{{ID: "c1", EnglishName: "Cleaning", ArabicName: "تنظيف"}}
	assert.NoError(t, m.Set(ctx, "categories", want, 0))
	v, err := m.Get(ctx, "categories")
	assert.NoError(t, err)
	assert.Equal(t, want, v)

	_, err = m.Get(ctx, "sub-categories/c1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewCacheDefaultsToMemory(t *testing.T) {
	c, err := NewCache[string](Options{})
	require.NoError(t, err)
	defer c.Close()
	_, ok := c.(*MemoryCache[string])
	assert.True(t, ok)
}

func TestNewCacheRedis(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	c, err := NewCache[[]models.SubCategory](Options{
		Backend:   RedisBackend,
		Namespace: "directory-admin",
		Redis: &RedisOptions{
			Addr:            s.Addr(),
			PoolSize:        5,
			MinIdleConns:    1,
			MinRetryBackoff: time.Millisecond,
			MaxRetryBackoff: time.Millisecond,
			OpTimeout:       100 * time.Millisecond,
		},
	})
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	want := []models.SubCategory{{ID: "s1", EnglishName: "Plumbing", ArabicName: "سباكة"}}
	assert.NoError(t, c.Set(ctx, "sub-categories/c1", want, 0))
	assert.True(t, s.Exists("directory-admin:sub-categories/c1"))

	v, err := c.Get(ctx, "sub-categories/c1")
	assert.NoError(t, err)
	assert.Equal(t, want, v)
}

func TestNewCacheErrors(t *testing.T) {
	_, err := NewCache[int](Options{Backend: "something-else"})
	assert.ErrorContains(t, err, "unknown backend")

	_, err = NewCache[int](Options{Backend: RedisBackend})
	assert.ErrorContains(t, err, "requires redis options")
}
