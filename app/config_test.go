package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/directory-admin/internal/cache"
	"github.com/joefazee/directory-admin/internal/nexus"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.NoError(t, err)

	assert.Equal(t, "https://e-commerce-three-sigma-49.vercel.app/api", cfg.Remote.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, cache.MemoryBackend, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1200, cfg.Imaging.MaxDimension)
	assert.Equal(t, 419430, cfg.Imaging.MaxBytes)
	assert.Equal(t, "offers", cfg.Media.Folder)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)

	opts := cfg.CacheOptions()
	assert.Equal(t, cache.MemoryBackend, opts.Backend)
	assert.Nil(t, opts.Redis)
}

func TestLoadConfigRedisBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://admin.example.com")

	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.NoError(t, err)

	opts := cfg.CacheOptions()
	require.NotNil(t, opts.Redis)
	assert.Equal(t, "cache.internal:6380", opts.Redis.Addr)
	assert.Equal(t, 100*time.Millisecond, opts.Redis.OpTimeout)
	assert.Equal(t, "directory-admin", opts.Namespace)
	assert.Equal(t, []string{"http://localhost:5173", "https://admin.example.com"}, cfg.CorsOrigins)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")
	_, err := LoadConfig(nexus.WithOnlyEnvironment())
	assert.Error(t, err)
}
