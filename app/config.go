package app

import (
	"time"

	"github.com/joefazee/directory-admin/internal/cache"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/media"
	"github.com/joefazee/directory-admin/internal/nexus"
	"github.com/joefazee/directory-admin/internal/remote"
)

type CacheConfig struct {
	Backend   string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	TTL       time.Duration `env:"CACHE_TTL" env-default:"5m"`
	Namespace string        `env:"CACHE_NAMESPACE" env-default:"directory-admin"`
	Redis     cache.RedisOptions
}

type Config struct {
	Remote  remote.Config
	Cache   CacheConfig
	Imaging imaging.Config
	Media   media.Config

	AppHost     string   `env:"APP_HOST" env-default:"localhost"`
	AppPort     string   `env:"APP_PORT" env-default:"8080"`
	Env         string   `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production"`
	CorsOrigins []string `env:"CORS_ORIGINS" env-separator:","`
	LogLevel    string   `env:"LOG_LEVEL" env-default:"info"`
	PhoneRegion string   `env:"PHONE_REGION" env-default:"US"`
	PrefsPath   string   `env:"PREFS_PATH"`
	PublicURL   string   `env:"PUBLIC_URL"`
}

// CacheOptions translates the cache settings for cache.NewCache.
func (c *Config) CacheOptions() cache.Options {
	opts := cache.Options{Backend: c.Cache.Backend, Namespace: c.Cache.Namespace}
	if c.Cache.Backend == cache.RedisBackend {
		redisOpts := c.Cache.Redis
		opts.Redis = &redisOpts
	}
	return opts
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
