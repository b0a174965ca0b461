package deps

import (
	"context"
	"errors"
	"fmt"

	"github.com/joefazee/directory-admin/app"
	"github.com/joefazee/directory-admin/internal/cache"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/internal/media"
	"github.com/joefazee/directory-admin/internal/query"
	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/internal/sanitizer"
	"github.com/joefazee/directory-admin/models"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Container holds all shared dependencies
type Container struct {
	Config    *app.Config
	Remote    *remote.Client
	Queries   *query.Registry
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Messages  *i18n.Localizer

	Categories    *query.Store[[]models.MainCategory]
	SubCategories *query.Store[[]models.SubCategory]
	Providers     *query.Store[[]models.ServiceProvider]

	Compressor imaging.Compressor
	Uploader   media.Uploader

	closers []func() error

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

// Build creates every shared dependency from cfg. Messages are rendered in
// lang. The caller owns the container and must Close it.
func Build(cfg *app.Config, l logger.Logger, lang i18n.Language) (*Container, error) {
	if l == nil {
		l = logger.NewNullLogger()
	}

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return nil, err
	}

	uploader, err := media.New(cfg.Media, l)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:       cfg,
		Remote:       remote.New(cfg.Remote, l),
		Queries:      query.NewRegistry(l),
		Sanitizer:    sanitizer.NewHTMLStripper(),
		Logger:       l,
		Messages:     catalog.For(lang),
		Compressor:   imaging.NewJPEGCompressor(cfg.Imaging),
		Uploader:     uploader,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}

	opts := cfg.CacheOptions()

	categories, err := cache.NewCache[[]models.MainCategory](opts)
	if err != nil {
		return nil, fmt.Errorf("deps: categories cache: %w", err)
	}
	c.closers = append(c.closers, categories.Close)
	if p, ok := categories.(pinger); ok {
		// reads fall back to the remote API, so an unreachable cache is not fatal
		if err := p.Ping(context.Background()); err != nil {
			l.Error(err, logger.Fields{"stage": "cache", "backend": opts.Backend})
		}
	}

	subCategories, err := cache.NewCache[[]models.SubCategory](opts)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("deps: sub-categories cache: %w", err)
	}
	c.closers = append(c.closers, subCategories.Close)

	providers, err := cache.NewCache[[]models.ServiceProvider](opts)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("deps: providers cache: %w", err)
	}
	c.closers = append(c.closers, providers.Close)

	ttl := cfg.Cache.TTL
	c.Categories = query.NewStore(c.Queries, query.EntityCategories, categories, ttl)
	c.SubCategories = query.NewStore(c.Queries, query.EntitySubCategories, subCategories, ttl)
	c.Providers = query.NewStore(c.Queries, query.EntityServiceProviders, providers, ttl)

	return c, nil
}

// Close releases the cache backends. It is safe to call more than once.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
