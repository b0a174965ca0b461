package providers

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/internal/deps"
)

const ServiceKey = "service-providers"

// Build wires the providers service from the container and registers it.
func Build(c *deps.Container) Service {
	if svc, ok := c.GetService(ServiceKey).(Service); ok {
		return svc
	}

	repo := NewRepository(c.Remote)
	c.RegisterRepository(ServiceKey, repo)

	cfg := Config{
		PhoneRegion:  c.Config.PhoneRegion,
		ImageWorkers: c.Config.Imaging.Workers,
	}
	schema := NewSchema(c.Messages, c.Sanitizer)
	svc := NewService(repo, c.Providers, c.Queries, schema, c.Compressor, c.Uploader, cfg, c.Logger)
	c.RegisterService(ServiceKey, svc)
	return svc
}

// Init initializes the providers module and mounts routes
func Init(r *gin.RouterGroup, c *deps.Container) {
	handler := NewHandler(Build(c))

	providersGroup := r.Group("/service-providers/:subCategoryId")
	providersGroup.GET("", handler.ListProviders)
	providersGroup.POST("", handler.CreateProvider)
	providersGroup.PUT("/:id", handler.UpdateProvider)
	providersGroup.DELETE("/:id", handler.DeleteProvider)

	r.POST("/media/offer-images", handler.UploadOfferImage)
}
