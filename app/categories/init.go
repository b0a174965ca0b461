package categories

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/internal/deps"
)

const ServiceKey = "categories"

// Build wires the categories service from the container and registers it.
func Build(c *deps.Container) Service {
	if svc, ok := c.GetService(ServiceKey).(Service); ok {
		return svc
	}

	repo := NewRepository(c.Remote)
	c.RegisterRepository(ServiceKey, repo)

	svc := NewService(repo, c.Categories, c.Queries, c.Sanitizer, c.Messages, c.Logger)
	c.RegisterService(ServiceKey, svc)
	return svc
}

// Init initializes the categories module and mounts routes
func Init(r *gin.RouterGroup, c *deps.Container) {
	handler := NewHandler(Build(c))

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", handler.ListCategories)
	categoriesGroup.POST("", handler.CreateCategory)
	categoriesGroup.PUT("/:id", handler.UpdateCategory)
	categoriesGroup.DELETE("/:id", handler.DeleteCategory)
}
