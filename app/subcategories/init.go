package subcategories

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/internal/deps"
)

const ServiceKey = "sub-categories"

// Build wires the sub-categories service from the container and registers it.
func Build(c *deps.Container) Service {
	if svc, ok := c.GetService(ServiceKey).(Service); ok {
		return svc
	}

	repo := NewRepository(c.Remote)
	c.RegisterRepository(ServiceKey, repo)

	svc := NewService(repo, c.SubCategories, c.Categories, c.Queries, c.Sanitizer, c.Messages, c.Logger)
	c.RegisterService(ServiceKey, svc)
	return svc
}

// Init mounts the sub-category routes.
func Init(r *gin.RouterGroup, c *deps.Container) {
	handler := NewHandler(Build(c))

	group := r.Group("/sub-categories/:mainCategoryId")
	group.GET("", handler.ListSubCategories)
	group.POST("", handler.CreateSubCategory)
	group.PUT("/:id", handler.UpdateSubCategory)
	group.DELETE("/:id", handler.DeleteSubCategory)
}
