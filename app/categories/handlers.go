package categories

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/app/api"
)

// Handler handles HTTP requests for categories
type Handler struct {
	service Service
}

// NewHandler creates a new category handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListCategories godoc
// @Summary List main categories
// @Description Get every main category, optionally filtered by a case-insensitive search over both names
// @Tags categories
// @Produce json
// @Param search query string false "Search text"
// @Success 200 {object} api.Response{data=[]CategoryResponse}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		api.HandleError(c, err, "Category")
		return
	}

	api.ListResponse(c, "Categories retrieved successfully", categories)
}

// CreateCategory godoc
// @Summary Create a main category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category names"
// @Success 201 {object} api.Response{data=CategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		api.HandleError(c, err, "Category")
		return
	}

	api.CreatedResponse(c, "Category created successfully", category)
}

// UpdateCategory godoc
// @Summary Rename a main category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body CategoryRequest true "Category names"
// @Success 200 {object} api.Response{data=CategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		api.HandleError(c, err, "Category")
		return
	}

	api.UpdatedResponse(c, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary Delete a main category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		api.HandleError(c, err, "Category")
		return
	}

	api.DeletedResponse(c, "Category deleted successfully")
}
