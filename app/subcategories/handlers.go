package subcategories

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/app/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListSubCategories godoc
// @Summary List sub-categories of a main category
// @Tags sub-categories
// @Produce json
// @Param mainCategoryId path string true "Main category ID"
// @Param search query string false "Search text"
// @Success 200 {object} api.Response{data=[]SubCategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sub-categories/{mainCategoryId} [get]
func (h *Handler) ListSubCategories(c *gin.Context) {
	subs, err := h.service.ListSubCategories(c.Request.Context(), c.Param("mainCategoryId"), c.Query("search"))
	if err != nil {
		api.HandleError(c, err, "Main category")
		return
	}

	api.ListResponse(c, "Sub-categories retrieved successfully", subs)
}

// CreateSubCategory godoc
// @Summary Create a sub-category
// @Description The main category must have been listed through this service first
// @Tags sub-categories
// @Accept json
// @Produce json
// @Param mainCategoryId path string true "Main category ID"
// @Param subCategory body categories.CategoryRequest true "Sub-category names"
// @Success 201 {object} api.Response{data=SubCategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sub-categories/{mainCategoryId} [post]
func (h *Handler) CreateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	sub, err := h.service.CreateSubCategory(c.Request.Context(), c.Param("mainCategoryId"), req)
	if err != nil {
		api.HandleError(c, err, "Sub-category")
		return
	}

	api.CreatedResponse(c, "Sub-category created successfully", sub)
}

// UpdateSubCategory godoc
// @Summary Rename a sub-category
// @Tags sub-categories
// @Accept json
// @Produce json
// @Param mainCategoryId path string true "Main category ID"
// @Param id path string true "Sub-category ID"
// @Param subCategory body categories.CategoryRequest true "Sub-category names"
// @Success 200 {object} api.Response{data=SubCategoryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sub-categories/{mainCategoryId}/{id} [put]
func (h *Handler) UpdateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	sub, err := h.service.UpdateSubCategory(c.Request.Context(), c.Param("mainCategoryId"), c.Param("id"), req)
	if err != nil {
		api.HandleError(c, err, "Sub-category")
		return
	}

	api.UpdatedResponse(c, "Sub-category updated successfully", sub)
}

// DeleteSubCategory godoc
// @Summary Delete a sub-category
// @Tags sub-categories
// @Produce json
// @Param mainCategoryId path string true "Main category ID"
// @Param id path string true "Sub-category ID"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/sub-categories/{mainCategoryId}/{id} [delete]
func (h *Handler) DeleteSubCategory(c *gin.Context) {
	if err := h.service.DeleteSubCategory(c.Request.Context(), c.Param("mainCategoryId"), c.Param("id")); err != nil {
		api.HandleError(c, err, "Sub-category")
		return
	}

	api.DeletedResponse(c, "Sub-category deleted successfully")
}
