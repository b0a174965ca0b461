package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/app/api"
	"github.com/joefazee/directory-admin/internal/imaging"
)

const (
	maxImageBytes     = 5 << 20
	maxMultipartBytes = 32 << 20
)

// Handler handles HTTP requests for service providers
type Handler struct {
	service Service
}

// NewHandler creates a new provider handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListProviders godoc
// @Summary List service providers of a sub-category
// @Tags service-providers
// @Produce json
// @Param subCategoryId path string true "Sub-category ID"
// @Param search query string false "Search text matched against the name"
// @Success 200 {object} api.Response{data=[]ProviderResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-providers/{subCategoryId} [get]
func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.service.ListProviders(c.Request.Context(), c.Param("subCategoryId"), c.Query("search"))
	if err != nil {
		api.HandleError(c, err, "Service provider")
		return
	}

	api.ListResponse(c, "Service providers retrieved successfully", providers)
}

// CreateProvider godoc
// @Summary Create a service provider
// @Description Accepts a JSON draft, or multipart with the draft in "data" and files in "image"
// @Tags service-providers
// @Accept json,mpfd
// @Produce json
// @Param subCategoryId path string true "Sub-category ID"
// @Param provider body ProviderRequest true "Provider draft"
// @Success 201 {object} api.Response{data=ProviderResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-providers/{subCategoryId} [post]
func (h *Handler) CreateProvider(c *gin.Context) {
	var req ProviderRequest
	files, err := bindDraft(c, &req)
	if err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	form := h.service.NewCreateForm()
	defer form.Close()

	req.ApplyTo(form)
	if len(files) > 0 {
		if _, err := form.AddImages(c.Request.Context(), files...); err != nil {
			api.HandleError(c, err, "Service provider")
			return
		}
	}

	provider, err := h.service.CreateProvider(c.Request.Context(), c.Param("subCategoryId"), form)
	if err != nil {
		api.HandleError(c, err, "Service provider")
		return
	}

	api.CreatedResponse(c, "Service provider created successfully", provider)
}

// UpdateProvider godoc
// @Summary Update a service provider
// @Description Only the fields present in the patch are sent upstream
// @Tags service-providers
// @Accept json,mpfd
// @Produce json
// @Param subCategoryId path string true "Sub-category ID"
// @Param id path string true "Provider ID"
// @Param provider body ProviderPatchRequest true "Provider patch"
// @Success 200 {object} api.Response{data=ProviderResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-providers/{subCategoryId}/{id} [put]
func (h *Handler) UpdateProvider(c *gin.Context) {
	var req ProviderPatchRequest
	files, err := bindDraft(c, &req)
	if err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	subID, id := c.Param("subCategoryId"), c.Param("id")

	form, err := h.service.NewUpdateForm(ctx, subID, id)
	if err != nil {
		api.HandleError(c, err, "Service provider")
		return
	}
	defer form.Close()

	if unknown := req.ApplyTo(form); len(unknown) > 0 {
		api.BadRequestResponse(c, map[string]interface{}{"deletedImageIds": unknown})
		return
	}
	if len(files) > 0 {
		if _, err := form.AddImages(ctx, files...); err != nil {
			api.HandleError(c, err, "Service provider")
			return
		}
	}

	provider, err := h.service.UpdateProvider(ctx, subID, id, form)
	if err != nil {
		api.HandleError(c, err, "Service provider")
		return
	}

	api.UpdatedResponse(c, "Service provider updated successfully", provider)
}

// DeleteProvider godoc
// @Summary Delete a service provider
// @Tags service-providers
// @Produce json
// @Param subCategoryId path string true "Sub-category ID"
// @Param id path string true "Provider ID"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/service-providers/{subCategoryId}/{id} [delete]
func (h *Handler) DeleteProvider(c *gin.Context) {
	if err := h.service.DeleteProvider(c.Request.Context(), c.Param("subCategoryId"), c.Param("id")); err != nil {
		api.HandleError(c, err, "Service provider")
		return
	}

	api.DeletedResponse(c, "Service provider deleted successfully")
}

// UploadOfferImage godoc
// @Summary Host an offer image
// @Description Compresses the uploaded image and returns a URL usable in offers[].imageUrl
// @Tags media
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} api.Response{data=map[string]string}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/media/offer-images [post]
func (h *Handler) UploadOfferImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		api.BadRequestResponse(c, "file is required")
		return
	}
	f, err := readImage(header)
	if err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	url, err := h.service.UploadOfferImage(c.Request.Context(), f)
	if err != nil {
		api.HandleError(c, err, "Offer image")
		return
	}

	api.CreatedResponse(c, "Offer image uploaded successfully", gin.H{"url": url})
}

// bindDraft decodes a JSON body into dst, or a multipart body whose "data"
// part holds the JSON and whose "image" parts hold files.
func bindDraft(c *gin.Context, dst interface{}) ([]imaging.File, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, c.ShouldBindJSON(dst)
	}

	if err := c.Request.ParseMultipartForm(maxMultipartBytes); err != nil {
		return nil, fmt.Errorf("invalid form data: %w", err)
	}
	if data := c.Request.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), dst); err != nil {
			return nil, fmt.Errorf("invalid data part: %w", err)
		}
	}

	var files []imaging.File
	for _, header := range c.Request.MultipartForm.File["image"] {
		f, err := readImage(header)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readImage(header *multipart.FileHeader) (imaging.File, error) {
	if header.Size <= 0 || header.Size > maxImageBytes {
		return imaging.File{}, fmt.Errorf("%s: size must be between 1 byte and %d MB", header.Filename, maxImageBytes>>20)
	}
	src, err := header.Open()
	if err != nil {
		return imaging.File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil {
		return imaging.File{}, err
	}
	f := imaging.NewFile(header.Filename, data)
	if !f.Supported() {
		return imaging.File{}, fmt.Errorf("%s: unsupported type %s", header.Filename, f.ContentType)
	}
	return f, nil
}
