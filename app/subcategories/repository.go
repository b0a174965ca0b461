package subcategories

import (
	"context"
	"net/http"

	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

type listPayload struct {
	SubCategories []models.SubCategory `json:"subCategories"`
}

type repository struct {
	client *remote.Client
}

func NewRepository(client *remote.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, mainCategoryID string) ([]models.SubCategory, error) {
	data, err := remote.Call[listPayload](ctx, r.client, http.MethodGet, "/sub-categories/"+mainCategoryID, nil)
	if err != nil {
		return nil, err
	}
	if data.SubCategories == nil {
		return []models.SubCategory{}, nil
	}
	return data.SubCategories, nil
}

func (r *repository) Create(ctx context.Context, mainCategoryID string, names models.CategoryNames) (*models.SubCategory, error) {
	return r.write(ctx, http.MethodPost, "/sub-categories/"+mainCategoryID, names)
}

func (r *repository) Update(ctx context.Context, id string, names models.CategoryNames) (*models.SubCategory, error) {
	return r.write(ctx, http.MethodPut, "/sub-categories/"+id, names)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, "/sub-categories/"+id, nil)
}

func (r *repository) write(ctx context.Context, method, path string, names models.CategoryNames) (*models.SubCategory, error) {
	body, err := remote.JSON(names)
	if err != nil {
		return nil, err
	}
	sub, err := remote.Call[models.SubCategory](ctx, r.client, method, path, body)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
