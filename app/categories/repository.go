package categories

import (
	"context"
	"net/http"

	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

type listPayload struct {
	Categories []models.MainCategory `json:"categories"`
}

// repository implements Repository against the catalog API
type repository struct {
	client *remote.Client
}

func NewRepository(client *remote.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context) ([]models.MainCategory, error) {
	data, err := remote.Call[listPayload](ctx, r.client, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}
	if data.Categories == nil {
		return []models.MainCategory{}, nil
	}
	return data.Categories, nil
}

func (r *repository) Create(ctx context.Context, names models.CategoryNames) (*models.MainCategory, error) {
	body, err := remote.JSON(names)
	if err != nil {
		return nil, err
	}
	category, err := remote.Call[models.MainCategory](ctx, r.client, http.MethodPost, "/categories", body)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) Update(ctx context.Context, id string, names models.CategoryNames) (*models.MainCategory, error) {
	body, err := remote.JSON(names)
	if err != nil {
		return nil, err
	}
	category, err := remote.Call[models.MainCategory](ctx, r.client, http.MethodPut, "/categories/"+id, body)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, "/categories/"+id, nil)
}
