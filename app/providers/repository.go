package providers

import (
	"context"
	"net/http"

	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

type listPayload struct {
	ServiceProviders []models.ServiceProvider `json:"serviceProviders"`
}

type updatePayload struct {
	ServiceProvider models.ServiceProvider `json:"serviceProvider"`
}

type repository struct {
	client *remote.Client
}

func NewRepository(client *remote.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, subCategoryID string) ([]models.ServiceProvider, error) {
	data, err := remote.Call[listPayload](ctx, r.client, http.MethodGet, "/service-providers/"+subCategoryID, nil)
	if err != nil {
		return nil, err
	}
	if data.ServiceProviders == nil {
		return []models.ServiceProvider{}, nil
	}
	return data.ServiceProviders, nil
}

func (r *repository) Create(ctx context.Context, subCategoryID string, body *remote.Payload) (*models.ServiceProvider, error) {
	p, err := remote.Call[models.ServiceProvider](ctx, r.client, http.MethodPost, "/service-providers/"+subCategoryID, body)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, id string, body *remote.Payload) (*models.ServiceProvider, error) {
	data, err := remote.Call[updatePayload](ctx, r.client, http.MethodPut, "/service-providers/"+id, body)
	if err != nil {
		return nil, err
	}
	return &data.ServiceProvider, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, "/service-providers/"+id, nil)
}
