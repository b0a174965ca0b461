package providers

import (
	"context"

	"github.com/joefazee/directory-admin/internal/imaging"
	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

// Repository is the provider half of the catalog API. Bodies arrive
// already encoded by EncodeCreate or EncodeUpdate.
type Repository interface {
	List(ctx context.Context, subCategoryID string) ([]models.ServiceProvider, error)
	Create(ctx context.Context, subCategoryID string, body *remote.Payload) (*models.ServiceProvider, error)
	Update(ctx context.Context, id string, body *remote.Payload) (*models.ServiceProvider, error)
	Delete(ctx context.Context, id string) error
}

type Service interface {
	ListProviders(ctx context.Context, subCategoryID, search string) ([]ProviderResponse, error)
	// NewCreateForm opens an empty draft. Close it when done.
	NewCreateForm() *Form
	// NewUpdateForm opens a draft of a provider listed under subCategoryID.
	NewUpdateForm(ctx context.Context, subCategoryID, id string) (*Form, error)
	CreateProvider(ctx context.Context, subCategoryID string, form *Form) (*ProviderResponse, error)
	UpdateProvider(ctx context.Context, subCategoryID, id string, form *Form) (*ProviderResponse, error)
	DeleteProvider(ctx context.Context, subCategoryID, id string) error
	// UploadOfferImage compresses f and hosts it, returning its URL.
	UploadOfferImage(ctx context.Context, f imaging.File) (string, error)
}
