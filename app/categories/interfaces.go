package categories

import (
	"context"

	"github.com/joefazee/directory-admin/models"
)

// Repository defines the interface for category data access
type Repository interface {
	List(ctx context.Context) ([]models.MainCategory, error)
	Create(ctx context.Context, names models.CategoryNames) (*models.MainCategory, error)
	Update(ctx context.Context, id string, names models.CategoryNames) (*models.MainCategory, error)
	Delete(ctx context.Context, id string) error
}

// Service defines the interface for category business logic
type Service interface {
	ListCategories(ctx context.Context, search string) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}
