package subcategories

import (
	"context"

	"github.com/joefazee/directory-admin/models"
)

// Repository is the sub-category half of the catalog API. Updates and
// deletes address the sub-category directly; the API knows its parent.
type Repository interface {
	List(ctx context.Context, mainCategoryID string) ([]models.SubCategory, error)
	Create(ctx context.Context, mainCategoryID string, names models.CategoryNames) (*models.SubCategory, error)
	Update(ctx context.Context, id string, names models.CategoryNames) (*models.SubCategory, error)
	Delete(ctx context.Context, id string) error
}

// Service scopes every operation by the owning main category so the right
// caches can be invalidated.
type Service interface {
	ListSubCategories(ctx context.Context, mainCategoryID, search string) ([]SubCategoryResponse, error)
	CreateSubCategory(ctx context.Context, mainCategoryID string, req SubCategoryRequest) (*SubCategoryResponse, error)
	UpdateSubCategory(ctx context.Context, mainCategoryID, id string, req SubCategoryRequest) (*SubCategoryResponse, error)
	DeleteSubCategory(ctx context.Context, mainCategoryID, id string) error
}
