// Package mocks holds testify mocks of the catalog repositories.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/models"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.MainCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MainCategory), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, names models.CategoryNames) (*models.MainCategory, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MainCategory), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id string, names models.CategoryNames) (*models.MainCategory, error) {
	args := m.Called(ctx, id, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MainCategory), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSubCategoryRepository struct {
	mock.Mock
}

func (m *MockSubCategoryRepository) List(ctx context.Context, mainCategoryID string) ([]models.SubCategory, error) {
	args := m.Called(ctx, mainCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubCategory), args.Error(1)
}

func (m *MockSubCategoryRepository) Create(ctx context.Context, mainCategoryID string, names models.CategoryNames) (*models.SubCategory, error) {
	args := m.Called(ctx, mainCategoryID, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubCategory), args.Error(1)
}

func (m *MockSubCategoryRepository) Update(ctx context.Context, id string, names models.CategoryNames) (*models.SubCategory, error) {
	args := m.Called(ctx, id, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubCategory), args.Error(1)
}

func (m *MockSubCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) List(ctx context.Context, subCategoryID string) ([]models.ServiceProvider, error) {
	args := m.Called(ctx, subCategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) Create(ctx context.Context, subCategoryID string, body *remote.Payload) (*models.ServiceProvider, error) {
	args := m.Called(ctx, subCategoryID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) Update(ctx context.Context, id string, body *remote.Payload) (*models.ServiceProvider, error) {
	args := m.Called(ctx, id, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
