package media

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/directory-admin/internal/imaging"
)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, f imaging.File) (string, error) {
	args := m.Called(ctx, f)
	return args.String(0), args.Error(1)
}
