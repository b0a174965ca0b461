package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCache[V any] struct {
	mock.Mock
}

var _ Cache[string] = (*MockCache[string])(nil)

func (m *MockCache[V]) Get(ctx context.Context, key string) (V, error) {
	args := m.Called(ctx, key)
	var zero V
	if v, ok := args.Get(0).(V); ok {
		return v, args.Error(1)
	}
	return zero, args.Error(1)
}

func (m *MockCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache[V]) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache[V]) Close() error {
	return nil
}
