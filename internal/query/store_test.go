package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/joefazee/directory-admin/internal/cache"
	"github.com/joefazee/directory-admin/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newProviderStore(t *testing.T) (*Registry, *Store[[]models.ServiceProvider]) {
	t.Helper()
	backend := cache.NewMemoryCacheWithJanitor[[]models.ServiceProvider](time.Hour)
	t.Cleanup(backend.Stop)
	reg := NewRegistry(nil)
	return reg, NewStore[[]models.ServiceProvider](reg, EntityServiceProviders, backend, time.Minute)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "categories", CategoriesKey().String())
	assert.Equal(t, "sub-categories/m1", SubCategoriesKey("m1").String())
	assert.Equal(t, "service-providers/s1", ProvidersKey("s1").String())
}

func TestFetchCachesUntilInvalidated(t *testing.T) {
	reg, store := newProviderStore(t)
	ctx := context.Background()

	var calls int32
	fetch := func(context.Context) ([]models.ServiceProvider, error) {
		n := atomic.AddInt32(&calls, 1)
		return []models.ServiceProvider{{ID: "p", Name: string(rune('A' + n - 1))}}, nil
	}

	v, err := store.Fetch(ctx, "s1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "A", v[0].Name)

	v, err = store.Fetch(ctx, "s1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "A", v[0].Name)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	require.NoError(t, reg.Invalidate(ctx, ProvidersKey("s1")))
	_, ok := store.Peek(ctx, "s1")
	assert.False(t, ok)

	v, err = store.Fetch(ctx, "s1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "B", v[0].Name)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestInvalidateOnlyTouchesNamedScopes(t *testing.T) {
	reg, store := newProviderStore(t)
	ctx := context.Background()

	one := func(context.Context) ([]models.ServiceProvider, error) {
		return []models.ServiceProvider{{ID: "x"}}, nil
	}
	_, err := store.Fetch(ctx, "s1", one)
	require.NoError(t, err)
	_, err = store.Fetch(ctx, "s2", one)
	require.NoError(t, err)

	require.NoError(t, reg.Invalidate(ctx, ProvidersKey("s1"), CategoriesKey()))

	_, ok := store.Peek(ctx, "s1")
	assert.False(t, ok)
	_, ok = store.Peek(ctx, "s2")
	assert.True(t, ok, "unrelated scope must survive")
	assert.EqualValues(t, 1, reg.Generation(ProvidersKey("s1")))
	assert.EqualValues(t, 0, reg.Generation(ProvidersKey("s2")))
	assert.EqualValues(t, 1, reg.Generation(CategoriesKey()))
}

func TestFetchCollapsesConcurrentMisses(t *testing.T) {
	_, store := newProviderStore(t)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	fetch := func(context.Context) ([]models.ServiceProvider, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []models.ServiceProvider{{ID: "p1"}}, nil
	}

	var wg sync.WaitGroup
	results := make([][]models.ServiceProvider, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := store.Fetch(ctx, "s1", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, "p1", r[0].ID)
	}
}

func TestFetchInFlightDuringInvalidationIsNotCommitted(t *testing.T) {
	reg, store := newProviderStore(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	slow := func(context.Context) ([]models.ServiceProvider, error) {
		close(started)
		<-release
		return []models.ServiceProvider{{ID: "stale"}}, nil
	}

	done := make(chan []models.ServiceProvider)
	go func() {
		v, err := store.Fetch(ctx, "s1", slow)
		assert.NoError(t, err)
		done <- v
	}()

	<-started
	require.NoError(t, reg.Invalidate(ctx, ProvidersKey("s1")))

	fresh, err := store.Fetch(ctx, "s1", func(context.Context) ([]models.ServiceProvider, error) {
		return []models.ServiceProvider{{ID: "fresh"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", fresh[0].ID)

	close(release)
	stale := <-done
	assert.Equal(t, "stale", stale[0].ID, "the caller still gets its own response")

	cached, ok := store.Peek(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, "fresh", cached[0].ID, "the latest fetch wins")
}

func TestFetchErrorIsNotCached(t *testing.T) {
	_, store := newProviderStore(t)
	ctx := context.Background()
	boom := errors.New("upstream down")

	_, err := store.Fetch(ctx, "s1", func(context.Context) ([]models.ServiceProvider, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	_, ok := store.Peek(ctx, "s1")
	assert.False(t, ok)
}

func TestFetchSurvivesBackendFailures(t *testing.T) {
	backend := new(cache.MockCache[[]models.MainCategory])
	backend.On("Get", mock.Anything, "categories").Return(nil, errors.New("redis: connection refused"))
	backend.On("Set", mock.Anything, "categories", mock.Anything, time.Minute).Return(errors.New("redis: connection refused"))
	backend.On("Delete", mock.Anything, "categories").Return(errors.New("redis: connection refused"))

	reg := NewRegistry(nil)
	store := NewStore[[]models.MainCategory](reg, EntityCategories, backend, time.Minute)
	ctx := context.Background()

	v, err := store.Fetch(ctx, "", func(context.Context) ([]models.MainCategory, error) {
		return []models.MainCategory{{ID: "c1"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", v[0].ID)

	err = reg.Invalidate(ctx, CategoriesKey())
	assert.ErrorContains(t, err, "connection refused")
	assert.EqualValues(t, 1, reg.Generation(CategoriesKey()))
	backend.AssertExpectations(t)
}

func TestLastSurvivesInvalidation(t *testing.T) {
	reg, store := newProviderStore(t)
	ctx := context.Background()

	_, ok := store.Last(ctx, "s1")
	assert.False(t, ok)

	_, err := store.Fetch(ctx, "s1", func(context.Context) ([]models.ServiceProvider, error) {
		return []models.ServiceProvider{{ID: "p1"}}, nil
	})
	require.NoError(t, err)
	require.NoError(t, reg.Invalidate(ctx, ProvidersKey("s1")))

	_, ok = store.Peek(ctx, "s1")
	assert.False(t, ok)
	v, ok := store.Last(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, "p1", v[0].ID)

	_, err = store.Fetch(ctx, "s1", func(context.Context) ([]models.ServiceProvider, error) {
		return []models.ServiceProvider{{ID: "p2"}}, nil
	})
	require.NoError(t, err)
	v, _ = store.Last(ctx, "s1")
	assert.Equal(t, "p2", v[0].ID)
}
