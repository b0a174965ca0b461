package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/directory-admin/models"
)

type categoriesData struct {
	Categories []models.MainCategory `json:"categories"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api/", Timeout: time.Second}, nil)
}

func TestCallDecodesEnvelopeData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":{"categories":[{"_id":"c1","englishName":"Plumbing","arabicName":"سباكة"}]}}`)
	})

	data, err := Call[categoriesData](context.Background(), c, http.MethodGet, "/categories", nil)
	require.NoError(t, err)
	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Plumbing", data.Categories[0].EnglishName)
}

func TestCallSendsPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"englishName":"Plumbing","arabicName":"سباكة"}`, string(b))
		_, _ = io.WriteString(w, `{"success":true,"data":{"_id":"c9","englishName":"Plumbing","arabicName":"سباكة"}}`)
	})

	body, err := JSON(models.CategoryNames{EnglishName: "Plumbing", ArabicName: "سباكة"})
	require.NoError(t, err)
	created, err := Call[models.MainCategory](context.Background(), c, http.MethodPost, "/categories", body)
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
}

func TestCallErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"success false on 200", http.StatusOK, `{"success":false,"message":"Category already exists"}`, 200, "Category already exists"},
		{"error field on 400", http.StatusBadRequest, `{"success":false,"error":"invalid id"}`, 400, "invalid id"},
		{"html 500", http.StatusInternalServerError, `<html>oops</html>`, 500, "Internal Server Error"},
		{"empty 404", http.StatusNotFound, ``, 404, "Not Found"},
		{"success false no message", http.StatusOK, `{"success":false}`, 200, "request was not successful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			err := c.Do(context.Background(), http.MethodDelete, "/categories/c1", nil)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.False(t, IsTransport(err))
		})
	}
}

func TestCallMalformedSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})
	_, err := Call[categoriesData](context.Background(), c, http.MethodGet, "/categories", nil)
	require.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok)
	assert.False(t, IsTransport(err))
}

func TestCallTimeoutIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)
	err := c.Do(context.Background(), http.MethodGet, "/categories", nil)
	assert.True(t, IsTransport(err), "got %v", err)
}

func TestCallUnreachableIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{BaseURL: url, Timeout: time.Second}, nil)
	err := c.Do(context.Background(), http.MethodGet, "/categories", nil)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCallCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Do(ctx, http.MethodGet, "/categories", nil)
	assert.True(t, IsTransport(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewDefaultsTimeout(t *testing.T) {
	c := New(Config{BaseURL: "http://example.test/"}, nil)
	assert.Equal(t, 30*time.Second, c.http.Timeout)
	assert.Equal(t, "http://example.test", c.baseURL)
}
