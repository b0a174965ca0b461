package categories

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/joefazee/directory-admin/app/api"
	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListCategories(ctx context.Context, search string) ([]CategoryResponse, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CategoryResponse), args.Error(1)
}

func (m *MockService) CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryResponse), args.Error(1)
}

func (m *MockService) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CategoryResponse), args.Error(1)
}

func (m *MockService) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryHandlerTestSuite struct {
	suite.Suite
	service *MockService
	router  *gin.Engine
}

func (suite *CategoryHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	suite.service = &MockService{}
	handler := NewHandler(suite.service)
	suite.router = gin.New()
	g := suite.router.Group("/api/v1/categories")
	g.GET("", handler.ListCategories)
	g.POST("", handler.CreateCategory)
	g.PUT("/:id", handler.UpdateCategory)
	g.DELETE("/:id", handler.DeleteCategory)
}

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (suite *CategoryHandlerTestSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, api.Response) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var resp api.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (suite *CategoryHandlerTestSuite) TestList_PassesSearch() {
	suite.service.On("ListCategories", mock.Anything, "plumb").
		Return([]CategoryResponse{{ID: "1", EnglishName: "Plumbing"}}, nil)

	w, resp := suite.do(http.MethodGet, "/api/v1/categories?search=plumb", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Meta)
	suite.Equal(float64(1), resp.Meta.(map[string]interface{})["count"])
	suite.service.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestList_TransportFailure() {
	suite.service.On("ListCategories", mock.Anything, "").Return(nil, remote.ErrTransport)

	w, resp := suite.do(http.MethodGet, "/api/v1/categories", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Equal("UPSTREAM_UNAVAILABLE", resp.Error.Code)
}

func (suite *CategoryHandlerTestSuite) TestCreate_Success() {
	req := CategoryRequest{EnglishName: "Plumbing", ArabicName: "سباكة"}
	suite.service.On("CreateCategory", mock.Anything, req).
		Return(&CategoryResponse{ID: "1", EnglishName: "Plumbing", ArabicName: "سباكة"}, nil)

	w, resp := suite.do(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(resp.Success)
}

func (suite *CategoryHandlerTestSuite) TestCreate_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.service.AssertNotCalled(suite.T(), "CreateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryHandlerTestSuite) TestCreate_ValidationError() {
	fields := map[string]string{"englishName": "English name is required"}
	suite.service.On("CreateCategory", mock.Anything, mock.Anything).
		Return(nil, validator.NewValidationError("Please fix the highlighted fields", fields))

	w, resp := suite.do(http.MethodPost, "/api/v1/categories", CategoryRequest{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", resp.Error.Code)
	suite.Equal(map[string]interface{}{"englishName": "English name is required"}, resp.Error.Details)
}

func (suite *CategoryHandlerTestSuite) TestUpdate_UpstreamRejected() {
	suite.service.On("UpdateCategory", mock.Anything, "abc", mock.Anything).
		Return(nil, &remote.APIError{StatusCode: http.StatusBadRequest, Message: "Duplicate name"})

	w, resp := suite.do(http.MethodPut, "/api/v1/categories/abc", CategoryRequest{EnglishName: "A", ArabicName: "ب"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("UPSTREAM_REJECTED", resp.Error.Code)
	suite.Equal("Duplicate name", resp.Error.Message)
}

func (suite *CategoryHandlerTestSuite) TestDelete() {
	suite.service.On("DeleteCategory", mock.Anything, "bad").Return(models.ErrInvalidObjectID)
	w, _ := suite.do(http.MethodDelete, "/api/v1/categories/bad", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.service.On("DeleteCategory", mock.Anything, "64b7f0c2e1a2b3c4d5e6f708").Return(nil)
	w, resp := suite.do(http.MethodDelete, "/api/v1/categories/64b7f0c2e1a2b3c4d5e6f708", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Success)
}
