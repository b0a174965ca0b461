package doc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/joefazee/directory-admin/docs"
)

func TestSwaggerJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r, "production", "https://admin.example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Directory Admin API", doc["info"].(map[string]interface{})["title"])
	assert.Contains(t, doc["paths"], "/api/v1/service-providers/{subCategoryId}")

	servers := doc["servers"].([]interface{})
	require.Len(t, servers, 2)
	assert.Equal(t, "https://admin.example.com/api/v1", servers[1].(map[string]interface{})["url"])
}

func TestServersForDevelopment(t *testing.T) {
	servers := serversFor("development", "https://admin.example.com")
	require.Len(t, servers, 1)
	assert.Equal(t, "http://localhost:8080/api/v1", servers[0]["url"])
}

func TestElementsPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Init(r, "development", "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `apiDescriptionUrl="/swagger/doc.json"`)
}
