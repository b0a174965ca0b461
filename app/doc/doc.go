package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serveSwaggerJSON serves the registered document with servers matching the
// deployment environment.
func serveSwaggerJSON(environment, publicURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		originalJSON, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read Swagger doc"})
			return
		}

		var swaggerData map[string]interface{}
		if err := json.Unmarshal([]byte(originalJSON), &swaggerData); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Swagger doc"})
			return
		}

		swaggerData["servers"] = serversFor(environment, publicURL)

		modifiedJSON, err := json.Marshal(swaggerData)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate modified Swagger doc"})
			return
		}

		c.Data(http.StatusOK, "application/json", modifiedJSON)
	}
}

func serversFor(environment, publicURL string) []map[string]interface{} {
	servers := []map[string]interface{}{
		{
			"url":         "http://localhost:8080/api/v1",
			"description": "Local Development Server",
		},
	}

	if environment != "development" && publicURL != "" {
		servers = append(servers, map[string]interface{}{
			"url":         publicURL + "/api/v1",
			"description": environment + " server",
		})
	}

	return servers
}

func serveElements(c *gin.Context) {
	elementsHTML := `
<!DOCTYPE html>
<html>
<head>
    <title>Directory Admin API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api
        apiDescriptionUrl="/swagger/doc.json"
        router="hash"
        layout="sidebar"
        hideInternal="false"
    ></elements-api>
</body>
</html>`
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, elementsHTML)
}

// Init mounts the swagger document and its viewer on r.
func Init(r *gin.Engine, environment, publicURL string) {
	r.GET("/swagger/doc.json", serveSwaggerJSON(environment, publicURL))

	r.GET("/docs/*any", serveElements)
}
