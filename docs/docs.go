// Package docs registers the swagger document of the admin API. Refresh it
// with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT License",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/healthz": {
            "get": {"tags": ["health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/categories": {
            "get": {"tags": ["categories"], "summary": "List main categories", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}},
            "post": {"tags": ["categories"], "summary": "Create a main category", "parameters": [{"name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/categories.CategoryRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/v1/categories/{id}": {
            "put": {"tags": ["categories"], "summary": "Rename a main category", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/categories.CategoryRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"tags": ["categories"], "summary": "Delete a main category", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/sub-categories/{mainCategoryId}": {
            "get": {"tags": ["sub-categories"], "summary": "List sub-categories of a main category", "parameters": [{"type": "string", "name": "mainCategoryId", "in": "path", "required": true}, {"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["sub-categories"], "summary": "Create a sub-category", "parameters": [{"type": "string", "name": "mainCategoryId", "in": "path", "required": true}, {"name": "subCategory", "in": "body", "required": true, "schema": {"$ref": "#/definitions/categories.CategoryRequest"}}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/sub-categories/{mainCategoryId}/{id}": {
            "put": {"tags": ["sub-categories"], "summary": "Rename a sub-category", "parameters": [{"type": "string", "name": "mainCategoryId", "in": "path", "required": true}, {"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["sub-categories"], "summary": "Delete a sub-category", "parameters": [{"type": "string", "name": "mainCategoryId", "in": "path", "required": true}, {"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/service-providers/{subCategoryId}": {
            "get": {"tags": ["service-providers"], "summary": "List service providers of a sub-category", "parameters": [{"type": "string", "name": "subCategoryId", "in": "path", "required": true}, {"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["service-providers"], "summary": "Create a service provider", "consumes": ["application/json", "multipart/form-data"], "parameters": [{"type": "string", "name": "subCategoryId", "in": "path", "required": true}, {"name": "provider", "in": "body", "required": true, "schema": {"$ref": "#/definitions/providers.ProviderRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/service-providers/{subCategoryId}/{id}": {
            "put": {"tags": ["service-providers"], "summary": "Update a service provider", "consumes": ["application/json", "multipart/form-data"], "parameters": [{"type": "string", "name": "subCategoryId", "in": "path", "required": true}, {"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["service-providers"], "summary": "Delete a service provider", "parameters": [{"type": "string", "name": "subCategoryId", "in": "path", "required": true}, {"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/media/offer-images": {
            "post": {"tags": ["media"], "summary": "Host an offer image", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"201": {"description": "Created"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "categories.CategoryRequest": {
            "type": "object",
            "properties": {"englishName": {"type": "string"}, "arabicName": {"type": "string"}}
        },
        "providers.ProviderRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "bio": {"type": "string"},
                "workingDays": {"type": "array", "items": {"type": "string"}},
                "workingHour": {"type": "string"},
                "closingHour": {"type": "string"},
                "phoneContacts": {"type": "array", "items": {"type": "object"}},
                "locationLinks": {"type": "array", "items": {"type": "string"}},
                "offers": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Directory Admin API",
	Description:      "Admin API over the service directory catalog: main categories, sub-categories and service providers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
