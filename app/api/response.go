package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in ErrorInfo.Code.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeBadRequest          = "BAD_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeUpstreamRejected    = "UPSTREAM_REJECTED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeInternal            = "INTERNAL_ERROR"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type ListMeta struct {
	Count int `json:"count"`
}

func ErrorResponse(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, Response{Error: &ErrorInfo{Code: code, Message: message, Details: details}})
}

// BadRequestResponse rejects a body or path that could not be bound.
func BadRequestResponse(c *gin.Context, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, CodeBadRequest, "Invalid request data", details)
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func UpdatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func DeletedResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// ListResponse always sends an array, with its length in meta.
func ListResponse[T any](c *gin.Context, message string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: items, Meta: ListMeta{Count: len(items)}})
}
