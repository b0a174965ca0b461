package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/internal/validator"
	"github.com/joefazee/directory-admin/models"
)

// HandleError writes the response matching err. resource names the entity
// in not-found messages.
func HandleError(c *gin.Context, err error, resource string) {
	var ve *validator.ValidationError
	switch {
	case errors.As(err, &ve):
		ErrorResponse(c, http.StatusBadRequest, CodeValidation, ve.Message, ve.Fields)
	case errors.Is(err, models.ErrInvalidObjectID):
		BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrRecordNotFound):
		ErrorResponse(c, http.StatusNotFound, CodeNotFound, resource+" not found", nil)
	case errors.Is(err, models.ErrUnknownMainCategory),
		errors.Is(err, models.ErrSubmissionInFlight):
		ErrorResponse(c, http.StatusConflict, CodeConflict, err.Error(), nil)
	case errors.Is(err, models.ErrUploaderDisabled):
		ErrorResponse(c, http.StatusServiceUnavailable, CodeServiceUnavailable, err.Error(), nil)
	case remote.IsTransport(err):
		ErrorResponse(c, http.StatusBadGateway, CodeUpstreamUnavailable, "The catalog service is unreachable", nil)
	default:
		if apiErr, ok := remote.AsAPIError(err); ok {
			ErrorResponse(c, http.StatusUnprocessableEntity, CodeUpstreamRejected, apiErr.Message,
				gin.H{"upstream_status": apiErr.StatusCode})
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, CodeInternal, "Something went wrong", nil)
	}
}
