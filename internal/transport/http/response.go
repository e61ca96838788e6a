package httptransport

import (
	"net/http"

	"adminconsole-go/internal/domain/validate"
	"adminconsole-go/internal/platform/errors"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope shared by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

// RespondSuccess writes a success envelope.
func RespondSuccess(c *gin.Context, httpStatus int, data interface{}, message string) {
	if message == "" {
		message = "ok"
	}

	resp := APIResponse{
		Success: true,
		Message: message,
		Code:    httpStatus,
		Data:    data,
	}

	c.JSON(httpStatus, resp)
}

// RespondError writes a failure envelope.
func RespondError(c *gin.Context, httpStatus int, message string, data interface{}) {
	resp := APIResponse{
		Success: false,
		Message: message,
		Code:    httpStatus,
		Data:    data,
	}

	c.JSON(httpStatus, resp)
}

// RespondFailure maps a typed error onto the wire. Validation failures
// carry their per-field messages in the data payload.
func RespondFailure(c *gin.Context, err error) {
	if fields, ok := validate.AsFieldErrors(err); ok {
		RespondError(c, http.StatusUnprocessableEntity, fields.Error(), gin.H{"fields": fields})
		return
	}

	status := statusForKind(errors.KindOf(err))
	RespondError(c, status, errors.UserMessage(err), gin.H{})
}

func statusForKind(kind errors.Kind) int {
	switch kind {
	case errors.KindValidation:
		return http.StatusUnprocessableEntity
	case errors.KindAuth:
		return http.StatusUnauthorized
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
