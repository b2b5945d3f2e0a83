package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fulfilment-backend/internal/shared/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError maps the business-error taxonomy onto HTTP statuses. This is the
// only place a status code is derived from an error kind: validation-type
// failures are 422, missing references 404, every other business rule 409,
// and unclassified faults 500 with the detail withheld.
func FromError(c *gin.Context, err error) {
	code := apperror.CodeOf(err)

	switch code {
	case apperror.CodeValidation, apperror.CodeNotProvided:
		Fail(c, http.StatusUnprocessableEntity, string(code), err.Error(), nil)
	case apperror.CodeNotFound:
		Fail(c, http.StatusNotFound, string(code), err.Error(), nil)
	case apperror.CodeTechnical:
		Fail(c, http.StatusInternalServerError, string(code), "Internal server error", nil)
	default:
		Fail(c, http.StatusConflict, string(code), err.Error(), nil)
	}
}
