package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fulfilment-backend/internal/shared/apperror"
	"fulfilment-backend/internal/shared/response"
	"fulfilment-backend/pkg/logger"
)

// Recovery turns a handler panic into a technical-error response, with the
// detail logged but withheld from the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					fmt.Errorf("request %s: %v", c.GetString("request_id"), rec))

				response.Fail(c, http.StatusInternalServerError,
					string(apperror.CodeTechnical), "Internal server error", nil)
				c.Abort()
			}
		}()

		c.Next()
	}
}
