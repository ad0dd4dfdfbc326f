package middleware

import (
	"errors"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors appended to the gin context into the JSON
// envelope. Internal details are logged server-side, never sent to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("request failed",
					"request_id", reqID,
					"path", c.FullPath(),
					"kind", string(appErr.Kind),
					"error", appErr.Unwrap(),
				)
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, gin.H{"kind": appErr.Kind, "fields": appErr.Fields})
			return
		}

		reqID, _ := c.Get("RequestID")
		logger.Log.Error("unhandled error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
