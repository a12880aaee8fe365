package middleware

import (
	"errors"
	"net/http"

	"alumni-directory-backend/internal/delivery/http/response"
	"alumni-directory-backend/pkg/apperror"
	"alumni-directory-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error pushed with c.Error.
// Only AppError messages reach clients; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == apperror.KindInternal {
				logger.L().Error("request failed",
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.String("path", c.FullPath()),
					zap.Error(appErr.Err),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Kind)
			return
		}

		logger.L().Error("unhandled error",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", apperror.KindInternal)
	}
}
