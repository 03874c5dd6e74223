package response

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "agency-cms.backend/internal/domain/errors"
	"agency-cms.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		// Default to Internal Server Error if not an AppError. The raw
		// error only goes to the log, never to the client.
		ctx := context.Background()
		fields := []zap.Field{zap.Error(err)}
		if c.Request != nil {
			ctx = c.Request.Context()
			fields = append(fields,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}
		logger.Error(ctx, "unhandled error", fields...)
		appErr = domainerrors.InternalError(err)
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}

	c.JSON(appErr.Status, body)
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
