package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"agency-cms.backend/pkg/logger"
	"agency-cms.backend/pkg/utils"
)

const RequestIDKey = logger.RequestIDKey

// RequestIDMiddleware generates a unique ID for each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Honor an id set by an upstream proxy
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateUUIDv7().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		// Mirror into the request context so logger.WithContext finds it
		ctx := context.WithValue(c.Request.Context(), RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
