package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"contract-hub.backend/pkg/logger"
)

// LoggerMiddleware writes one structured access-log line per request.
// The request id is picked up from the request context, so this must run
// after RequestIDMiddleware.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
