package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rahul04022004/wellbeing/backend/internal/logger"
)

// Logger middleware for structured logging of HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Ctx(c.Request.Context()).Info("request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
