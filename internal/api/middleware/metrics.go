package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-donate/internal/metrics"
)

// Metrics returns a gin middleware recording request count and duration per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted(c.Request.Method)
		c.Next()
		done(c.FullPath(), c.Writer.Status())
	}
}
