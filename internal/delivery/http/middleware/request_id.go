package middleware

import (
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates one, and attaches it
// to the gin context, the response headers and the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("request_id", id)))

		c.Next()
	}
}
