package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sashabryl/train-station-api-service/pkg/logger"
)

const (
	// RequestIDHeader is the header carrying the request ID
	RequestIDHeader = "X-Request-ID"
	// ContextKeyRequestID is the gin context key for the request ID
	ContextKeyRequestID = "request_id"
)

// RequestID assigns each request an ID, reusing the client-supplied one if present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID extracts the request ID from the gin context
func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyRequestID); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
