package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/linea/internal/shared/id"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an ID. A client-supplied UUID is kept;
// otherwise a new prefixed ULID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID, ok := id.FromClient(c.GetHeader(RequestIDHeader))
		if !ok {
			reqID = id.NewRequestID()
		}

		c.Set(requestIDKey, reqID.String())
		c.Header(RequestIDHeader, reqID.String())
		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestID, or "" outside it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
