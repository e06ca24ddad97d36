package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-request correlation ID.
const HeaderRequestID = "X-Request-Id"

// RequestID tags every request with a correlation ID so a transcription
// can be traced through the logs. An ID supplied by the caller is kept;
// otherwise a fresh UUID is generated. The ID is stored in the gin
// context under "request_id" and echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
