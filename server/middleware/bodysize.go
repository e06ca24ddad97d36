package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/whisperkit/util"
)

// Audio uploads run larger than typical JSON bodies, so the ceiling is
// generous by default.
const defaultMaxBodySize = 32 * 1024 * 1024 // 32MB

// BodySizeLimit returns middleware that restricts the request body to the
// given size string (e.g. "32MB", "512KB", "1GB").
func BodySizeLimit(maxSize string) gin.HandlerFunc {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, size)
		c.Next()
	}
}
