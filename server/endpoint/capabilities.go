package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/whisperkit/transcription/whispercpp"
)

// Capabilities returns a handler that reports the engine's compile-time
// capabilities: acceleration support and library version.
func Capabilities() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, whispercpp.GetCapabilities())
	}
}
