package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/whisperkit/component"
)

// HealthChecker gathers per-component health reports, in practice the
// engine provider's self-check.
type HealthChecker func(ctx context.Context) []component.Health

// Health reports overall service health. The worst component status wins:
// any unhealthy component makes the service unhealthy (503), any degraded
// one makes it degraded (still 200).
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var components []component.Health
		if checker != nil {
			components = checker(c.Request.Context())
		}
		status := aggregate(components)

		httpStatus := http.StatusOK
		if status == "unhealthy" {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}

func aggregate(components []component.Health) string {
	status := "healthy"
	for _, ch := range components {
		switch ch.Status {
		case component.StatusUnhealthy:
			return "unhealthy"
		case component.StatusDegraded:
			status = "degraded"
		}
	}
	return status
}
