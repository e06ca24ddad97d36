package provider

import "context"

// Status is a coarse health grade for a backend.
type Status int

const (
	// StatusHealthy means the backend is serving requests normally.
	StatusHealthy Status = iota
	// StatusDegraded means requests still work but something is off,
	// for example GPU acceleration fell back to CPU.
	StatusDegraded
	// StatusUnavailable means the backend cannot take requests, typically
	// because the model has been released.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// HealthStatus is a backend's detailed health report.
type HealthStatus struct {
	Status Status
	// Message explains the grade in one human-readable line.
	Message string
	// Details carries backend metadata such as model path and thread count.
	Details map[string]any
}

// HealthChecker is implemented by backends that can report more than the
// boolean IsAvailable check. The health endpoint consults it when present.
type HealthChecker interface {
	Health(ctx context.Context) HealthStatus
}
