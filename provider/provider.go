package provider

import "context"

// Provider is the minimal contract a backend must satisfy before the
// Manager will hand it out.
type Provider interface {
	// Name identifies the backend, e.g. "whispercpp".
	Name() string
	// IsAvailable reports whether the backend can take a request right now.
	// For an engine-backed provider this turns false once the model is
	// released.
	IsAvailable(ctx context.Context) bool
}

// Factory builds a provider from a generic configuration map, typically
// the engine section produced by the config loader.
type Factory[T Provider] func(cfg map[string]any) (T, error)
