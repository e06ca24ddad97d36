package provider

import "context"

// Initializable is optionally implemented by providers that need setup
// before handling requests (e.g., load a model, warm a cache).
type Initializable interface {
	Init(ctx context.Context) error
}

// Closeable is optionally implemented by providers that hold resources
// requiring explicit cleanup (e.g., a loaded inference model).
// The Manager calls Close() automatically during shutdown.
type Closeable interface {
	Close(ctx context.Context) error
}
