package provider

import "context"

// RequestResponse represents a provider that takes one input and returns one output.
// This covers synchronous inference calls: one audio buffer in, one transcript out.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}
