package provider

// Middleware wraps a RequestResponse provider with cross-cutting behavior
// (logging, tracing, metrics) without touching the request flow. The
// wrapper must keep Name and IsAvailable transparent so selection still
// sees the underlying backend.
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain folds middlewares into one. The first argument ends up outermost,
// so it runs first on the way in and last on the way out:
//
//	Chain(a, b)(p) == a(b(p))
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
