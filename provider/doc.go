// Package provider implements a generic provider framework using Go generics
// for swappable backends.
//
// It provides a registry for managing multiple provider implementations with
// factory-based instantiation, availability checking, and runtime selection.
// Providers that hold resources implement Closeable and are shut down by the
// Manager.
//
// # Middleware
//
// Middleware[I, O] is a function that wraps a RequestResponse provider.
// Use Chain to compose multiple middlewares:
//
//	wrapped := provider.Chain(
//	    provider.WithLogging[In, Out](log),
//	    provider.WithMetrics[In, Out](),
//	    provider.WithTracing[In, Out]("whisperkit"),
//	)(rawProvider)
//
// # Usage
//
//	reg := provider.NewRegistry[MyProvider]()
//	reg.RegisterFactory("default", myFactory)
//	mgr := provider.NewManager(reg, &provider.HealthCheckSelector[MyProvider]{})
//	mgr.Initialize("default", cfg)
//	p, _ := mgr.Get(ctx)
package provider
