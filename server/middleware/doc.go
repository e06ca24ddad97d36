// Package middleware provides the standard Gin middleware stack: panic
// recovery, request IDs, CORS, request body size limits, and request logging.
package middleware
