// Package endpoint provides the standard operational endpoints: health,
// version, and engine capabilities.
package endpoint
