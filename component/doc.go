// Package component defines lifecycle and health interfaces shared by the
// HTTP server and the engine provider so they can be started, stopped, and
// health-checked uniformly.
package component
