// Package server provides the HTTP surface for the transcription engine
// using Gin with HTTP/2 and h2c support.
//
// The server follows the component pattern with lifecycle management,
// health endpoints, and configurable middleware.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - Logging: Request/response logging with duration tracking
//   - CORS: Cross-origin resource sharing configuration
//   - RequestID: Request ID generation and propagation
//   - BodySize: Request body size limits
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Health check aggregation
//   - /version: Build version information
//   - /capabilities: Engine build capabilities
//
// The transcription API itself is mounted via RegisterTranscription:
//
//   - POST /api/transcribe: WAV upload, returns transcript with segments
package server
