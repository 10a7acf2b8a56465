// Package httpserver runs the GrowBuddy HTTP API with graceful shutdown.
//
// Server binds its listener synchronously in Run, so an address in use is
// reported as ErrStart instead of being lost in a goroutine. Run blocks until
// the context is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called.
// Start and stop hooks run around the server life cycle. Config carries the
// HTTP_* environment variables for use with pkg/config.
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
