// Package logger wraps zap with a process-wide sugared logger and an atomic level.
// Every helper takes a context so request-scoped fields attached with WithKV
// follow a song id or an HTTP request through the client, service and server layers.
package logger
