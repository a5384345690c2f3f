// Package observability groups the logging, metrics and tracing infrastructure.
//
// Subpackages:
//   - logging: slog logger construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic, article operations and the media client
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
