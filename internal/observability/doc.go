// Package observability groups the logging and metrics infrastructure.
//
// Subpackages:
//   - logging: structured logging with slog
//   - metrics: Prometheus gauges for database state
package observability
