// Package zap implements the log.Logger interface on top of go.uber.org/zap,
// with automatic trace/span correlation when the context carries an active
// OpenTelemetry span.
package zap
