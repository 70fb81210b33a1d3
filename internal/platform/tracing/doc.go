// Package tracing configures OpenTelemetry trace export and provides a
// store.TaskStore decorator that records one span per store call.
package tracing
