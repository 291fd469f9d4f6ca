// Package metrics wraps an OpenTelemetry meter with a cached counter factory
// and a fluent builder for labelled increments.
package metrics
