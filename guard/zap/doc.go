// Package zap adapts go.uber.org/zap to the guard log.Logger interface.
//
// New builds a JSON logger whose profile follows the deployment environment
// and tees every entry into the OpenTelemetry log bridge.
package zap
