// Package constant holds telemetry names and limits shared by the guard packages.
package constant
