package runtime

import (
	"context"
	"path/filepath"
	"sync"
)

// ErrorReporter defines an interface for external error reporting services.
// This abstraction allows integration with error tracking services without
// creating a hard dependency on any specific SDK.
//
// Implementations should be safe for concurrent use and must not panic.
type ErrorReporter interface {
	// CaptureException reports an error to the error tracking service.
	// The tags map carries metadata such as the failing file, line and expression.
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the global error reporter. Pass nil to disable it.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the configured error reporter, or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	// productionMode controls whether source paths are redacted in reports.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// RedactPath returns file unchanged outside production mode. In production
// mode only the base name is kept so build-machine paths do not leak.
func RedactPath(file string) string {
	if file == "" || !IsProductionMode() {
		return file
	}

	return filepath.Base(file)
}
