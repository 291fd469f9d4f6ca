package handler

import (
	"github.com/LerianStudio/lib-guard/guard/assert"
	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
	"github.com/google/uuid"
)

// Tee returns a handler that calls each non-nil handler in order. A handler
// that never returns (Halt, Panic) stops the ones after it, so place
// terminals last.
func Tee(handlers ...assert.Handler) assert.Handler {
	live := make([]assert.Handler, 0, len(handlers))

	for _, h := range handlers {
		if !nilcheck.Interface(h) {
			live = append(live, h)
		}
	}

	return assert.HandlerFunc(func(file string, line uint32, expr string) {
		for _, h := range live {
			h.HandleFailure(file, line, expr)
		}
	})
}

// Discard returns a handler that ignores failures, so execution continues
// after the failed check.
func Discard() assert.Handler {
	return assert.HandlerFunc(func(string, uint32, string) {})
}

// newFailure builds a Failure with a fresh correlation id.
func newFailure(file string, line uint32, expr string) *assert.Failure {
	return &assert.Failure{
		ID:   uuid.NewString(),
		File: file,
		Line: line,
		Expr: expr,
	}
}
