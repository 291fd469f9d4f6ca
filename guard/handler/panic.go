package handler

import (
	"errors"

	"github.com/LerianStudio/lib-guard/guard/assert"
)

// Panic returns a handler that panics with an *assert.Failure. It suits Go
// hosts and tests where unwinding is preferable to halting.
func Panic() assert.Handler {
	return assert.HandlerFunc(func(file string, line uint32, expr string) {
		panic(newFailure(file, line, expr))
	})
}

// Recover converts a panic raised by the Panic handler into an error stored
// in *errp. Other panics are re-raised. Call it deferred:
//
//	defer handler.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	err, ok := r.(error)
	if !ok || !errors.Is(err, assert.ErrAssertionFailed) {
		panic(r)
	}

	if errp != nil {
		*errp = err
	}
}
