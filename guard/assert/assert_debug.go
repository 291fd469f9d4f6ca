//go:build !noassert

package assert

import (
	"runtime"

	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
)

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Register replaces the registered handler. A nil handler, including a
// typed-nil HandlerFunc, clears the slot.
func (r *Registry) Register(h Handler) {
	r = r.self()

	if nilcheck.Interface(h) {
		h = nil
	}

	r.mu.Lock()
	r.handler = h
	r.mu.Unlock()
}

// Clear empties the handler slot so failures reach the fallback again.
func (r *Registry) Clear() {
	r.Register(nil)
}

// Handler returns the registered handler, or nil when the slot is empty.
func (r *Registry) Handler() Handler {
	r = r.self()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.handler
}

// Fail reports a failed assertion. The registered handler is called
// synchronously and outside the registry lock, so it may itself call
// Register or Clear. With an empty slot the fallback runs instead.
func (r *Registry) Fail(file string, line uint32, expr string) {
	r = r.self()

	h := r.Handler()
	if h == nil {
		h = r.fallback
	}

	h.HandleFailure(file, line, expr)
}

// Check calls cond once and reports a failure at the caller's location when
// it returns false. A nil cond counts as a failed check.
func (r *Registry) Check(cond func() bool, expr string) {
	r.self().check(1, cond, expr)
}

// That reports a failure at the caller's location when cond is false.
func (r *Registry) That(cond bool, expr string) {
	if !cond {
		r.self().failAt(1, expr)
	}
}

// check resolves the call site skip frames above its caller.
func (r *Registry) check(skip int, cond func() bool, expr string) {
	if cond != nil && cond() {
		return
	}

	r.failAt(skip+1, expr)
}

func (r *Registry) failAt(skip int, expr string) {
	file, line := callSite(skip + 1)

	if expr == "" {
		expr = sourceExpr(file, line)
	}

	r.Fail(file, line, expr)
}

// callSite returns the location skip frames above its caller.
func callSite(skip int) (string, uint32) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}

	return file, toLine(line)
}

// Register replaces the handler of the default registry.
func Register(h Handler) {
	std.Register(h)
}

// Clear empties the handler slot of the default registry.
func Clear() {
	std.Clear()
}

// Fail reports a failed assertion to the default registry.
func Fail(file string, line uint32, expr string) {
	std.Fail(file, line, expr)
}

// Check calls cond once and reports a failure to the default registry when
// it returns false.
func Check(cond func() bool, expr string) {
	std.check(1, cond, expr)
}

// That reports a failure to the default registry when cond is false.
func That(cond bool, expr string) {
	if !cond {
		std.failAt(1, expr)
	}
}
