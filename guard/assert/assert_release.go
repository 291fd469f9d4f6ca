//go:build noassert

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Register is a no-op in release builds.
func (r *Registry) Register(Handler) {}

// Clear is a no-op in release builds.
func (r *Registry) Clear() {}

// Handler always returns nil in release builds.
func (r *Registry) Handler() Handler { return nil }

// Fail is a no-op in release builds.
func (r *Registry) Fail(string, uint32, string) {}

// Check is a no-op in release builds. cond is never called.
func (r *Registry) Check(func() bool, string) {}

// That is a no-op in release builds.
func (r *Registry) That(bool, string) {}

// Register is a no-op in release builds.
func Register(Handler) {}

// Clear is a no-op in release builds.
func Clear() {}

// Fail is a no-op in release builds.
func Fail(string, uint32, string) {}

// Check is a no-op in release builds. cond is never called.
func Check(func() bool, string) {}

// That is a no-op in release builds.
func That(bool, string) {}
