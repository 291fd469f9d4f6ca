// Package assert provides debug-build assertions with a swappable failure handler.
//
// A Registry holds at most one Handler. When a check fails the registry calls
// that handler synchronously with the source file, line and a text rendering
// of the failed expression. When no handler is registered the registry runs
// its fallback, which by default is Halt: the calling goroutine parks forever
// so a debugger can be attached at the point of failure.
//
// # Build Modes
//
// Assertions are compiled in by default. Building with the noassert tag
//
//	go build -tags noassert ./...
//
// turns every operation into a no-op: Fail, Register and Clear ignore their
// arguments, Check never calls its condition, and Enabled becomes the
// constant false so blocks guarded by it are removed by the compiler.
//
// # Checks
//
// Check takes the condition as a func so it is never evaluated in release
// builds. That takes a plain bool and is cheaper to write, but Go evaluates
// the argument at the call site in every build mode:
//
//	assert.Check(func() bool { return q.Len() <= q.Cap() }, "q.Len() <= q.Cap()")
//	assert.That(n > 0, "n > 0")
//
// Passing an empty expression makes the registry render it from the caller's
// source file when that file is readable, which is the case under go test.
//
// # Handlers
//
// Register replaces the handler silently; there is no chaining. A handler may
// return, in which case execution continues after the failed check:
//
//	assert.Register(assert.HandlerFunc(func(file string, line uint32, expr string) {
//	    logger.Log(ctx, log.LevelError, "assertion failed", log.String("expr", expr))
//	}))
//	defer assert.Clear()
//
// Ready-made handlers for logging, metrics, tracing and panicking live in the
// handler package.
//
// # Registries
//
// The package-level functions operate on a process-wide default registry.
// Applications and tests that want explicit ownership create their own with
// NewRegistry and pass it to the code that checks invariants. Methods on a
// nil *Registry use the default registry.
package assert
