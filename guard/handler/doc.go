// Package handler provides ready-made assert.Handler implementations.
//
// Observers (Log, Metrics, Trace, Report) record a failure and return.
// Terminals decide what happens next: Panic unwinds the goroutine, Discard
// lets execution continue, and assert.Halt parks it forever. Tee combines
// them into the single handler slot a registry holds:
//
//	registry.Register(handler.Tee(
//	    handler.Log(logger),
//	    handler.Metrics(factory, "motor"),
//	    assert.HandlerFunc(assert.Halt),
//	))
package handler
