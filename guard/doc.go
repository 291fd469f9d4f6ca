// Package guard wires assertion handlers from configuration.
//
// The assert package is the dependency-free core. This package reads the
// handler policy from the environment, builds the matching handler stack
// from the handler package and registers it into a registry:
//
//	cfg := guard.ConfigFromEnv()
//	if _, err := guard.Install(assert.Default(), cfg, guard.Dependencies{
//	    Metrics: telemetry.MetricsFactory,
//	    Tracer:  telemetry.Tracer,
//	}); err != nil {
//	    return err
//	}
package guard
