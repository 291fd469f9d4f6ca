package guard

import (
	"fmt"

	"github.com/LerianStudio/lib-guard/guard/assert"
	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/handler"
	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
	"github.com/LerianStudio/lib-guard/guard/runtime"
	libZap "github.com/LerianStudio/lib-guard/guard/zap"
	"go.opentelemetry.io/otel/trace"
)

// Dependencies are the optional collaborators Install wires into handlers.
// A nil Logger makes Install build a zap logger from the Config when the
// mode logs.
type Dependencies struct {
	Logger   log.Logger
	Metrics  *metrics.MetricsFactory
	Tracer   trace.Tracer
	Reporter runtime.ErrorReporter
}

// Install validates cfg, sets runtime production mode from the environment,
// builds the handler stack and registers it into registry (the default
// registry when nil). It returns the registered handler, which is nil when
// the stack is empty and the slot was cleared.
func Install(registry *assert.Registry, cfg Config, deps Dependencies) (assert.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid guard config: %w", err)
	}

	runtime.SetProductionMode(cfg.IsProduction())

	stack, err := buildStack(cfg, deps)
	if err != nil {
		return nil, err
	}

	if len(stack) == 0 {
		registry.Clear()
		return nil, nil
	}

	h := handler.Tee(stack...)
	registry.Register(h)

	return h, nil
}

func buildStack(cfg Config, deps Dependencies) ([]assert.Handler, error) {
	stack := make([]assert.Handler, 0, 5)

	if cfg.logs() {
		logger, err := resolveLogger(cfg, deps.Logger)
		if err != nil {
			return nil, err
		}

		stack = append(stack, handler.Log(logger))
	}

	if cfg.Telemetry {
		if deps.Metrics != nil {
			stack = append(stack, handler.Metrics(deps.Metrics, cfg.Component))
		}

		if deps.Tracer != nil {
			stack = append(stack, handler.Trace(deps.Tracer, cfg.Component))
		}

		if deps.Reporter != nil {
			stack = append(stack, handler.Report(deps.Reporter, cfg.Component))
		}
	}

	switch cfg.HandlerMode {
	case ModeLogHalt:
		stack = append(stack, assert.HandlerFunc(assert.Halt))
	case ModePanic:
		stack = append(stack, handler.Panic())
	case ModeHalt:
		// An empty slot halts through the registry fallback; observers
		// still need an explicit terminal.
		if len(stack) > 0 {
			stack = append(stack, assert.HandlerFunc(assert.Halt))
		}
	case ModeLog:
	}

	return stack, nil
}

func resolveLogger(cfg Config, logger log.Logger) (log.Logger, error) {
	if logger != nil {
		return logger, nil
	}

	level := ""

	if cfg.LogLevel != "" {
		parsed, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
		}

		level = parsed.String()
	}

	built, _, err := libZap.New(libZap.Config{
		Environment:     cfg.Environment,
		Level:           level,
		OTelLibraryName: constant.TelemetrySDKName,
	})
	if err != nil {
		return nil, fmt.Errorf("build assertion logger: %w", err)
	}

	return built, nil
}
