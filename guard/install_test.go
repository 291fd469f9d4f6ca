//go:build unit && !noassert

package guard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/LerianStudio/lib-guard/guard/assert"
	"github.com/LerianStudio/lib-guard/guard/handler"
	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
	"github.com/LerianStudio/lib-guard/guard/runtime"
	libZap "github.com/LerianStudio/lib-guard/guard/zap"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// countingLogger counts error entries.
type countingLogger struct {
	log.NopLogger

	mu     sync.Mutex
	errors int
}

func (l *countingLogger) Log(_ context.Context, level log.Level, _ string, _ ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == log.LevelError {
		l.errors++
	}
}

func (l *countingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.errors
}

func localConfig(mode HandlerMode) Config {
	return Config{HandlerMode: mode, Environment: libZap.EnvironmentLocal, LogLevel: "info", Telemetry: true}
}

func TestInstall_RejectsInvalidConfig(t *testing.T) {
	r := assert.NewRegistry()

	h, err := Install(r, Config{HandlerMode: "reboot", Environment: libZap.EnvironmentLocal}, Dependencies{})
	require.ErrorIs(t, err, ErrInvalidHandlerMode)
	require.Nil(t, h)
	require.Nil(t, r.Handler())
}

func TestInstall_LogModeContinues(t *testing.T) {
	logger := &countingLogger{}
	r := assert.NewRegistry()

	h, err := Install(r, localConfig(ModeLog), Dependencies{Logger: logger})
	require.NoError(t, err)
	require.NotNil(t, h)
	require.NotNil(t, r.Handler())

	r.That(false, "soft")
	r.That(false, "soft again")

	require.Equal(t, 2, logger.count())
}

func TestInstall_PanicModeLogsThenPanics(t *testing.T) {
	logger := &countingLogger{}
	r := assert.NewRegistry()

	_, err := Install(r, localConfig(ModePanic), Dependencies{Logger: logger})
	require.NoError(t, err)

	run := func() (err error) {
		defer handler.Recover(&err)

		r.That(false, "hard")

		return nil
	}

	require.ErrorIs(t, run(), assert.ErrAssertionFailed)
	require.Equal(t, 1, logger.count())
}

func TestInstall_HaltModeWithoutObserversClears(t *testing.T) {
	r := assert.NewRegistry()
	r.Register(handler.Discard())

	h, err := Install(r, localConfig(ModeHalt), Dependencies{})
	require.NoError(t, err)
	require.Nil(t, h)
	require.Nil(t, r.Handler())
}

func TestInstall_LogHaltModeHalts(t *testing.T) {
	logger := &countingLogger{}
	r := assert.NewRegistry()

	_, err := Install(r, localConfig(ModeLogHalt), Dependencies{Logger: logger})
	require.NoError(t, err)

	done := make(chan struct{})

	go func() {
		r.Fail("a.go", 1, "halt")
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("log-halt handler returned")
	case <-time.After(100 * time.Millisecond):
	}

	require.Equal(t, 1, logger.count())
}

func TestInstall_WiresTelemetryObservers(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reporter := &recordingReporter{}

	cfg := localConfig(ModeLog)
	cfg.Component = "motor"

	r := assert.NewRegistry()
	_, err := Install(r, cfg, Dependencies{
		Logger:   &countingLogger{},
		Metrics:  metrics.NewNopFactory(),
		Tracer:   provider.Tracer("test"),
		Reporter: reporter,
	})
	require.NoError(t, err)

	r.That(false, "observed")

	require.Len(t, recorder.Ended(), 1)
	require.Equal(t, 1, reporter.count())
}

func TestInstall_TelemetryDisabled(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	cfg := localConfig(ModeLog)
	cfg.Telemetry = false

	r := assert.NewRegistry()
	_, err := Install(r, cfg, Dependencies{Logger: &countingLogger{}, Tracer: provider.Tracer("test")})
	require.NoError(t, err)

	r.That(false, "quiet")

	require.Empty(t, recorder.Ended())
}

func TestInstall_BuildsZapLoggerWhenMissing(t *testing.T) {
	r := assert.NewRegistry()

	h, err := Install(r, localConfig(ModeLog), Dependencies{})
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestInstall_SetsProductionMode(t *testing.T) {
	t.Cleanup(func() { runtime.SetProductionMode(false) })

	cfg := localConfig(ModeLog)
	cfg.Environment = libZap.EnvironmentProduction

	_, err := Install(assert.NewRegistry(), cfg, Dependencies{Logger: &countingLogger{}})
	require.NoError(t, err)
	require.True(t, runtime.IsProductionMode())
}

func TestInstall_NilRegistryUsesDefault(t *testing.T) {
	t.Cleanup(assert.Clear)

	h, err := Install(nil, localConfig(ModeLog), Dependencies{Logger: &countingLogger{}})
	require.NoError(t, err)
	require.NotNil(t, assert.Default().Handler())
	require.NotNil(t, h)
}

type recordingReporter struct {
	mu    sync.Mutex
	calls int
}

func (r *recordingReporter) CaptureException(context.Context, error, map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls
}
