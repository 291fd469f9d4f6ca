package guard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-guard/guard/log"
	libZap "github.com/LerianStudio/lib-guard/guard/zap"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvHandler     = "GUARD_HANDLER"
	EnvComponent   = "GUARD_COMPONENT"
	EnvTelemetry   = "GUARD_TELEMETRY"
	EnvLogLevel    = "LOG_LEVEL"
	EnvEnvironment = "ENV"
)

// HandlerMode selects what happens after a failure has been recorded.
type HandlerMode string

const (
	// ModeHalt leaves the slot empty so failures reach the registry fallback.
	ModeHalt HandlerMode = "halt"
	// ModeLogHalt logs the failure, then halts.
	ModeLogHalt HandlerMode = "log-halt"
	// ModeLog logs the failure and continues.
	ModeLog HandlerMode = "log"
	// ModePanic logs the failure, then panics with an *assert.Failure.
	ModePanic HandlerMode = "panic"
)

var (
	// ErrInvalidHandlerMode is returned for an unknown HandlerMode.
	ErrInvalidHandlerMode = errors.New("invalid handler mode")
	// ErrInvalidEnvironment is returned for an unknown Environment.
	ErrInvalidEnvironment = errors.New("invalid environment")
	// ErrInvalidLogLevel is returned when LogLevel does not parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the handler policy for a registry.
type Config struct {
	HandlerMode HandlerMode
	Component   string
	LogLevel    string
	Environment libZap.Environment
	// Telemetry enables the metrics, trace and report observers for the
	// dependencies that are present.
	Telemetry bool
}

// ConfigFromEnv reads Config from the environment. Unset variables fall back
// to ModeLogHalt, the info level and the local environment.
func ConfigFromEnv() Config {
	return Config{
		HandlerMode: HandlerMode(strings.ToLower(GetenvOrDefault(EnvHandler, string(ModeLogHalt)))),
		Component:   GetenvOrDefault(EnvComponent, ""),
		LogLevel:    GetenvOrDefault(EnvLogLevel, "info"),
		Environment: libZap.Environment(strings.ToLower(GetenvOrDefault(EnvEnvironment, string(libZap.EnvironmentLocal)))),
		Telemetry:   GetenvBoolOrDefault(EnvTelemetry, true),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.HandlerMode {
	case ModeHalt, ModeLogHalt, ModeLog, ModePanic:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHandlerMode, c.HandlerMode)
	}

	switch c.Environment {
	case libZap.EnvironmentProduction, libZap.EnvironmentStaging, libZap.EnvironmentDevelopment, libZap.EnvironmentLocal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}

	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
		}
	}

	return nil
}

// IsProduction reports whether the configured environment is production.
func (c Config) IsProduction() bool {
	return c.Environment == libZap.EnvironmentProduction
}

func (c Config) logs() bool {
	return c.HandlerMode != ModeHalt
}
