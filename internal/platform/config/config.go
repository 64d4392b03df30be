package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Flag is an enablement switch read from the environment. "1", "true",
// "yes" and "on" (any case) enable it. Every other value, including one
// that does not parse, leaves it disabled.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (f *Flag) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true", "yes", "on":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Validation selects which checkers the validation layer installs.
type Validation struct {
	Template       Flag `env:"ZEL_ENABLE_VALIDATION_CHECKER_TEMPLATE"`
	Parameter      Flag `env:"ZE_ENABLE_PARAMETER_VALIDATION"`
	HandleLifetime Flag `env:"ZE_ENABLE_HANDLE_LIFETIME"`
	Threading      Flag `env:"ZE_ENABLE_THREADING_VALIDATION"`
	Leak           Flag `env:"ZEL_ENABLE_BASIC_LEAK_CHECKER"`
	Certification  Flag `env:"ZEL_ENABLE_CERTIFICATION_CHECKER"`
	Performance    Flag `env:"ZEL_ENABLE_PERFORMANCE_CHECKER"`
	Events         Flag `env:"ZEL_ENABLE_EVENTS_CHECKER"`

	// CertificationVersion pins the certified API version as "major.minor".
	// Empty means follow the version the driver reports.
	CertificationVersion string `env:"ZEL_CERTIFICATION_CHECKER_VERSION"`

	// Order overrides the order checkers are registered in.
	Order []string `env:"ZEL_VALIDATION_CHECKER_ORDER" envSeparator:","`
}

type Log struct {
	Level  string `env:"ZEL_LOADER_LOGGING_LEVEL" envDefault:"warn"`
	Format string `env:"ZEL_LOADER_LOG_FORMAT"    envDefault:"text"`
}

// Telemetry configures opt-in tracing. Tracing stays off while Endpoint is
// empty.
type Telemetry struct {
	Endpoint    string `env:"ZEL_OTEL_ENDPOINT"`
	Enabled     Flag   `env:"ZEL_OTEL_ENABLED"      envDefault:"true"`
	ServiceName string `env:"ZEL_OTEL_SERVICE_NAME" envDefault:"zello"`
}

// Server captures the diagnostics HTTP server configuration.
type Server struct {
	Addr string `env:"ZEL_DIAGNOSTICS_ADDR" envDefault:":9464"`
}

type Config struct {
	Validation Validation
	Log        Log
	Telemetry  Telemetry
	Server     Server
}

// FromEnv reads the configuration once. Later changes to the environment
// have no effect on the returned value.
func FromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
