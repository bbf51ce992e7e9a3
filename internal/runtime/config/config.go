package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config groups the settings for the out-of-band monitor surfaces. Channel
// operations themselves take no configuration; everything here concerns the
// sampling loop, metrics, the debug API, and tracing.
type Config struct {
	// SampleInterval is the period between probe sweeps. Zero falls back to
	// DefaultSampleInterval.
	SampleInterval time.Duration `env:"REGBUS_SAMPLE_INTERVAL"`

	// Metrics configuration.
	MetricsEnabled bool `env:"REGBUS_METRICS_ENABLED"`
	// MetricsPort is the port where Prometheus metrics will be exposed.
	// Defaults to 9091.
	MetricsPort int `env:"REGBUS_METRICS_PORT"`

	// Debug API configuration.
	DebugAPIEnabled bool `env:"REGBUS_DEBUG_API_ENABLED"`
	// DebugAPIPort is the port where the debug API will be exposed. Defaults
	// to 8081.
	DebugAPIPort int `env:"REGBUS_DEBUG_API_PORT"`
	// DebugAPICORSAllowedOrigins specifies allowed origins for CORS. Use "*"
	// for development or specific origins for production. Empty disables
	// CORS headers.
	DebugAPICORSAllowedOrigins []string `env:"REGBUS_DEBUG_API_CORS_ALLOWED_ORIGINS"`

	// TracingEnabled wraps each sweep in an OpenTelemetry span.
	TracingEnabled bool `env:"REGBUS_TRACING_ENABLED"`
}

const (
	// DefaultSampleInterval is used when SampleInterval is zero.
	DefaultSampleInterval = time.Second
	// DefaultMetricsPort is used when MetricsPort is zero.
	DefaultMetricsPort = 9091
	// DefaultDebugAPIPort is used when DebugAPIPort is zero.
	DefaultDebugAPIPort = 8081
)

// FromEnv builds a Config from REGBUS_* environment variables.
func FromEnv() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("regbus: parse env config: %w", err)
	}
	return &c, nil
}

func (c Config) String() string {
	// Use a type alias to avoid infinite recursion when printing
	type configAlias Config
	return fmt.Sprintf("%+v", configAlias(c))
}

// Validate checks that the configuration is internally consistent. Returns
// an error describing every invalid field.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, c.validateSampling()...)
	errs = append(errs, c.validatePorts()...)

	return errors.Join(errs...)
}

func (c *Config) validateSampling() []error {
	if c.SampleInterval < 0 {
		return []error{errors.New("sampling: interval cannot be negative")}
	}
	return nil
}

func (c *Config) validatePorts() []error {
	var errs []error
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("metrics: invalid port %d", c.MetricsPort))
	}
	if c.DebugAPIPort < 0 || c.DebugAPIPort > 65535 {
		errs = append(errs, fmt.Errorf("debug api: invalid port %d", c.DebugAPIPort))
	}
	return errs
}

// ValidateConfig is a convenience function to validate a config pointer.
// Returns nil if the config is valid.
func ValidateConfig(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}
