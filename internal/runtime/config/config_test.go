package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidateAcceptsZeroValue(t *testing.T) {
	var c Config
	if err := c.Validate(); err != nil {
		t.Fatalf("zero config should validate, got %v", err)
	}
}

func TestValidateRejectsNegativeInterval(t *testing.T) {
	c := Config{SampleInterval: -time.Second}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for negative interval")
	}
	if !strings.Contains(err.Error(), "interval") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadPorts(t *testing.T) {
	c := Config{MetricsPort: 70000, DebugAPIPort: -1}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for invalid ports")
	}
	msg := err.Error()
	if !strings.Contains(msg, "metrics") || !strings.Contains(msg, "debug api") {
		t.Fatalf("expected both port errors joined, got %v", err)
	}
}

func TestValidateConfigNil(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestFromEnvParsesVariables(t *testing.T) {
	t.Setenv("REGBUS_SAMPLE_INTERVAL", "250ms")
	t.Setenv("REGBUS_METRICS_ENABLED", "true")
	t.Setenv("REGBUS_METRICS_PORT", "9200")
	t.Setenv("REGBUS_DEBUG_API_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.SampleInterval != 250*time.Millisecond {
		t.Fatalf("unexpected interval %v", c.SampleInterval)
	}
	if !c.MetricsEnabled || c.MetricsPort != 9200 {
		t.Fatalf("unexpected metrics config %+v", c)
	}
	if len(c.DebugAPICORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins %v", c.DebugAPICORSAllowedOrigins)
	}
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("REGBUS_METRICS_PORT", "not-a-number")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStringDoesNotRecurse(t *testing.T) {
	c := Config{MetricsEnabled: true, MetricsPort: 9091}
	s := c.String()
	if !strings.Contains(s, "9091") {
		t.Fatalf("unexpected String output: %s", s)
	}
}
