package regbus

import (
	registerpkg "github.com/Mrunmoy/regbus/internal/register"
	runtimepkg "github.com/Mrunmoy/regbus/internal/runtime"
	configpkg "github.com/Mrunmoy/regbus/internal/runtime/config"
	errspkg "github.com/Mrunmoy/regbus/internal/runtime/errors"
	loggingpkg "github.com/Mrunmoy/regbus/internal/runtime/logging"
)

type (
	// Channel primitives.
	Snapshot[T any] = registerpkg.Snapshot[T]
	Event[T any]    = registerpkg.Event[T]
	Kind            = registerpkg.Kind

	// Monitor surface.
	Config              = configpkg.Config
	Monitor             = runtimepkg.Service
	MonitorDependencies = runtimepkg.ServiceDependencies
	Probe               = runtimepkg.Probe
	KeyStatus           = runtimepkg.KeyStatus
	BusStatus           = runtimepkg.BusStatus
	SampleHooks         = runtimepkg.SampleHooks
	SweepContext        = runtimepkg.SweepContext

	// Logging contract.
	LogFields     = loggingpkg.LogFields
	ServiceLogger = loggingpkg.ServiceLogger
)

const (
	KindData = registerpkg.KindData
	KindCmd  = registerpkg.KindCmd
)

var (
	NewMonitor     = runtimepkg.NewService
	ConfigFromEnv  = configpkg.FromEnv
	ValidateConfig = configpkg.ValidateConfig

	NewSlogServiceLogger = loggingpkg.NewSlogServiceLogger
	NewNopLogger         = loggingpkg.NewNopLogger

	// Pre-built sample hooks.
	LoggingHooks = runtimepkg.LoggingHooks

	// Sentinel errors of the monitor surface. Channel operations never
	// return errors.
	ErrConfigRequired  = errspkg.ErrConfigRequired
	ErrLoggerRequired  = errspkg.ErrLoggerRequired
	ErrBusNameRequired = errspkg.ErrBusNameRequired
	ErrDuplicateBus    = errspkg.ErrDuplicateBus
	ErrNoProbes        = errspkg.ErrNoProbes
	ErrMonitorStarted  = errspkg.ErrMonitorStarted
)
