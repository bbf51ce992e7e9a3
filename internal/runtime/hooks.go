package runtime

import (
	"time"

	loggingpkg "github.com/Mrunmoy/regbus/internal/runtime/logging"
)

// SweepContext provides information about one completed probe sweep to hooks.
type SweepContext struct {
	// Bus is the name of the bus that was swept.
	Bus string
	// Keys is the number of probes sampled.
	Keys int
	// Duration is how long the sweep took.
	Duration time.Duration
	// SampledAt is when the sweep started.
	SampledAt time.Time
}

// SampleHooks defines callbacks for sweep lifecycle events.
// All hooks are optional - nil hooks are simply not called.
type SampleHooks struct {
	// OnSweep is called after each completed sweep of a bus.
	OnSweep func(ctx SweepContext)

	// OnDataUpdate is called when a data channel's write count advanced
	// since the previous sweep, with the current count.
	OnDataUpdate func(bus, key string, writes uint32)

	// OnCommandPending is called when a command channel has an unconsumed
	// value at sweep time.
	OnCommandPending func(bus, key string)
}

// Merge combines two SampleHooks, creating a new SampleHooks that calls both.
// The hooks from 'other' are called after the hooks from 'h'.
func (h SampleHooks) Merge(other SampleHooks) SampleHooks {
	return SampleHooks{
		OnSweep:          chainSweepHooks(h.OnSweep, other.OnSweep),
		OnDataUpdate:     chainUpdateHooks(h.OnDataUpdate, other.OnDataUpdate),
		OnCommandPending: chainPendingHooks(h.OnCommandPending, other.OnCommandPending),
	}
}

func chainSweepHooks(a, b func(SweepContext)) func(SweepContext) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx SweepContext) {
		a(ctx)
		b(ctx)
	}
}

func chainUpdateHooks(a, b func(string, string, uint32)) func(string, string, uint32) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(bus, key string, writes uint32) {
		a(bus, key, writes)
		b(bus, key, writes)
	}
}

func chainPendingHooks(a, b func(string, string)) func(string, string) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(bus, key string) {
		a(bus, key)
		b(bus, key)
	}
}

// LoggingHooks returns pre-built hooks that log sweep lifecycle events.
func LoggingHooks(logger loggingpkg.ServiceLogger) SampleHooks {
	return SampleHooks{
		OnSweep: func(ctx SweepContext) {
			logger.Debug("Sweep completed", loggingpkg.LogFields{
				"bus":         ctx.Bus,
				"keys":        ctx.Keys,
				"duration_us": ctx.Duration.Microseconds(),
			})
		},
		OnDataUpdate: func(bus, key string, writes uint32) {
			logger.Debug("Data channel advanced", loggingpkg.LogFields{
				"bus":    bus,
				"key":    key,
				"writes": writes,
			})
		},
		OnCommandPending: func(bus, key string) {
			logger.Info("Command pending", loggingpkg.LogFields{
				"bus": bus,
				"key": key,
			})
		},
	}
}
