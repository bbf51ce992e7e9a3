package runtime

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	configpkg "github.com/Mrunmoy/regbus/internal/runtime/config"
	errspkg "github.com/Mrunmoy/regbus/internal/runtime/errors"
	idspkg "github.com/Mrunmoy/regbus/internal/runtime/ids"
	loggingpkg "github.com/Mrunmoy/regbus/internal/runtime/logging"
	"github.com/Mrunmoy/regbus/internal/register"
)

// ServiceDependencies holds the optional collaborators of the monitor.
// Leave fields zero to use the defaults.
type ServiceDependencies struct {
	// Registerer receives the Prometheus collectors. Defaults to
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Hooks are appended after the default logging hooks.
	Hooks SampleHooks
	// DisableDefaultHooks skips the default logging hooks when true.
	DisableDefaultHooks bool
}

// Service is the regbus monitor: it owns the sweep loop that samples
// registered bus probes and the HTTP surfaces (metrics, debug API) derived
// from those samples. Register busses on the returned Service before calling
// Start.
type Service struct {
	Conf   *configpkg.Config
	Logger loggingpkg.ServiceLogger

	sessionID string
	hooks     SampleHooks
	metrics   *busMetrics

	busses   map[string]*busEntry
	bussesMu sync.RWMutex

	httpServers   map[int]*http.ServeMux
	httpServersMu sync.Mutex

	startedMu sync.Mutex
	started   bool
	stop      chan struct{}
}

type busEntry struct {
	name      string
	probes    []Probe
	footprint uintptr

	// lastWrites remembers the previous sweep's write counts so hooks fire
	// only on advancement. Touched only by the sweep goroutine.
	lastWrites map[string]uint32
}

// NewService constructs a monitor for the supplied configuration.
func NewService(conf *configpkg.Config, log loggingpkg.ServiceLogger, deps ServiceDependencies) (*Service, error) {
	if conf == nil {
		return nil, errspkg.ErrConfigRequired
	}
	if log == nil {
		return nil, errspkg.ErrLoggerRequired
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	sessionID := idspkg.CreateULID()
	logger := log.With(loggingpkg.LogFields{"session_id": sessionID})
	logger.Info("Creating bus monitor", loggingpkg.LogFields{"config": conf})

	s := &Service{
		Conf:      conf,
		Logger:    logger,
		sessionID: sessionID,
		metrics:   newBusMetrics(deps.Registerer),
		busses:    make(map[string]*busEntry),
		stop:      make(chan struct{}),
	}

	var hooks SampleHooks
	if !deps.DisableDefaultHooks {
		hooks = LoggingHooks(logger)
	}
	s.hooks = hooks.Merge(deps.Hooks)

	return s, nil
}

// SessionID returns the ULID identifying this monitor instance.
func (s *Service) SessionID() string { return s.sessionID }

// RegisterBus makes the monitor sweep the given probes under the bus name.
// The bus's footprint is the sum of its probes' channel sizes.
func (s *Service) RegisterBus(name string, probes []Probe) error {
	if name == "" {
		return errspkg.ErrBusNameRequired
	}
	if len(probes) == 0 {
		return errspkg.ErrNoProbes
	}

	s.bussesMu.Lock()
	defer s.bussesMu.Unlock()

	if _, exists := s.busses[name]; exists {
		return fmt.Errorf("%w: %s", errspkg.ErrDuplicateBus, name)
	}

	var footprint uintptr
	for _, p := range probes {
		footprint += p.Size
	}

	s.busses[name] = &busEntry{
		name:       name,
		probes:     probes,
		footprint:  footprint,
		lastWrites: make(map[string]uint32),
	}
	s.metrics.setFootprint(name, footprint)

	s.Logger.Info("Registered bus", loggingpkg.LogFields{
		"bus":             name,
		"keys":            len(probes),
		"footprint_bytes": uint64(footprint),
	})
	return nil
}

// Start runs the sweep loop until the provided context is cancelled or Stop
// is called. It also starts the metrics and debug API servers when enabled.
func (s *Service) Start(ctx context.Context) error {
	s.startedMu.Lock()
	if s.started {
		s.startedMu.Unlock()
		return errspkg.ErrMonitorStarted
	}
	s.started = true
	s.startedMu.Unlock()

	if s.Conf.MetricsEnabled {
		if err := s.metrics.Register(); err != nil {
			return fmt.Errorf("regbus: register metrics: %w", err)
		}
		port := s.Conf.MetricsPort
		if port == 0 {
			port = configpkg.DefaultMetricsPort
		}
		s.RegisterHTTPHandler(port, "/metrics", promhttp.Handler())
	}
	s.StartDebugServer()
	s.startHTTPServers()

	interval := s.Conf.SampleInterval
	if interval == 0 {
		interval = configpkg.DefaultSampleInterval
	}

	s.Logger.Info("Monitor started", loggingpkg.LogFields{"sample_interval": interval.String()})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.sweepAll(ctx)
		}
	}
}

// Stop terminates a running Start loop. Safe to call more than once.
func (s *Service) Stop() {
	s.startedMu.Lock()
	defer s.startedMu.Unlock()

	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

func (s *Service) sweepAll(ctx context.Context) {
	s.bussesMu.RLock()
	entries := make([]*busEntry, 0, len(s.busses))
	for _, e := range s.busses {
		entries = append(entries, e)
	}
	s.bussesMu.RUnlock()

	for _, e := range entries {
		s.sweepBus(ctx, e)
	}
}

func (s *Service) sweepBus(ctx context.Context, e *busEntry) {
	if s.Conf.TracingEnabled {
		tracer := otel.Tracer("regbus-monitor")
		_, span := tracer.Start(ctx, "SweepBus")
		defer span.End()
		span.SetAttributes(
			attribute.String("bus.name", e.name),
			attribute.Int("bus.keys", len(e.probes)),
		)
	}

	start := time.Now()
	for _, p := range e.probes {
		st := sampleProbe(p)
		s.metrics.observeKey(e.name, st, p.Kind)

		switch p.Kind {
		case register.KindData:
			if st.Writes != e.lastWrites[st.Key] {
				e.lastWrites[st.Key] = st.Writes
				if s.hooks.OnDataUpdate != nil {
					s.hooks.OnDataUpdate(e.name, st.Key, st.Writes)
				}
			}
		case register.KindCmd:
			if st.Ready && s.hooks.OnCommandPending != nil {
				s.hooks.OnCommandPending(e.name, st.Key)
			}
		}
	}
	elapsed := time.Since(start)
	s.metrics.observeSweep(e.name, elapsed)

	if s.hooks.OnSweep != nil {
		s.hooks.OnSweep(SweepContext{
			Bus:       e.name,
			Keys:      len(e.probes),
			Duration:  elapsed,
			SampledAt: start,
		})
	}
}

// SnapshotStatus returns a point-in-time view of every registered bus. It
// samples the probes directly, independent of the sweep loop.
func (s *Service) SnapshotStatus() []BusStatus {
	s.bussesMu.RLock()
	defer s.bussesMu.RUnlock()

	statuses := make([]BusStatus, 0, len(s.busses))
	for _, e := range s.busses {
		bs := BusStatus{
			Name:           e.name,
			FootprintBytes: uint64(e.footprint),
			Keys:           make([]KeyStatus, 0, len(e.probes)),
			SampledAt:      time.Now().UTC(),
		}
		for _, p := range e.probes {
			bs.Keys = append(bs.Keys, sampleProbe(p))
		}
		statuses = append(statuses, bs)
	}
	return statuses
}

// RegisterHTTPHandler mounts handler on the mux for the given port. Servers
// are started by Start.
func (s *Service) RegisterHTTPHandler(port int, pattern string, handler http.Handler) {
	s.httpServersMu.Lock()
	defer s.httpServersMu.Unlock()

	if s.httpServers == nil {
		s.httpServers = make(map[int]*http.ServeMux)
	}

	mux, ok := s.httpServers[port]
	if !ok {
		mux = http.NewServeMux()
		s.httpServers[port] = mux
	}

	mux.Handle(pattern, handler)
}

func (s *Service) startHTTPServers() {
	s.httpServersMu.Lock()
	defer s.httpServersMu.Unlock()

	for port, mux := range s.httpServers {
		addr := fmt.Sprintf(":%d", port)
		s.Logger.Info("Starting HTTP server", loggingpkg.LogFields{"address": addr})
		go func(addr string, handler http.Handler) {
			if err := http.ListenAndServe(addr, handler); err != nil {
				s.Logger.Error("Failed to start HTTP server", err, loggingpkg.LogFields{"address": addr})
			}
		}(addr, mux)
	}
}
