package runtime

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mrunmoy/regbus/internal/register"
)

// busMetrics tracks per-bus, per-key channel statistics sampled by sweeps.
type busMetrics struct {
	mu sync.Mutex

	writesTotal    *prometheus.CounterVec
	dataReady      *prometheus.GaugeVec
	cmdPending     *prometheus.GaugeVec
	footprintBytes *prometheus.GaugeVec
	sweepDuration  *prometheus.HistogramVec

	// lastWrites carries the previous sweep's counter value per bus/key so
	// writes can be exported as a true counter.
	lastWrites map[string]uint32

	registerer prometheus.Registerer
	registered bool
}

// newBusCounterVec creates a new counter vec with standard regbus/bus namespace.
func newBusCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "regbus",
			Subsystem: "bus",
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// newBusGaugeVec creates a new gauge vec with standard regbus/bus namespace.
func newBusGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "regbus",
			Subsystem: "bus",
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// newBusHistogramVec creates a new histogram vec with standard regbus/bus namespace.
func newBusHistogramVec(name, help string, buckets []float64, labels []string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "regbus",
			Subsystem: "bus",
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

// newBusMetrics creates the sweep metrics collectors.
func newBusMetrics(registerer prometheus.Registerer) *busMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &busMetrics{
		lastWrites:     make(map[string]uint32),
		registerer:     registerer,
		writesTotal:    newBusCounterVec("writes_total", "Total number of completed writes observed on data channels", []string{"bus", "key"}),
		dataReady:      newBusGaugeVec("data_ready", "Whether a data channel has ever been written (1) or is still empty (0)", []string{"bus", "key"}),
		cmdPending:     newBusGaugeVec("command_pending", "Whether a command channel holds an unconsumed value", []string{"bus", "key"}),
		footprintBytes: newBusGaugeVec("footprint_bytes", "Total static storage footprint of a bus's channels", []string{"bus"}),
		sweepDuration:  newBusHistogramVec("sweep_duration_seconds", "Duration of probe sweeps per bus", []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1}, []string{"bus"}),
	}
}

// Register registers the Prometheus collectors. Safe to call multiple times.
func (m *busMetrics) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	collectors := []prometheus.Collector{
		m.writesTotal,
		m.dataReady,
		m.cmdPending,
		m.footprintBytes,
		m.sweepDuration,
	}
	for _, c := range collectors {
		if err := m.registerer.Register(c); err != nil {
			return err
		}
	}

	m.registered = true
	return nil
}

// observeKey records one probe sample.
func (m *busMetrics) observeKey(bus string, st KeyStatus, kind register.Kind) {
	ready := 0.0
	if st.Ready {
		ready = 1.0
	}

	switch kind {
	case register.KindData:
		m.dataReady.WithLabelValues(bus, st.Key).Set(ready)
		m.addWritesDelta(bus, st.Key, st.Writes)
	case register.KindCmd:
		m.cmdPending.WithLabelValues(bus, st.Key).Set(ready)
	}
}

func (m *busMetrics) addWritesDelta(bus, key string, writes uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := bus + "/" + key
	last := m.lastWrites[id]
	if writes >= last {
		m.writesTotal.WithLabelValues(bus, key).Add(float64(writes - last))
	} else {
		// Counter wrapped around uint32; count what we can see.
		m.writesTotal.WithLabelValues(bus, key).Add(float64(writes))
	}
	m.lastWrites[id] = writes
}

// observeSweep records one sweep's duration.
func (m *busMetrics) observeSweep(bus string, d time.Duration) {
	m.sweepDuration.WithLabelValues(bus).Observe(d.Seconds())
}

// setFootprint records a bus's static storage footprint. Called once at
// registration; the value never changes afterwards.
func (m *busMetrics) setFootprint(bus string, bytes uintptr) {
	m.footprintBytes.WithLabelValues(bus).Set(float64(bytes))
}
