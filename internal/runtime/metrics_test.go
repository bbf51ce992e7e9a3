package runtime

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mrunmoy/regbus/internal/register"
)

func TestBusMetricsRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newBusMetrics(reg)

	require.NoError(t, m.Register())
	require.NoError(t, m.Register())
}

func TestBusMetricsWritesExportedAsDeltas(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newBusMetrics(reg)
	require.NoError(t, m.Register())

	m.observeKey("fusion", KeyStatus{Key: "State", Ready: true, Writes: 3}, register.KindData)
	m.observeKey("fusion", KeyStatus{Key: "State", Ready: true, Writes: 10}, register.KindData)

	got := testutil.ToFloat64(m.writesTotal.WithLabelValues("fusion", "State"))
	assert.Equal(t, 10.0, got)

	ready := testutil.ToFloat64(m.dataReady.WithLabelValues("fusion", "State"))
	assert.Equal(t, 1.0, ready)
}

func TestBusMetricsWritesSurviveCounterWrap(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newBusMetrics(reg)
	require.NoError(t, m.Register())

	m.observeKey("fusion", KeyStatus{Key: "State", Writes: 4294967290}, register.KindData)
	// The uint32 channel counter wrapped around.
	m.observeKey("fusion", KeyStatus{Key: "State", Writes: 5}, register.KindData)

	got := testutil.ToFloat64(m.writesTotal.WithLabelValues("fusion", "State"))
	assert.Equal(t, 4294967295.0, got)
}

func TestBusMetricsCommandPendingGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newBusMetrics(reg)
	require.NoError(t, m.Register())

	m.observeKey("fusion", KeyStatus{Key: "Reset", Ready: true}, register.KindCmd)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cmdPending.WithLabelValues("fusion", "Reset")))

	m.observeKey("fusion", KeyStatus{Key: "Reset", Ready: false}, register.KindCmd)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.cmdPending.WithLabelValues("fusion", "Reset")))
}

func TestBusMetricsFootprintAndSweep(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newBusMetrics(reg)
	require.NoError(t, m.Register())

	m.setFootprint("fusion", 96)
	assert.Equal(t, 96.0, testutil.ToFloat64(m.footprintBytes.WithLabelValues("fusion")))

	m.observeSweep("fusion", 50*time.Microsecond)
	count := testutil.CollectAndCount(m.sweepDuration)
	assert.Equal(t, 1, count)
}
