package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/infrastructure/metrics"
)

func TestMonitor_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMonitor(reg)

	m.ObservePoll()
	m.ObservePoll()
	m.ObserveCapture("text")
	m.ObserveCapture("image")
	m.ObserveCapture("text")
	m.ObserveDuplicate()
	m.ObserveFailure(port.StagePayload)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Polls))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Captures.WithLabelValues("text")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Captures.WithLabelValues("image")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Duplicates))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues(port.StagePayload)))
}

func TestMonitor_RegisteredNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMonitor(reg)
	m.ObserveCapture("text")
	m.ObserveFailure(port.StageReadText)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "clipsage_monitor_polls_total")
	assert.Contains(t, names, "clipsage_monitor_captures_total")
	assert.Contains(t, names, "clipsage_monitor_duplicates_total")
	assert.Contains(t, names, "clipsage_monitor_failures_total")
}
