// Package metrics exposes Prometheus counters for the clipboard capture pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DylansGit/ClipSage/internal/application/port"
)

const namespace = "clipsage"

// Monitor holds the monitor pipeline metrics.
//
// Metrics:
//   - clipsage_monitor_polls_total - poll cycles run
//   - clipsage_monitor_captures_total{kind} - clips recorded
//   - clipsage_monitor_duplicates_total - text skipped as unchanged
//   - clipsage_monitor_failures_total{stage} - non-fatal failures per stage
type Monitor struct {
	Polls      prometheus.Counter
	Captures   *prometheus.CounterVec
	Duplicates prometheus.Counter
	Failures   *prometheus.CounterVec
}

var _ port.MonitorMetrics = (*Monitor)(nil)

// NewMonitor registers the monitor metrics with reg. A nil reg uses the
// default registerer, which may only be done once per process.
func NewMonitor(reg prometheus.Registerer) *Monitor {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Monitor{
		Polls: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "polls_total",
			Help:      "Total number of clipboard poll cycles",
		}),
		Captures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "captures_total",
			Help:      "Total number of clips recorded",
		}, []string{"kind"}),
		Duplicates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "duplicates_total",
			Help:      "Total number of unchanged texts skipped",
		}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "failures_total",
			Help:      "Total number of non-fatal pipeline failures",
		}, []string{"stage"}),
	}
}

func (m *Monitor) ObserveCapture(kind string) {
	m.Captures.WithLabelValues(kind).Inc()
}

func (m *Monitor) ObserveDuplicate() {
	m.Duplicates.Inc()
}

func (m *Monitor) ObserveFailure(stage string) {
	m.Failures.WithLabelValues(stage).Inc()
}

func (m *Monitor) ObservePoll() {
	m.Polls.Inc()
}
