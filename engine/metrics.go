package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mlindh/structlint/structlint"
)

// Metrics holds the engine's Prometheus metrics.
type Metrics struct {
	// FilesCheckedTotal counts files submitted to Run.
	FilesCheckedTotal prometheus.Counter
	// ViolationsTotal counts emitted violations by rule and severity.
	ViolationsTotal *prometheus.CounterVec
	// CheckDuration observes per-file check duration in seconds.
	CheckDuration prometheus.Histogram
	// RuleFailuresTotal counts rules that faulted while checking a file.
	RuleFailuresTotal *prometheus.CounterVec
}

// NewMetrics creates the engine metrics and registers them on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		FilesCheckedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "structlint_files_checked_total",
			Help: "Total number of files checked",
		}),
		ViolationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "structlint_violations_total",
				Help: "Total number of violations found",
			},
			[]string{"rule", "severity"},
		),
		CheckDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "structlint_check_duration_seconds",
			Help:    "Per-file check duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		RuleFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "structlint_rule_failures_total",
				Help: "Total number of rule internal failures",
			},
			[]string{"rule"},
		),
	}

	registry.MustRegister(
		m.FilesCheckedTotal,
		m.ViolationsTotal,
		m.CheckDuration,
		m.RuleFailuresTotal,
	)
	return m
}

func (m *Metrics) observeCheck(duration time.Duration, violations []structlint.Violation) {
	m.CheckDuration.Observe(duration.Seconds())
	for _, violation := range violations {
		m.ViolationsTotal.WithLabelValues(violation.Rule, violation.Severity.String()).Inc()
	}
}
