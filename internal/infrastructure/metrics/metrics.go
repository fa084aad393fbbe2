package metrics

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushRetries = 3

// Metrics holds all Prometheus metrics for crediting runs.
type Metrics struct {
	// Run metrics
	RunsStarted prometheus.Counter
	RunsSettled prometheus.Counter
	RunsFailed  prometheus.Counter
	InputErrors prometheus.Counter
	RunDuration prometheus.Histogram

	// Reconciliation metrics
	BreaksRecorded  *prometheus.CounterVec
	PostingsWritten prometheus.Counter

	registry *prometheus.Registry
}

// New creates all metrics on a private registry so a batch process never
// collides with the global one.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		RunsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "divrec_runs_started_total",
			Help: "Total number of crediting runs started",
		}),
		RunsSettled: factory.NewCounter(prometheus.CounterOpts{
			Name: "divrec_runs_settled_total",
			Help: "Total number of crediting runs that settled",
		}),
		RunsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "divrec_runs_failed_total",
			Help: "Total number of crediting runs that failed reconciliation",
		}),
		InputErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "divrec_input_errors_total",
			Help: "Total number of runs rejected on input validation",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "divrec_run_duration_seconds",
			Help:    "Duration of crediting runs",
			Buckets: prometheus.DefBuckets,
		}),
		BreaksRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "divrec_breaks_recorded_total",
				Help: "Total number of reconciliation breaks by type",
			},
			[]string{"break_type"},
		),
		PostingsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "divrec_postings_written_total",
			Help: "Total number of cash postings written to credit files",
		}),
		registry: registry,
	}
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push delivers the collected metrics to a Pushgateway. It is a no-op when
// url is empty. Pushes are retried; a batch run must not fail because the
// gateway blipped, so callers treat the returned error as a warning.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}

	pusher := push.New(url, job).Gatherer(m.registry)

	operation := func() error {
		return pusher.PushContext(ctx)
	}

	policy := backoff.WithMaxRetries(backoff.WithContext(backoff.NewExponentialBackOff(), ctx), pushRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
