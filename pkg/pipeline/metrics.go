package pipeline

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the digest pipeline.
type Metrics struct {
	InvocationsTotal    *prometheus.CounterVec
	StageSeconds        *prometheus.HistogramVec
	RankIterations      *prometheus.HistogramVec
	NonConvergenceTotal *prometheus.CounterVec
	SegmentsIn          prometheus.Histogram
	TurnsOut            prometheus.Histogram
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *Metrics
)

// DefaultMetrics returns the process-wide metrics on the default registerer.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// NewMetrics creates a new set of pipeline metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		InvocationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digest_invocations_total",
				Help: "Total pipeline invocations by outcome",
			},
			[]string{"status"},
		),
		StageSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "digest_stage_seconds",
				Help:    "Latency per pipeline stage",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"stage"},
		),
		RankIterations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "digest_rank_iterations",
				Help:    "Iterations used by the ranking fixed point",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 200},
			},
			[]string{"graph"},
		),
		NonConvergenceTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digest_rank_nonconvergence_total",
				Help: "Ranking runs that hit the iteration cap before epsilon",
			},
			[]string{"graph"},
		),
		SegmentsIn: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "digest_asr_segments",
				Help:    "ASR segment count per invocation",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		TurnsOut: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "digest_conversation_turns",
				Help:    "Conversation turn count per invocation",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
			},
		),
	}
}
