package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelOutcome},
	)

	ForcedJackpots = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameForcedJackpots,
			Help: HelpTextForcedJackpots,
		},
	)

	CoinsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsWagered,
			Help: HelpTextCoinsWagered,
		},
	)

	CoinsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsAwarded,
			Help: HelpTextCoinsAwarded,
		},
	)

	ResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResetsTotal,
			Help: HelpTextResetsTotal,
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)
)
