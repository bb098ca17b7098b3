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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Venture Metrics
var (
	TurnsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTurnsResolved,
			Help: HelpTextTurnsResolved,
		},
		[]string{LabelDirection},
	)

	TurnsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTurnsSkipped,
			Help: HelpTextTurnsSkipped,
		},
		[]string{LabelReason},
	)

	VentureTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVentureTransitions,
			Help: HelpTextVentureTransitions,
		},
		[]string{LabelType},
	)

	CoverageOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoverageOutcomes,
			Help: HelpTextCoverageOutcomes,
		},
		[]string{LabelStatus},
	)

	GoldIncome = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldIncome,
			Help: HelpTextGoldIncome,
		},
	)

	GoldOutgo = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldOutgo,
			Help: HelpTextGoldOutgo,
		},
	)

	BoonsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoonsPurchased,
			Help: HelpTextBoonsPurchased,
		},
	)

	TreasuryClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreasuryClaimed,
			Help: HelpTextTreasuryClaimed,
		},
	)

	ActorTurnDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameActorTurnDuration,
			Help:    HelpTextActorTurnDuration,
			Buckets: TurnDurationBuckets,
		},
	)

	DuplicateTriggers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateTriggers,
			Help: HelpTextDuplicateTriggers,
		},
	)

	TurnQueueRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTurnQueueRejections,
			Help: HelpTextTurnQueueRejections,
		},
	)
)
