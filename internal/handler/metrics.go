package handler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_addons",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed checkout events",
		},
		[]string{"type"},
	)

	eventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_addons",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed checkout event processing attempts",
		},
		[]string{"type"},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_addons",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_addons",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_addons",
			Subsystem: "kafka_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_addons",
			Subsystem: "kafka_consumer",
			Name:      "events_in_progress",
			Help:      "Number of events currently being processed",
		},
	)
)

var (
	hookRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_addons",
			Subsystem: "http",
			Name:      "hook_requests_total",
			Help:      "Total number of host hook calls",
		},
		[]string{"hook", "status"},
	)

	hookRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout_addons",
			Subsystem: "http",
			Name:      "hook_request_duration_seconds",
			Help:      "Histogram of host hook durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"hook"},
	)

	hookRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_addons",
			Subsystem: "http",
			Name:      "hook_requests_in_progress",
			Help:      "Number of in-progress host hook calls",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,

		hookRequestTotal,
		hookRequestDuration,
		hookRequestsInProgress,
	)
}

// requestTimer records one hook call, status defaults to "ok".
type requestTimer struct {
	hook   string
	status string
	start  time.Time
}

func newRequestTimer(hook string) *requestTimer {
	hookRequestsInProgress.Inc()
	return &requestTimer{hook: hook, status: "ok", start: time.Now()}
}

func (t *requestTimer) observe() {
	hookRequestsInProgress.Dec()
	hookRequestTotal.WithLabelValues(t.hook, t.status).Inc()
	hookRequestDuration.WithLabelValues(t.hook).Observe(time.Since(t.start).Seconds())
}
