package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-donate/internal/domain"
)

const namespace = "ff_donate"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route"},
	)

	entitiesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of campaigns, posts and comments created.",
		},
		[]string{"entity"},
	)

	donationsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "recorded_total",
			Help:      "Total number of donations recorded.",
		},
		[]string{"network"},
	)

	donatedAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "amount_total",
			Help:      "Sum of recorded donation amounts.",
		},
		[]string{"network"},
	)

	likesToggled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "social",
			Name:      "likes_toggled_total",
			Help:      "Total number of like state changes.",
		},
		[]string{"action"},
	)
)

const (
	ENTITY_CAMPAIGN = "campaign"
	ENTITY_POST     = "post"
	ENTITY_COMMENT  = "comment"

	ACTION_LIKE   = "like"
	ACTION_UNLIKE = "unlike"
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		entitiesCreated,
		donationsRecorded,
		donatedAmount,
		likesToggled,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request in flight and returns the function that records its outcome.
func RequestStarted(method string) func(route string, status int) {
	start := time.Now()
	httpInFlight.Inc()

	return func(route string, status int) {
		httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordCreated counts a created campaign, post or comment.
func RecordCreated(entity string) {
	entitiesCreated.WithLabelValues(entity).Inc()
}

// RecordDonation counts a recorded donation and its amount.
func RecordDonation(network domain.Network, amount float64) {
	donationsRecorded.WithLabelValues(string(network)).Inc()
	if amount > 0 {
		donatedAmount.WithLabelValues(string(network)).Add(amount)
	}
}

// RecordLikeToggle counts a like being added or removed.
func RecordLikeToggle(liked bool) {
	action := ACTION_UNLIKE
	if liked {
		action = ACTION_LIKE
	}
	likesToggled.WithLabelValues(action).Inc()
}
