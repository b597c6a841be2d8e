package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "thexempt"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

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
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	rateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		},
		[]string{"limiter"},
	)

	matchScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "match_score",
			Help:      "Match score assigned to new applications.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		},
	)

	contributionPoints = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reputation",
			Name:      "points_awarded_total",
			Help:      "Reputation points awarded through contributions.",
		},
	)

	badgesAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reputation",
			Name:      "badges_awarded_total",
			Help:      "Badges newly awarded to users.",
		},
		[]string{"badge"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		rateLimited,
		matchScores,
		contributionPoints,
		badgesAwarded,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(method, route string, status int, dur time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

func RecordRateLimited(limiter string) {
	rateLimited.WithLabelValues(limiter).Inc()
}

func RecordMatchScore(score int) {
	matchScores.Observe(float64(score))
}

func RecordContribution(points int, newBadges []string) {
	if points > 0 {
		contributionPoints.Add(float64(points))
	}
	for _, b := range newBadges {
		badgesAwarded.WithLabelValues(b).Inc()
	}
}
