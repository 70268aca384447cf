// Package metrics defines and registers all custom Prometheus metrics for the
// dealer client. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; embedders expose them however they expose the rest of their metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealer"

// APIRequestsTotal counts requests issued against the dealer platform.
// Labels:
//   - endpoint: logical endpoint family (e.g. "auth_login", "cart", "orders")
//   - outcome: "ok", "api_error", "transport_error" or "session_expired"
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of requests issued against the dealer platform API.",
	},
	[]string{"endpoint", "outcome"},
)

// APIRequestDuration measures wall time per request, from build to decode.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of dealer platform API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// SessionExpiriesTotal counts forced logouts triggered by an expired or
// rejected bearer token.
var SessionExpiriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_expiries_total",
		Help:      "Total number of forced session clears caused by token expiry.",
	},
)

// FeedFetchSuppressedTotal counts notification fetches skipped by a cooldown
// gate or collapsed into an in-flight request.
// Label:
//   - gate: "feed_cooldown", "unread_cooldown" or "in_flight"
var FeedFetchSuppressedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_fetch_suppressed_total",
		Help:      "Total number of notification fetches suppressed before reaching the network.",
	},
	[]string{"gate"},
)
