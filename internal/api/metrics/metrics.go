// Package metrics defines the custom Prometheus metrics of the tour API.
// All metrics are registered with the default registry on package init and
// exposed on /metrics next to the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tours"

// ── Query metrics ─────────────────────────────────────────────────────────────

// TourQueriesTotal counts tour listings.
// Labels:
//   - sort_by: "none", "name" or "price"
//   - result: "ok" or "error"
var TourQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of tour listings, by sort key and result.",
	},
	[]string{"sort_by", "result"},
)

// TourQueryDuration measures a tour listing end-to-end. The name sort loads
// the whole filtered set, so it is the one to watch.
var TourQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of tour listings, by sort key.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"sort_by"},
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

// TourMutationsTotal counts tour writes.
// Labels:
//   - operation: "create", "update" or "delete"
//   - result: "ok", "forbidden", "invalid", "not_found" or "error"
var TourMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of tour mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// UploadsTotal counts image uploads by result ("ok", "forbidden", "error").
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image uploads, by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", "throttled" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthResolutionsTotal counts bearer token resolutions per request.
// Label:
//   - result: "anonymous" (no token), "rejected" (token did not resolve) or "authenticated"
var AuthResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_resolutions_total",
		Help:      "Total number of bearer token resolutions, by result.",
	},
	[]string{"result"},
)
