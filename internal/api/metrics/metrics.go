// Package metrics defines and registers all custom Prometheus metrics for the
// Lumina storefront API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// CartOperationsTotal counts cart mutations by action.
// Label:
//   - action: "add", "update", "remove", "clear", "toggle"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart mutations, by action.",
	},
	[]string{"action"},
)

// PaymentsTotal counts payment round trips by outcome.
// Label:
//   - result: "success" or "rejected"
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of payment attempts, by result.",
	},
	[]string{"result"},
)

// PaymentDuration measures the gateway round trip, including the simulated
// latency.
var PaymentDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_duration_seconds",
		Help:      "Duration of payment processing from submission to outcome.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// OrdersPlacedTotal counts successfully committed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders committed to the session.",
	},
)

// NotificationsShownTotal counts notifications created by the store.
// Label:
//   - kind: "success" or "error"
var NotificationsShownTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_shown_total",
		Help:      "Total number of notifications shown to the user, by kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts completed logins.
// Label:
//   - mode: "credentials" or "demo"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of completed logins, by mode.",
	},
	[]string{"mode"},
)
