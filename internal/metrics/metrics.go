// Package metrics defines the Prometheus metrics of the login screen.
//
// Metrics are registered with the default registry on import; serve them
// with promhttp.Handler().
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"loginscreen/internal/domain"
)

const namespace = "loginscreen"

// Submit results
const (
	ResultRejected = "rejected"
	ResultAccepted = "accepted"
	ResultIgnored  = "ignored"
)

// SubmitsTotal counts submit calls.
// Label:
//   - result: "rejected" (invalid input), "accepted" (went to loading) or
//     "ignored" (a login was already in flight)
var SubmitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submits_total",
		Help:      "Total number of login submits, by result.",
	},
	[]string{"result"},
)

// NotificationsTotal counts notifications emitted to the presentation layer.
// Labels:
//   - kind: "toast" or "snackbar"
//   - delivered: "true" when queued, "false" when the queue was full
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications emitted, by kind and delivery.",
	},
	[]string{"kind", "delivered"},
)

// ScreenTransitionsTotal counts screen state changes.
// Label:
//   - to: the state entered
var ScreenTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "screen_transitions_total",
		Help:      "Total number of screen state transitions, by target state.",
	},
	[]string{"to"},
)

// ActiveSessions tracks the number of open login screens.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Current number of open login screens.",
	},
)

// ObserveTransition records a transition into state
func ObserveTransition(state domain.ScreenState) {
	ScreenTransitionsTotal.WithLabelValues(string(state)).Inc()
}

// ObserveNotification records an emitted notification
func ObserveNotification(kind domain.NotificationKind, delivered bool) {
	d := "false"
	if delivered {
		d = "true"
	}
	NotificationsTotal.WithLabelValues(string(kind), d).Inc()
}
