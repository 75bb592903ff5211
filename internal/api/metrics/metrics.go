// Package metrics defines and registers the custom Prometheus metrics for
// the LeafLink storefront API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "leaflink"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "locked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role the account was created with
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected protected requests.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_subject", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected protected requests, by failure kind.",
	},
	[]string{"reason"},
)

// PaymentsCapturedTotal counts captured checkouts.
var PaymentsCapturedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_captured_total",
		Help:      "Total number of payments captured at checkout.",
	},
)
