// Package metrics defines and registers all custom Prometheus metrics
// for the academy API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto; the router exposes them on
// /metrics together with the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rhythmic"

// TokensIssuedTotal counts bearer tokens issued via POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// AuthFailuresTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "missing_header", "bad_header", or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// RoleChecksTotal counts role-gate decisions.
// Labels:
//   - role: the required role ("Admin" or "Instructor")
//   - result: "allowed" or "denied"
var RoleChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_checks_total",
		Help:      "Total number of role-gate decisions, by required role and result.",
	},
	[]string{"role", "result"},
)

// PaymentIntentsTotal counts payment-intent creation attempts.
// Label:
//   - status: "created" or "failed"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent creation attempts.",
	},
	[]string{"status"},
)

// AdmissionsCreatedTotal counts enrollment records created.
var AdmissionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admissions_created_total",
		Help:      "Total number of admission records created.",
	},
)
