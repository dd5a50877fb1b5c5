// Package metrics defines and registers all custom Prometheus metrics for
// the inova-industria API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "industria"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts that reached a terminal decision.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginThrottledTotal counts logins rejected by the failed-attempt throttle
// before any password derivation ran.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of login attempts rejected by the throttle.",
	},
)

// TokensIssuedTotal counts successfully signed identity tokens.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of identity tokens issued at login.",
	},
)

// AuthRejectionsTotal counts requests rejected by the authentication filter.
// Label:
//   - reason: "missing_credentials" or "invalid_token". Coarse on purpose;
//     the precise failure is only written to the server log.
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication filter.",
	},
	[]string{"reason"},
)

// ── Business metrics ──────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts created aggregates.
// Label:
//   - entity: "company", "client", "project", "activity", "subactivity"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of aggregates created, by entity type.",
	},
	[]string{"entity"},
)

// AuditEventsTotal counts audit-trail writes.
// Label:
//   - result: "ok", "error" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of auth audit events persisted, by result.",
	},
	[]string{"result"},
)
