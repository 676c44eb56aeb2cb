// Package metrics defines and registers all custom Prometheus metrics for the
// job-search tracking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "futures"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (invalid credentials; infra errors are not counted here)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionChecksTotal counts check-session calls.
// Label:
//   - result: "active" or "none"
var SessionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_checks_total",
		Help:      "Total number of session checks, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// JobSearchesTotal counts catalog searches.
var JobSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_searches_total",
		Help:      "Total number of job catalog searches.",
	},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsCreatedTotal counts newly saved applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications created.",
	},
)

// ApplicationMutationsTotal counts status/notes updates and deletes.
// Label:
//   - op: "status", "notes", or "delete"
var ApplicationMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_mutations_total",
		Help:      "Total number of application mutations, by operation.",
	},
	[]string{"op"},
)

// ApplicationCacheTotal counts application-list cache lookups.
// Label:
//   - result: "hit" or "miss"
var ApplicationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_cache_total",
		Help:      "Total number of application cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
