// Package metrics defines all custom Prometheus metrics for the AIS auth
// service. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role assigned at creation ("user" or "admin")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered, by assigned role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failures collapsed, matching the API)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordVerificationsTotal counts verify-password calls from the internal
// backend.
// Label:
//   - result: "verified", "not_found", or "mismatch"
var PasswordVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_verifications_total",
		Help:      "Total number of password verification calls, by result.",
	},
	[]string{"result"},
)

// HashDuration measures how long a single bcrypt hash takes. Watch this when
// tuning BCRYPT_COST; the upper buckets matter more than the defaults suggest
// because bcrypt is intentionally slow.
var HashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of bcrypt password hashing.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)
