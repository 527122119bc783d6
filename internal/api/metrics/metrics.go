// Package metrics defines and registers all custom Prometheus metrics for the
// reelhub API. It is the single source of truth for metric names, labels, and
// help strings. All metrics register with the default registry at package
// load, which echoprometheus exposes on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reelhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. Failure reasons are recorded here even
// though the HTTP response collapses them into one generic message.
// Label:
//   - result: "success", "missing_credentials", "no_such_user", "invalid_password", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateDeniedTotal counts requests the access gate rejected.
// Label:
//   - mode: "redirect" (browser navigation) or "unauthorized" (API response)
var GateDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denied_total",
		Help:      "Total number of requests denied by the access gate.",
	},
	[]string{"mode"},
)

// ── Video metrics ─────────────────────────────────────────────────────────────

// VideosCreatedTotal counts stored video metadata records.
var VideosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_created_total",
		Help:      "Total number of video records created.",
	},
)

// UploadTicketsTotal counts issued upload-authorization tickets.
// Label:
//   - provider: "imagekit" or "s3"
var UploadTicketsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_tickets_total",
		Help:      "Total number of upload tickets issued, by media provider.",
	},
	[]string{"provider"},
)
