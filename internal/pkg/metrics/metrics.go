// Package metrics defines all custom Prometheus metrics for the docqa API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics self-register with the default registry via promauto; the router
// exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "docqa"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenValidationsTotal counts bearer token validations performed by the
// auth middleware.
// Label:
//   - outcome: "success", "rejected" (bad or expired token), or "error"
//     (validation could not complete, e.g. the user store was unreachable)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by outcome.",
	},
	[]string{"outcome"},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsUploadedTotal counts successful document uploads.
// Label:
//   - content_type: MIME type reported by the client (e.g. "application/pdf")
var DocumentsUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of documents uploaded, by content type.",
	},
	[]string{"content_type"},
)

// DocumentsDeletedTotal counts successful document deletions.
var DocumentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_deleted_total",
		Help:      "Total number of documents deleted.",
	},
)

// ── Ingestion metrics ─────────────────────────────────────────────────────────

// IngestionProcessedTotal counts ingestion tasks that completed successfully.
var IngestionProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_processed_total",
		Help:      "Total number of ingestion tasks completed successfully.",
	},
)

// IngestionErrorsTotal counts ingestion tasks that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "status_update", "cancelled")
var IngestionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_errors_total",
		Help:      "Total number of ingestion tasks that failed processing.",
	},
	[]string{"reason"},
)

// IngestionDuration measures how long one ingestion task takes end-to-end.
var IngestionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of ingestion task processing from dequeue to completion.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// IngestionQueueDepth tracks the number of tasks waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var IngestionQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ingestion_queue_depth",
		Help:      "Current number of tasks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
