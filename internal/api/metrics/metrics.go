// Package metrics defines and registers all custom Prometheus metrics for
// the catalog service. It is the single source of truth for metric names,
// labels, and help strings. All metrics register themselves with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Mutation metrics ──────────────────────────────────────────────────────────

// EntityMutationsTotal counts successful entity writes.
// Labels:
//   - entity: "category", "product" or "topping"
//   - action: "create", "update" or "delete"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity mutations.",
	},
	[]string{"entity", "action"},
)

// ── Broker metrics ────────────────────────────────────────────────────────────

// EventsPublishedTotal counts events accepted by the broker.
// Label:
//   - event: the envelope event name (e.g. "product-created")
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of events successfully published to the broker.",
	},
	[]string{"event"},
)

// EventsPublishErrorsTotal counts publish attempts rejected by the broker.
var EventsPublishErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_publish_errors_total",
		Help:      "Total number of broker publish failures.",
	},
	[]string{"event"},
)

// ── Asset metrics ─────────────────────────────────────────────────────────────

// AssetUploadsTotal counts successful image uploads.
// Label:
//   - folder: destination folder in object storage ("products", "toppings")
var AssetUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_uploads_total",
		Help:      "Total number of images uploaded to object storage.",
	},
	[]string{"folder"},
)

// AssetCleanupErrorsTotal counts best-effort asset deletions that failed.
// These are logged and swallowed, so the counter is the only durable signal.
var AssetCleanupErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_cleanup_errors_total",
		Help:      "Total number of failed best-effort asset deletions.",
	},
)
