// Package metrics defines and registers the custom Prometheus metrics for
// the inventory API. It is the single source of truth for metric names,
// labels, and help strings. Collectors register themselves with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ims"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the auth gates.
// Label:
//   - reason: "unauthorized" (no/invalid token) or "forbidden" (wrong role)
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by auth middleware, labelled by reason.",
	},
	[]string{"reason"},
)

// OrdersCreatedTotal counts newly created orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrderStatusUpdatesTotal counts order status transitions.
// Label:
//   - status: the new status applied ("PENDING", "COMPLETED", "REJECTED")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of order status updates, labelled by new status.",
	},
	[]string{"status"},
)
