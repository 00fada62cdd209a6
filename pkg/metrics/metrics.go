// Package metrics exposes Prometheus metrics for the battnag daemon. The
// counters are process-lifetime observability only; the threshold evaluation
// itself keeps no memory of prior checks.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ChecksTotal counts threshold evaluations, including ones whose battery
// read failed.
var ChecksTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "battnag",
	Name:      "checks_total",
	Help:      "Total battery threshold checks performed.",
})

// CheckFailures counts battery reads that failed and were skipped.
var CheckFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "battnag",
	Name:      "check_failures_total",
	Help:      "Total battery reads that failed.",
})

// NotificationsTotal counts notification deliveries by kind (low, high).
var NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "battnag",
	Name:      "notifications_total",
	Help:      "Total notifications attempted, by kind.",
}, []string{"kind"})

// NotificationFailures counts notification deliveries that errored. They are
// never retried.
var NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "battnag",
	Name:      "notification_failures_total",
	Help:      "Total notification deliveries that failed.",
})

// BatteryPercent is the charge percentage from the last successful check.
var BatteryPercent = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "battnag",
	Name:      "battery_percent",
	Help:      "Battery charge percentage from the last successful check.",
})

// BatteryCharging is 1 when the last successful check saw AC power.
var BatteryCharging = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "battnag",
	Name:      "battery_charging",
	Help:      "Whether the battery was charging at the last successful check (1=yes, 0=no).",
})
