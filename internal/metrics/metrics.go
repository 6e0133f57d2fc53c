// Package metrics exposes counters and histograms for netlink activity,
// adapted from the teacher's internal/observability/metrics.go (there
// tracking HTTP and seed-proxy traffic; here tracking netlink request
// and notification traffic instead). Registration happens lazily, on
// the first recorded request or notification or when cmd/dpll starts
// serving metrics, so an invocation that records nothing never
// registers.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpllctl",
			Subsystem: "netlink",
			Name:      "requests_total",
			Help:      "Total netlink requests sent, by command and object.",
		},
		[]string{"object", "command", "outcome"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dpllctl",
			Subsystem: "netlink",
			Name:      "request_duration_seconds",
			Help:      "Netlink request/reply round trip duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"object", "command"},
	)
	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpllctl",
			Subsystem: "monitor",
			Name:      "events_total",
			Help:      "Notification events received by kind.",
		},
		[]string{"kind"},
	)
)

// Register installs every collector with the default registry. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requests, requestDuration, notifications)
	})
}

// RecordRequest records the outcome and duration of one netlink
// request/reply round trip. outcome is "ok", "kernel-error", or
// "transport-error".
func RecordRequest(object, command, outcome string, duration time.Duration) {
	Register()
	requests.WithLabelValues(object, command, outcome).Inc()
	requestDuration.WithLabelValues(object, command).Observe(duration.Seconds())
}

// RecordNotification records one delivered or skipped notification
// event by kind tag (e.g. "[PIN_CHANGE]", "unknown").
func RecordNotification(kind string) {
	Register()
	notifications.WithLabelValues(kind).Inc()
}

// Handler is the path metrics are served on when DPLLCTL_METRICS_ADDR
// is set.
// cmd/dpll wires promhttp.Handler() at this path itself, so this
// package stays free of an HTTP dependency.
const Handler = "/metrics"
