// Package metrics provides Prometheus metrics for the webcall-relay service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebCallsCreated tracks web calls successfully created per agent type.
	WebCallsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcall_calls_created_total",
			Help: "Total number of web calls created",
		},
		[]string{"agent_type"},
	)

	// WebCallFailures tracks failed token exchanges by reason.
	WebCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcall_call_failures_total",
			Help: "Total number of failed web call creations",
		},
		[]string{"reason"},
	)

	// VendorRequestDuration tracks latency of vendor API calls.
	VendorRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webcall_vendor_request_duration_seconds",
			Help:    "Duration of vendor session-creation requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)

	// HTTPRequests tracks served HTTP requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webcall_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webcall_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordWebCallCreated increments the creation counter.
func RecordWebCallCreated(agentType string) {
	WebCallsCreated.WithLabelValues(agentType).Inc()
}

// RecordWebCallFailure increments the failure counter.
func RecordWebCallFailure(reason string) {
	WebCallFailures.WithLabelValues(reason).Inc()
}

// ObserveVendorRequest records one vendor round trip.
func ObserveVendorRequest(d time.Duration, status string) {
	VendorRequestDuration.WithLabelValues(status).Observe(d.Seconds())
}
