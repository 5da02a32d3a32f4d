// Package metrics provides Prometheus metrics for the Firefly III MCP server.
// It tracks tool call counts, latencies, panics, and backend API performance.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "firefly_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// BackendAPILatency measures Firefly III API call latency by domain and action
	BackendAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "backend_api_latency_seconds",
		Help:      "Firefly III API call latency by domain and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"domain", "action"})

	// BackendAPIRequestsTotal counts Firefly III API requests
	BackendAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "backend_api_requests_total",
		Help:      "Total Firefly III API requests by domain, action and status",
	}, []string{"domain", "action", "status"})

	// BackendAPIErrors counts Firefly III API errors by HTTP status code
	BackendAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "backend_api_errors_total",
		Help:      "Firefly III API errors by domain, action and status code",
	}, []string{"domain", "action", "status_code"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordBackendCall records a Firefly III API round trip
func RecordBackendCall(domain, action string, duration float64, success bool, statusCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	BackendAPIRequestsTotal.WithLabelValues(domain, action, status).Inc()
	BackendAPILatency.WithLabelValues(domain, action).Observe(duration)
	if statusCode != "" {
		BackendAPIErrors.WithLabelValues(domain, action, statusCode).Inc()
	}
}
