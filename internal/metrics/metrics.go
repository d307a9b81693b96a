// Package metrics holds the Prometheus collectors of the server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HTTPRequests counts served requests by method, route pattern and status.
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "matjip_http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "route", "status"},
)

// HTTPDuration observes request latency by method and route pattern.
var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "matjip_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// TagAllocations counts successfully allocated account tags.
var TagAllocations = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "matjip_tag_allocations_total",
		Help: "Total number of account tags allocated",
	},
)

// TagAllocationRetries counts tag allocation attempts that had to be retried.
var TagAllocationRetries = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "matjip_tag_allocation_retries_total",
		Help: "Total number of retried tag allocation attempts",
	},
)

// BlobUploads counts profile icon uploads by outcome.
var BlobUploads = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "matjip_blob_uploads_total",
		Help: "Total number of blob uploads",
	},
	[]string{"status"},
)

// NewRegistry returns a registry holding the server collectors together
// with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	RegisterMetrics(reg)

	return reg
}

// RegisterMetrics registers the server collectors with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(TagAllocations)
	reg.MustRegister(TagAllocationRetries)
	reg.MustRegister(BlobUploads)
}

// Handler exposes the collectors of reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordTagAllocation records an allocated tag.
func RecordTagAllocation() {
	TagAllocations.Inc()
}

// RecordTagRetry records a single retried allocation attempt.
func RecordTagRetry() {
	TagAllocationRetries.Inc()
}

// RecordBlobUpload records an upload outcome; use the Status* constants.
func RecordBlobUpload(status string) {
	BlobUploads.WithLabelValues(status).Inc()
}
