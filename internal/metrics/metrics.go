// Package metrics provides Prometheus metrics for the fileview server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fileview_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fileview_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Read metrics
	readBytesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fileview_read_bytes_served_total",
			Help: "Total bytes of file content returned by window reads",
		},
	)

	readsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fileview_reads_total",
			Help: "Total window reads",
		},
		[]string{"mode", "status"},
	)

	// Search metrics
	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fileview_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
	)

	searchMatchedFiles = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fileview_search_matched_files",
			Help:    "Files with at least one match per search",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fileview_searches_total",
			Help: "Total searches",
		},
		[]string{"status"},
	)

	// Write metrics
	writesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fileview_writes_total",
			Help: "Total write operations",
		},
		[]string{"op", "status"},
	)

	uploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fileview_upload_bytes_total",
			Help: "Total bytes stored by uploads",
		},
	)

	// Auth metrics
	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fileview_auth_attempts_total",
			Help: "Total authentication attempts",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRead records a window read. mode is "full" or "window".
func RecordRead(mode string, bytes int, success bool) {
	readsTotal.WithLabelValues(mode, statusLabel(success)).Inc()
	if success {
		readBytesServed.Add(float64(bytes))
	}
}

// RecordSearch records a finished search.
func RecordSearch(duration time.Duration, matchedFiles int, success bool) {
	searchDuration.Observe(duration.Seconds())
	searchesTotal.WithLabelValues(statusLabel(success)).Inc()
	if success {
		searchMatchedFiles.Observe(float64(matchedFiles))
	}
}

// RecordWrite records an append, upload or exists call.
func RecordWrite(op string, success bool) {
	writesTotal.WithLabelValues(op, statusLabel(success)).Inc()
}

// RecordUpload records the size of a stored upload.
func RecordUpload(bytes int64) {
	uploadBytes.Add(float64(bytes))
}

// RecordAuthAttempt records a login attempt.
func RecordAuthAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	authAttemptsTotal.WithLabelValues(result).Inc()
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
