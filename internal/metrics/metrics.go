// Package metrics provides Prometheus metrics for the sync engine and its
// local HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusNoop    = "noop"
)

var (
	// Sync operation metrics
	syncOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itemsync_operations_total",
			Help: "Total number of sync operations by kind and outcome",
		},
		[]string{"op", "status"},
	)

	syncOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itemsync_operation_duration_seconds",
			Help:    "Sync operation duration in seconds, lock wait excluded",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	lockWaitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itemsync_lock_wait_seconds",
			Help:    "Time spent waiting for the sync lock",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Blob transfer metrics
	blobBytesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itemsync_blob_bytes_uploaded_total",
			Help: "Total snapshot bytes uploaded to the remote store",
		},
	)

	blobBytesDownloaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itemsync_blob_bytes_downloaded_total",
			Help: "Total snapshot bytes downloaded from the remote store",
		},
	)

	// HTTP API metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itemsync_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itemsync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordOperation records the outcome and duration of one sync operation.
func RecordOperation(op, status string, duration time.Duration) {
	syncOperationsTotal.WithLabelValues(op, status).Inc()
	syncOperationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordLockWait records how long an operation waited for the sync lock.
func RecordLockWait(duration time.Duration) {
	lockWaitDuration.Observe(duration.Seconds())
}

// RecordBlobUpload records bytes sent to the remote store.
func RecordBlobUpload(bytes int) {
	blobBytesUploaded.Add(float64(bytes))
}

// RecordBlobDownload records bytes received from the remote store.
func RecordBlobDownload(bytes int) {
	blobBytesDownloaded.Add(float64(bytes))
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns HTTP middleware that records request metrics. The path
// label is the matched chi route pattern, so ids in URLs do not explode the
// label space.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		RecordHTTPRequest(r.Method, path, rw.statusCode, time.Since(start))
	})
}
