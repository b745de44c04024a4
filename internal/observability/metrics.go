package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	httpRequestsTotal    *prometheus.CounterVec
	httpLatencySeconds   *prometheus.HistogramVec
	uploadsStoredTotal   *prometheus.CounterVec
	uploadsRejectedTotal *prometheus.CounterVec
	uploadLatencySecs    prometheus.Histogram
	papersCreatedTotal   prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the service.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "examdesk_http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "examdesk_http_latency_seconds",
			Help:    "Latency distribution for HTTP requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		uploadsStoredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "examdesk_uploads_stored_total",
			Help: "Total number of files written to the content directory.",
		}, []string{"mime_type"})

		uploadsRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "examdesk_uploads_rejected_total",
			Help: "Total number of uploads rejected before storage.",
		}, []string{"reason"})

		uploadLatencySecs = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "examdesk_upload_latency_seconds",
			Help:    "Latency distribution for file intake.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		})

		papersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "examdesk_question_papers_created_total",
			Help: "Total number of question paper records created by publishes.",
		})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, uploadsStoredTotal, uploadsRejectedTotal, uploadLatencySecs, papersCreatedTotal)
	})
}

// HTTPRequests exposes the counter for served requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for served requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// UploadsStored exposes the counter for stored uploads.
func UploadsStored() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadsStoredTotal
}

// UploadsRejected exposes the counter for rejected uploads.
func UploadsRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadsRejectedTotal
}

// UploadLatency exposes the histogram for file intake duration.
func UploadLatency() prometheus.Histogram {
	RegisterMetrics()
	return uploadLatencySecs
}

// PapersCreated exposes the counter for created question paper rows.
func PapersCreated() prometheus.Counter {
	RegisterMetrics()
	return papersCreatedTotal
}
