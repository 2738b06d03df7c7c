package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of currently active HTTP requests",
		},
	)

	interpretationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interpretations_total",
			Help: "Total interpretation requests by outcome",
		},
		[]string{"outcome"}, // served, rejected, failed
	)

	contentRecordsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "content_records_loaded",
			Help: "Number of content records currently loaded",
		},
		[]string{"corpus"},
	)
)

// Metrics returns a gin middleware that collects Prometheus metrics
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint itself
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		activeRequests.Inc()

		c.Next()

		activeRequests.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		// Route template, not raw path, to keep cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// CountInterpretation records one interpretation outcome
func CountInterpretation(outcome string) {
	interpretationsTotal.WithLabelValues(outcome).Inc()
}

// SetContentRecordsLoaded updates the loaded-record gauge for a corpus
func SetContentRecordsLoaded(corpus string, count float64) {
	contentRecordsLoaded.WithLabelValues(corpus).Set(count)
}
