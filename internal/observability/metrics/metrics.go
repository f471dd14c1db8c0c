// Package metrics exposes the application's prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the application-level instruments.
type Metrics struct {
	ExportAttempts  prometheus.Counter
	ExportFallbacks prometheus.Counter
	ExportFailures  prometheus.Counter
	CaptureDuration prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ExportAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "speedybill_export_attempts_total",
			Help: "PDF export pipeline runs started.",
		}),
		ExportFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "speedybill_export_fallbacks_total",
			Help: "Exports that retried with the fallback rasterization strategy.",
		}),
		ExportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "speedybill_export_failures_total",
			Help: "Exports that failed after both rasterization strategies.",
		}),
		CaptureDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "speedybill_export_capture_duration_seconds",
			Help:    "Time spent rasterizing the export capture.",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "speedybill_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "speedybill_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.ExportAttempts,
		m.ExportFallbacks,
		m.ExportFailures,
		m.CaptureDuration,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// GinMiddleware records per-route request counts and latency.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
