package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
		[]string{"service"},
	)
)

// MetricsMiddleware collects Prometheus request metrics labelled by route pattern
type MetricsMiddleware struct {
	serviceName string
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(serviceName string) *MetricsMiddleware {
	return &MetricsMiddleware{
		serviceName: serviceName,
	}
}

// Handle records count, latency and in-flight gauges for each request
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		httpRequestsInFlight.WithLabelValues(m.serviceName).Inc()
		defer httpRequestsInFlight.WithLabelValues(m.serviceName).Dec()

		// Commit the error response here so the recorded status is the real one.
		if err := next(c); err != nil {
			c.Error(err)
		}

		routePattern := c.Path()
		if routePattern == "" {
			routePattern = "unknown"
		}
		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method

		httpRequestsTotal.WithLabelValues(m.serviceName, method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(m.serviceName, method, routePattern, status).Observe(time.Since(start).Seconds())

		return nil
	}
}
