package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Count of HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// metricsMiddleware records request counts and latencies, labelled by the
// matched route (not the raw URL, to keep cardinality bounded).
func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			status := ctx.Response().Status
			if err != nil {
				if herr, ok := err.(*echo.HTTPError); ok {
					status = herr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			requestsTotal.WithLabelValues(ctx.Request().Method, path, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(ctx.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func metricsHandler() http.Handler {
	return promhttp.Handler()
}
