// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phoneinfo",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by path, method and status code",
		},
		[]string{"path", "method", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phoneinfo",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by path and method",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

// Metrics records a request counter and latency histogram for every route.
// The path label carries the registered route pattern, not the raw URI, to
// keep label cardinality bounded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			httpRequests.WithLabelValues(path, c.Request().Method, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(path, c.Request().Method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
