package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/metrics"
)

// Metrics counts requests and observes latency under a fixed route label,
// so unknown paths cannot blow up label cardinality.
func Metrics(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapWriter(w)

			next.ServeHTTP(sw, r)

			metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
