package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-matjip/internal/metrics"
)

// unmatchedRoute labels requests that matched no route, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

// withMetrics records the request count and latency per route pattern. The
// pattern is read after the request has been routed.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := newResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.RecordHTTPRequest(r.Method, route, mw.Status(), time.Since(start))
	})
}
