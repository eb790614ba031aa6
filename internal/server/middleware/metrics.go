package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HTTPObserver принимает наблюдения о запросах (реализация: metrics.Metrics).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// MetricsMiddleware считает запросы по шаблону маршрута chi (/api/v1/users/{id}), не по сырому URL.
func MetricsMiddleware(obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := wrap(w)
			next.ServeHTTP(wr, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			obs.ObserveHTTP(r.Method, route, wr.StatusCode(), time.Since(start))
		})
	}
}
