// Логирование HTTP-запросов
package middleware

import (
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
)

type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(status int) {
	if w.Status == 0 {
		w.Status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	size, err := w.ResponseWriter.Write(b)
	w.Size += size
	return size, err
}

// StatusCode — статус ответа; обработчик, который ничего не записал, отдал 200.
func (w *ResponseWriter) StatusCode() int {
	if w.Status == 0 {
		return http.StatusOK
	}
	return w.Status
}

// wrap не оборачивает повторно, чтобы соседние middleware видели один и тот же статус.
func wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

func LoggerMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := wrap(w)
			next.ServeHTTP(wr, r)

			duration := time.Since(start).Seconds() * 1000
			log.LogRequest(r.Method, r.RequestURI, wr.StatusCode(), wr.Size, duration)
		})
	}
}
