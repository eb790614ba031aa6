package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
)

// Статус по умолчанию и размер
func TestResponseWriter_Write_DefaultStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &middleware.ResponseWriter{ResponseWriter: rr}

	body := []byte("hello")
	n, err := w.Write(body)

	require.NoError(t, err)
	require.Equal(t, len(body), n)
	require.Equal(t, http.StatusOK, w.Status)
	require.Equal(t, len(body), w.Size)
}

// вспомогательная функция
func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func observed(level zapcore.Level) (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &logger.Logger{Logger: zap.New(core)}, logs
}

// проверка корректного прохода статуса и тела через мидлу
func TestLoggerMiddleware(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)
	handler := middleware.LoggerMiddleware(log)(testHandler(http.StatusTeapot, "tea"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles?x=1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	require.Equal(t, "tea", rr.Body.String())

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/api/v1/roles?x=1", fields["uri"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.EqualValues(t, 3, fields["response_size"])
}

func TestLoggerMiddleware_ServerErrorIsError(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)
	handler := middleware.LoggerMiddleware(log)(testHandler(http.StatusInternalServerError, ""))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

// обработчик ничего не записал: в логе 200
func TestLoggerMiddleware_NoWrite(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)
	handler := middleware.LoggerMiddleware(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}
