package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
)

var _ service.Metrics = (*metrics.Metrics)(nil)

func TestMetrics_Exposition(t *testing.T) {
	m := metrics.New()

	m.ObserveOperation("passport", "create", service.OutcomeConflict, time.Now())
	m.IncClaimsSyncFailure("passport", "update")
	m.ObserveHTTP(http.MethodGet, "/api/v1/users/{id}", http.StatusOK, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `fleet_identity_operations_total{entity="passport",operation="create",outcome="conflict"} 1`)
	require.Contains(t, body, `fleet_identity_claims_sync_failures_total{entity="passport",operation="update"} 1`)
	require.Contains(t, body, `fleet_identity_http_requests_total{method="GET",route="/api/v1/users/{id}",status="200"} 1`)
	require.Contains(t, body, "go_goroutines")
}

// Два экземпляра не конфликтуют при регистрации
func TestMetrics_IndependentRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		_ = metrics.New()
		_ = metrics.New()
	})
}
