package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/policy"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
)

type authorizerFunc func(ctx context.Context, in policy.Input) (bool, error)

func (f authorizerFunc) Allow(ctx context.Context, in policy.Input) (bool, error) { return f(ctx, in) }

func guarded(t *testing.T, authz middleware.Authorizer, id *middleware.Identity, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if id != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	middleware.PolicyGuard(authz, logger.NewNop())(ok).ServeHTTP(rec, req)
	return rec
}

func TestPolicyGuard_DefaultPolicy(t *testing.T) {
	engine, err := policy.New(context.Background(), "")
	require.NoError(t, err)

	admin := &middleware.Identity{UserID: uuid.New(), Role: "Administrator"}
	driver := &middleware.Identity{UserID: uuid.New(), Role: "Driver"}

	require.Equal(t, http.StatusNoContent, guarded(t, engine, admin, "/api/v1/users").Code)
	require.Equal(t, http.StatusForbidden, guarded(t, engine, driver, "/api/v1/users").Code)
	require.Equal(t, http.StatusNoContent, guarded(t, engine, driver, "/api/v1/users/"+driver.UserID.String()).Code)
	require.Equal(t, http.StatusUnauthorized, guarded(t, engine, nil, "/api/v1/users").Code)
}

func TestPolicyGuard_PassesInput(t *testing.T) {
	id := &middleware.Identity{UserID: uuid.New(), Role: "HrManager"}
	var got policy.Input
	authz := authorizerFunc(func(_ context.Context, in policy.Input) (bool, error) {
		got = in
		return true, nil
	})

	guarded(t, authz, id, "/api/v1/contracts?page_number=1")

	require.Equal(t, policy.Input{
		Method:  http.MethodGet,
		Path:    "/api/v1/contracts",
		Role:    "HrManager",
		Subject: id.UserID.String(),
	}, got)
}

func TestPolicyGuard_EvalError(t *testing.T) {
	authz := authorizerFunc(func(context.Context, policy.Input) (bool, error) {
		return false, errors.New("boom")
	})
	rec := guarded(t, authz, &middleware.Identity{UserID: uuid.New()}, "/api/v1/roles")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
