package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/policy"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
)

// Authorizer — решение о доступе (реализация: policy.Engine).
type Authorizer interface {
	Allow(ctx context.Context, in policy.Input) (bool, error)
}

// PolicyGuard пропускает запрос, только если правила разрешают его для роли из токена.
// Ставится после AuthMiddleware; без Identity отвечает 401.
func PolicyGuard(authz Authorizer, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				unauthorized(w, "unauthorized")
				return
			}

			allowed, err := authz.Allow(r.Context(), policy.Input{
				Method:  r.Method,
				Path:    r.URL.Path,
				Role:    id.Role,
				Subject: id.UserID.String(),
			})
			if err != nil {
				log.Error("policy evaluation failed", zap.Error(err), zap.String("path", r.URL.Path))
				writeError(w, http.StatusInternalServerError, "Internal", "internal error")
				return
			}
			if !allowed {
				writeError(w, http.StatusForbidden, "Forbidden", "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
