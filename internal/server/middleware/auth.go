// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится аутентифицированный пользователь.
const identityKey ctxKey = "identity"

// Identity — то, что известно о вызывающем после проверки токена.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// JWTVerifier инкапсулирует параметры проверки JWT access-токенов.
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// WithIdentity кладёт пользователя в контекст.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext извлекает аутентифицированного пользователя из контекста.
//
// Возвращает false, если пользователь не аутентифицирован.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - кладёт Identity (sub, email, role) в context.Context
//
// В случае ошибки возвращает HTTP 401 Unauthorized.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := crypto.ParseAccessToken(tokenStr, v.SigningKey, v.Issuer, v.Audience)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					unauthorized(w, "token expired")
				case errors.Is(err, crypto.ErrInvalidIssuer), errors.Is(err, crypto.ErrInvalidAudience):
					unauthorized(w, err.Error())
				default:
					unauthorized(w, "invalid token")
				}
				return
			}

			userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
			if err != nil {
				unauthorized(w, crypto.ErrEmptySubject.Error())
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				UserID: userID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	writeError(w, http.StatusUnauthorized, "Unauthorized", msg)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(sm.ErrorResponse{Code: code, Message: msg})
}
