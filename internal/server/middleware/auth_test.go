package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/middleware"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

const signingKey = "supersecretkeysupersecretkey123456"

func jwtConfig(ttl time.Duration) crypto.JWTConfig {
	return crypto.JWTConfig{Issuer: "fleet", Audience: "fleet-api", SigningKey: signingKey, AccessTTL: ttl}
}

func issue(t *testing.T, subject string, cfg crypto.JWTConfig) string {
	t.Helper()
	tok, err := crypto.NewAccessToken(subject, crypto.AccessClaims{Email: "a@b.c", Role: "Administrator"}, cfg)
	require.NoError(t, err)
	return tok
}

// echoIdentity отдаёт Identity из контекста, чтобы проверить, что положил middleware.
func echoIdentity(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.IdentityFromContext(r.Context())
		require.True(t, ok)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":   id.UserID.String(),
			"email": id.Email,
			"role":  id.Role,
		})
	})
}

func TestExtractBearer(t *testing.T) {
	require.Equal(t, "abc", middleware.ExtractBearer("Bearer abc"))
	require.Equal(t, "abc", middleware.ExtractBearer("  bearer   abc "))
	require.Empty(t, middleware.ExtractBearer("Basic abc"))
	require.Empty(t, middleware.ExtractBearer("Bearer"))
	require.Empty(t, middleware.ExtractBearer(""))
}

func TestAuthMiddleware_OK(t *testing.T) {
	v := middleware.NewJWTVerifier(signingKey, "fleet", "fleet-api")
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, userID.String(), jwtConfig(time.Minute)))
	rec := httptest.NewRecorder()

	v.AuthMiddleware()(echoIdentity(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, userID.String(), got["sub"])
	require.Equal(t, "a@b.c", got["email"])
	require.Equal(t, "Administrator", got["role"])
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	userID := uuid.New().String()

	cases := []struct {
		name     string
		verifier *middleware.JWTVerifier
		header   string
		message  string
	}{
		{
			name:     "no header",
			verifier: middleware.NewJWTVerifier(signingKey, "fleet", "fleet-api"),
			message:  "missing bearer token",
		},
		{
			name:     "expired",
			verifier: middleware.NewJWTVerifier(signingKey, "fleet", "fleet-api"),
			header:   "Bearer " + issue(t, userID, jwtConfig(-time.Minute)),
			message:  "token expired",
		},
		{
			name:     "wrong key",
			verifier: middleware.NewJWTVerifier("another-key-another-key-another-key", "fleet", "fleet-api"),
			header:   "Bearer " + issue(t, userID, jwtConfig(time.Minute)),
			message:  "invalid token",
		},
		{
			name:     "wrong audience",
			verifier: middleware.NewJWTVerifier(signingKey, "fleet", "other"),
			header:   "Bearer " + issue(t, userID, jwtConfig(time.Minute)),
			message:  "invalid token audience",
		},
		{
			name:     "subject not uuid",
			verifier: middleware.NewJWTVerifier(signingKey, "fleet", "fleet-api"),
			header:   "Bearer " + issue(t, "admin", jwtConfig(time.Minute)),
			message:  "invalid token subject",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("next must not be called")
			})
			tc.verifier.AuthMiddleware()(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			var body sm.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, "Unauthorized", body.Code)
			require.Equal(t, tc.message, body.Message)
		})
	}
}
