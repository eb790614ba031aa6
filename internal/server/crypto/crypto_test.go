package crypto_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
)

func testParams() crypto.Argon2Params {
	return crypto.Argon2Params{
		Time:      1,
		MemoryKiB: 32 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

const signingKey = "supersecretkeysupersecretkey123456"

// Хэширование и успешная проверка
func TestArgon2Hasher_OK(t *testing.T) {
	h := crypto.NewArgon2Hasher(testParams())

	hash, err := h.Hash("Pass123$")
	require.NoError(t, err)
	require.Contains(t, hash, "argon2id$v=19$")

	ok, err := h.Verify("Pass123$", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify("Pass123%", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

// Пустой пароль и битый хэш
func TestArgon2Hasher_Errors(t *testing.T) {
	h := crypto.NewArgon2Hasher(testParams())

	_, err := h.Hash("   ")
	require.ErrorIs(t, err, crypto.ErrEmptyPassword)

	_, err = h.Verify("x", "bcrypt$1$2")
	require.ErrorIs(t, err, crypto.ErrInvalidEncoded)

	_, err = h.Verify("x", "argon2id$v=19$m=x$salt$hash")
	require.ErrorIs(t, err, crypto.ErrInvalidEncoded)
}

func jwtConfig(ttl time.Duration) crypto.JWTConfig {
	return crypto.JWTConfig{Issuer: "fleet", Audience: "fleet-api", SigningKey: signingKey, AccessTTL: ttl}
}

// Токен содержит роль и claims, проверка проходит
func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := crypto.NewAccessToken("user-1", crypto.AccessClaims{
		Email:     "a@b.com",
		Role:      "Administrator",
		Birthdate: "2000-01-01",
	}, jwtConfig(time.Minute))
	require.NoError(t, err)

	claims, err := crypto.ParseAccessToken(token, signingKey, "fleet", "fleet-api")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "Administrator", claims.Role)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "2000-01-01", claims.Birthdate)
}

// Просроченный токен
func TestAccessToken_Expired(t *testing.T) {
	token, err := crypto.NewAccessToken("user-1", crypto.AccessClaims{}, jwtConfig(-time.Minute))
	require.NoError(t, err)

	_, err = crypto.ParseAccessToken(token, signingKey, "", "")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// Чужие issuer/audience и неверный ключ
func TestAccessToken_Rejected(t *testing.T) {
	token, err := crypto.NewAccessToken("user-1", crypto.AccessClaims{}, jwtConfig(time.Minute))
	require.NoError(t, err)

	_, err = crypto.ParseAccessToken(token, signingKey, "other", "")
	require.ErrorIs(t, err, crypto.ErrInvalidIssuer)

	_, err = crypto.ParseAccessToken(token, signingKey, "", "other")
	require.ErrorIs(t, err, crypto.ErrInvalidAudience)

	_, err = crypto.ParseAccessToken(token, "another-key-another-key-another-key", "", "")
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
