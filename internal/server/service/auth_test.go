package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/claims"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

var testJWT = crypto.JWTConfig{
	Issuer:     "fleet-identity",
	Audience:   "fleet-api",
	SigningKey: "supersecretkeysupersecretkey123456",
	AccessTTL:  time.Hour,
}

func TestAuthService_Token(t *testing.T) {
	ctx := context.Background()
	hasher := testHasher()
	hash, err := hasher.Hash("Secret#123")
	require.NoError(t, err)

	user := models.User{ID: uuid.New(), Email: "driver@example.com", PasswordHash: hash, Role: models.RoleDriver}

	t.Run("claims in token", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		d.claims.EXPECT().GetClaims(ctx, user.ID).Return([]models.Claim{
			{Type: claims.TypeEmail, Value: user.Email},
			{Type: claims.TypeGivenName, Value: "Ivan"},
			{Type: claims.TypeFamilyName, Value: "Ivanov"},
			{Type: claims.TypeBirthdate, Value: "2000-01-01"},
		}, nil)

		tok, err := svc.Token(ctx, " "+user.Email+" ", "Secret#123")
		require.NoError(t, err)
		require.Equal(t, "Bearer", tok.TokenType)
		require.EqualValues(t, 3600, tok.ExpiresIn)

		parsed, err := crypto.ParseAccessToken(tok.AccessToken, testJWT.SigningKey, testJWT.Issuer, testJWT.Audience)
		require.NoError(t, err)
		require.Equal(t, user.ID.String(), parsed.Subject)
		require.Equal(t, models.RoleDriver, parsed.Role)
		require.Equal(t, "Ivan", parsed.GivenName)
		require.Equal(t, "Ivanov", parsed.FamilyName)
		require.Equal(t, "2000-01-01", parsed.Birthdate)
	})

	// несколько claims одного типа: берётся первый
	t.Run("first claim of type wins", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		d.claims.EXPECT().GetClaims(ctx, user.ID).Return([]models.Claim{
			{Type: claims.TypeBirthdate, Value: "1985-03-03"},
			{Type: claims.TypeBirthdate, Value: "1990-05-05"},
		}, nil)

		tok, err := svc.Token(ctx, user.Email, "Secret#123")
		require.NoError(t, err)

		parsed, err := crypto.ParseAccessToken(tok.AccessToken, testJWT.SigningKey, testJWT.Issuer, testJWT.Audience)
		require.NoError(t, err)
		require.Equal(t, "1985-03-03", parsed.Birthdate)
	})

	// без паспорта в claims только email; email в токене всё равно есть
	t.Run("no passport claims", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		d.claims.EXPECT().GetClaims(ctx, user.ID).Return(nil, nil)

		tok, err := svc.Token(ctx, user.Email, "Secret#123")
		require.NoError(t, err)

		parsed, err := crypto.ParseAccessToken(tok.AccessToken, testJWT.SigningKey, testJWT.Issuer, testJWT.Audience)
		require.NoError(t, err)
		require.Equal(t, user.Email, parsed.Email)
		require.Empty(t, parsed.GivenName)
	})

	t.Run("empty input", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		_, err := svc.Token(ctx, "  ", "Secret#123")
		require.ErrorIs(t, err, serr.ErrInvalidInput)

		_, err = svc.Token(ctx, user.Email, "")
		require.ErrorIs(t, err, serr.ErrInvalidInput)
	})

	t.Run("unknown email", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(models.User{}, serr.ErrNotFound)

		_, err := svc.Token(ctx, "nobody@example.com", "Secret#123")
		require.ErrorIs(t, err, serr.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		_, err := svc.Token(ctx, user.Email, "Wrong#123")
		require.ErrorIs(t, err, serr.ErrInvalidCredentials)
	})

	t.Run("storage error", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, user.Email).Return(models.User{}, errors.New("conn reset"))

		_, err := svc.Token(ctx, user.Email, "Secret#123")
		require.ErrorIs(t, err, serr.ErrInternal)
		require.ErrorContains(t, err, "conn reset")
	})

	t.Run("claims store down", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewAuthService(d.users, d.claims, hasher, testJWT)

		d.users.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		d.claims.EXPECT().GetClaims(ctx, user.ID).Return(nil, errors.New("redis down"))

		_, err := svc.Token(ctx, user.Email, "Secret#123")
		require.ErrorIs(t, err, serr.ErrInternal)
		require.ErrorContains(t, err, "redis down")
	})
}
