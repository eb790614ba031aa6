package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/claims"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// PasswordHasher — хэширование и проверка паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// AuthService выдаёт access-токены по логину и паролю (grant_type=password).
//
// Identity claims (имя, фамилия, дата рождения, email) берутся из хранилища claims
// на момент выдачи, поэтому токен отражает последнее успешное обновление claims.
type AuthService struct {
	users  UsersRepo
	claims ClaimsRepo
	hasher PasswordHasher
	jwt    crypto.JWTConfig
}

// Token — выданный access-токен.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

func NewAuthService(users UsersRepo, claims ClaimsRepo, hasher PasswordHasher, jwt crypto.JWTConfig) *AuthService {
	return &AuthService{users: users, claims: claims, hasher: hasher, jwt: jwt}
}

// Token проверяет учётные данные и выпускает токен.
//
// Ошибки:
//   - ErrInvalidInput — пустой логин или пароль
//   - ErrInvalidCredentials — нет такого пользователя или пароль неверный (не различаем)
//   - ErrInternal
func (s *AuthService) Token(ctx context.Context, email, password string) (Token, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Token{}, serr.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return Token{}, serr.ErrInvalidCredentials
		}
		return Token{}, internal(err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return Token{}, internal(err)
	}
	if !ok {
		return Token{}, serr.ErrInvalidCredentials
	}

	stored, err := s.claims.GetClaims(ctx, user.ID)
	if err != nil {
		return Token{}, internal(err)
	}

	// из нескольких claims одного типа берём первый: его же обновляет claims.Reconcile
	access := crypto.AccessClaims{Email: user.Email, Role: user.Role}
	seen := make(map[string]bool, len(stored))
	for _, c := range stored {
		if seen[c.Type] {
			continue
		}
		seen[c.Type] = true
		switch c.Type {
		case claims.TypeEmail:
			access.Email = c.Value
		case claims.TypeGivenName:
			access.GivenName = c.Value
		case claims.TypeFamilyName:
			access.FamilyName = c.Value
		case claims.TypeBirthdate:
			access.Birthdate = c.Value
		}
	}

	signed, err := crypto.NewAccessToken(user.ID.String(), access, s.jwt)
	if err != nil {
		return Token{}, internal(err)
	}
	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwt.AccessTTL.Seconds()),
	}, nil
}

// internal сохраняет причину рядом с ErrInternal для логов.
func internal(cause error) error {
	return fmt.Errorf("%w: %v", serr.ErrInternal, cause)
}
