// Package crypto содержит криптографические примитивы сервера:
// хэширование паролей и выпуск/проверку JWT access-токенов.
//
// Токены подписываются только HS256 и несут роль пользователя
// и его claims из хранилища claims.
package crypto

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidIssuer   = errors.New("invalid token issuer")
	ErrInvalidAudience = errors.New("invalid token audience")
	ErrEmptySubject    = errors.New("invalid token subject")
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// AccessClaims — содержимое access-токена.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Birthdate  string `json:"birthdate,omitempty"`
}

// NewAccessToken подписывает токен для subject с переданными claims.
//
// iss, aud, iat и exp проставляются из cfg.
func NewAccessToken(subject string, claims AccessClaims, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись, срок жизни, iss и aud (если заданы).
// Просроченный токен возвращает ошибку, совместимую с jwt.ErrTokenExpired.
func ParseAccessToken(token, signingKey, issuer, audience string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	}); err != nil {
		return nil, err
	}

	if issuer != "" && claims.Issuer != issuer {
		return nil, ErrInvalidIssuer
	}
	if audience != "" && !slices.Contains(claims.Audience, audience) {
		return nil, ErrInvalidAudience
	}
	if claims.Subject == "" {
		return nil, ErrEmptySubject
	}
	return claims, nil
}
