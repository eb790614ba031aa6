// Package claims проецирует сущности в claims пользователя
// и сверяет новую проекцию с тем, что уже лежит в хранилище claims.
package claims

import (
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
)

// Типы claims в терминах OIDC.
const (
	TypeEmail      = "email"
	TypeGivenName  = "given_name"
	TypeFamilyName = "family_name"
	TypeBirthdate  = "birthdate"
)

// FromUser — claims пользователя: только email.
func FromUser(u models.User) []models.Claim {
	return []models.Claim{
		{Type: TypeEmail, Value: u.Email},
	}
}

// FromPassport — claims из паспорта: имя, фамилия и дата рождения (yyyy-MM-dd).
func FromPassport(p models.Passport) []models.Claim {
	return []models.Claim{
		{Type: TypeGivenName, Value: p.Firstname},
		{Type: TypeFamilyName, Value: p.Lastname},
		{Type: TypeBirthdate, Value: p.BirthDate.String()},
	}
}
