package models

import (
	"github.com/google/uuid"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Passport — паспорт пользователя.
//
// IdentificationNumber и пара (Series, Number) глобально уникальны,
// у пользователя не больше одного паспорта.
type Passport struct {
	ID                   uuid.UUID
	Series               string
	Number               string
	IdentificationNumber string
	Firstname            string
	Lastname             string
	Patronymic           *string
	BirthDate            sm.Date
	IssueDate            sm.Date
	ExpiryDate           sm.Date
	UserID               uuid.UUID
}
