package models

import (
	"github.com/google/uuid"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Contract — трудовой контракт, у пользователя их может быть сколько угодно.
type Contract struct {
	ID        uuid.UUID
	Number    string
	StartDate sm.Date
	EndDate   sm.Date
	UserID    uuid.UUID
}

// IsValid — контракт действует, пока дата окончания не раньше today.
// Значение не хранится и считается при каждом чтении.
func (c Contract) IsValid(today sm.Date) bool {
	return !c.EndDate.Before(today)
}
