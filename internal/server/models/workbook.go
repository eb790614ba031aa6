package models

import (
	"github.com/google/uuid"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// WorkBook — трудовая книжка, у пользователя не больше одной.
type WorkBook struct {
	ID        uuid.UUID
	Number    string
	IssueDate sm.Date
	UserID    uuid.UUID
}
