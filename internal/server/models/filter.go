package models

import (
	"github.com/google/uuid"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// PageRequest — номер страницы (с 1) и размер страницы.
type PageRequest struct {
	Page     int
	PageSize int
}

// UserFilter — фильтр списка пользователей.
//
// Role сравнивается без учёта регистра, границы даты рождения
// берутся из паспорта (пользователи без паспорта при заданной границе отбрасываются).
type UserFilter struct {
	PageRequest
	Role          *string
	BirthdateFrom *sm.Date
	BirthdateTo   *sm.Date
}

// ContractFilter — фильтр списка контрактов.
//
// Number — вхождение подстроки без учёта регистра, StartDate — нижняя граница
// начала, EndDate — верхняя граница окончания, IsValid — действует ли контракт на Today.
type ContractFilter struct {
	PageRequest
	Number    *string
	StartDate *sm.Date
	EndDate   *sm.Date
	IsValid   *bool
	UserID    *uuid.UUID
	Today     sm.Date
}
