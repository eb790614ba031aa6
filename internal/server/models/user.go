// Package models содержит серверные модели предметной области:
// пользователь, паспорт, трудовая книжка, контракт, роль и claims.
package models

import (
	"github.com/google/uuid"
)

// User — учётная запись сотрудника.
//
// Role — единственная роль пользователя (при нескольких назначенных берётся первая).
// PassportID/WorkBookID/ContractIDs заполняются при чтении из хранилища.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	PassportID   *uuid.UUID
	WorkBookID   *uuid.UUID
	ContractIDs  []uuid.UUID
}

// UserInput — данные для создания/обновления пользователя.
//
// Password == nil при создании — ошибка валидации, при обновлении — пароль не меняется.
type UserInput struct {
	Email    string
	Password *string
	Role     string
}
