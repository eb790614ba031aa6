// Package models содержит модели HTTP API, общие для сервера и fleetctl.
//
// Запросы содержат даты и идентификаторы строками: формат проверяется
// на сервере до вызова бизнес-логики, чтобы вернуть ошибки по полям.
// Ответы используют типизированные значения (uuid.UUID, Date).
package models

import "github.com/google/uuid"

// UserRequest — запрос на создание/обновление пользователя.
//
// Используется в:
//
//	POST /api/v1/users
//	PUT  /api/v1/users/{id}
//
// Password обязателен при создании; при обновлении nil означает «не менять».
type UserRequest struct {
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	Role     string  `json:"role"`
}

// UserResponse — пользователь в ответах API.
type UserResponse struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	WorkBookID  *uuid.UUID  `json:"work_book_id"`
	PassportID  *uuid.UUID  `json:"passport_id"`
	ContractIDs []uuid.UUID `json:"contract_ids"`
}

// PassportRequest — запрос на создание/обновление паспорта.
//
// Даты передаются в формате yyyy-MM-dd.
type PassportRequest struct {
	Series               string  `json:"series"`
	Number               string  `json:"number"`
	IdentificationNumber string  `json:"identification_number"`
	Firstname            string  `json:"firstname"`
	Lastname             string  `json:"lastname"`
	Patronymic           *string `json:"patronymic,omitempty"`
	BirthDate            string  `json:"birth_date"`
	IssueDate            string  `json:"issue_date"`
	ExpiryDate           string  `json:"expiry_date"`
	UserID               string  `json:"user_id"`
}

// PassportResponse — паспорт в ответах API.
type PassportResponse struct {
	ID                   uuid.UUID `json:"id"`
	Series               string    `json:"series"`
	Number               string    `json:"number"`
	IdentificationNumber string    `json:"identification_number"`
	Firstname            string    `json:"firstname"`
	Lastname             string    `json:"lastname"`
	Patronymic           *string   `json:"patronymic"`
	BirthDate            Date      `json:"birth_date"`
	IssueDate            Date      `json:"issue_date"`
	ExpiryDate           Date      `json:"expiry_date"`
	UserID               uuid.UUID `json:"user_id"`
}

// WorkBookRequest — запрос на создание/обновление трудовой книжки.
type WorkBookRequest struct {
	Number    string `json:"number"`
	IssueDate string `json:"issue_date"`
	UserID    string `json:"user_id"`
}

// WorkBookResponse — трудовая книжка в ответах API.
type WorkBookResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	IssueDate Date      `json:"issue_date"`
	UserID    uuid.UUID `json:"user_id"`
}

// ContractRequest — запрос на создание/обновление контракта.
type ContractRequest struct {
	Number    string `json:"number"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	UserID    string `json:"user_id"`
}

// ContractResponse — контракт в ответах API.
//
// IsValid вычисляется при каждом чтении (end_date >= сегодня) и не хранится.
type ContractResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	IsValid   bool      `json:"is_valid"`
	UserID    uuid.UUID `json:"user_id"`
}

// RoleResponse — роль в ответах API.
type RoleResponse struct {
	Name string `json:"name"`
}

// PagedList — страница списка.
type PagedList[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	PageSize        int  `json:"page_size"`
	TotalCount      int  `json:"total_count"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// ErrorResponse — тело ответа с ошибкой.
//
// Code имеет вид "Entity.Reason" (например "Passport.Duplication").
// Errors заполняется только для ошибок валидации.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// TokenResponse — ответ POST /connect/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// HealthResponse — ответ GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// TokenErrorResponse — ошибка token endpoint в формате OAuth 2.0 (RFC 6749, 5.2).
type TokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
