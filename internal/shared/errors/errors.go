// Package errors содержит общие ошибки приложения: базовые виды ошибок
// (sentinel) и доменную ошибку с машиночитаемым кодом.
//
// Виды ошибок используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Нет прав на операцию
	ErrForbidden = errors.New("forbidden")
	// Ресурс уже существует (нарушение уникального индекса в хранилище)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Нарушение уникальности или кардинальности
	ErrConflict = errors.New("conflict")
)
