package errors

import (
	"errors"
	"fmt"
)

// DomainError — типизированная ошибка операции.
//
// Kind — один из видов (ErrNotFound, ErrConflict, ErrInvalidInput, ErrInternal),
// Code — машиночитаемый код вида "Entity.Reason",
// Message — текст для клиента, Fields — ошибки по полям (только для валидации),
// Cause — исходная ошибка хранилища (наружу не отдаётся).
type DomainError struct {
	Kind    error
	Code    string
	Message string
	Fields  map[string][]string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap позволяет errors.Is находить и вид ошибки, и причину.
func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// NotFound — сущность, на которую ссылается операция, отсутствует.
func NotFound(code, message string) *DomainError {
	return &DomainError{Kind: ErrNotFound, Code: code, Message: message}
}

// Conflict — нарушение уникальности или кардинальности.
func Conflict(code, message string) *DomainError {
	return &DomainError{Kind: ErrConflict, Code: code, Message: message}
}

// Validation — некорректный ввод, fields содержит сообщения по полям.
func Validation(code, message string, fields map[string][]string) *DomainError {
	return &DomainError{Kind: ErrInvalidInput, Code: code, Message: message, Fields: fields}
}

// Internal — ошибка записи в хранилище сущностей или claims.
func Internal(code, message string, cause error) *DomainError {
	return &DomainError{Kind: ErrInternal, Code: code, Message: message, Cause: cause}
}

// As достаёт *DomainError из цепочки ошибок.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
