package errors

import "fmt"

// ConstraintError — запись отклонена ограничением хранилища.
//
// Kind: ErrAlreadyExists для уникальных индексов, ErrNotFound для внешних ключей.
// Constraint — имя ограничения в схеме БД.
type ConstraintError struct {
	Kind       error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}
