// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Отсутствие записи возвращается как serr.ErrNotFound, нарушение ограничения
// Postgres — как *serr.ConstraintError с именем ограничения.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// Коды SQLSTATE, которые разбираем.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError приводит ошибку драйвера к ошибкам слоя repository.
// op попадает в текст остальных ошибок, чтобы было видно, какой запрос упал.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &serr.ConstraintError{Kind: serr.ErrAlreadyExists, Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &serr.ConstraintError{Kind: serr.ErrNotFound, Constraint: pgErr.ConstraintName}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// affected: 0 строк — записи нет.
func affected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

// where — накопитель условий WHERE с нумерацией плейсхолдеров $1, $2...
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	out := " WHERE " + w.conds[0]
	for _, c := range w.conds[1:] {
		out += " AND " + c
	}
	return out
}

// next — номер следующего плейсхолдера (для LIMIT/OFFSET).
func (w *where) next() int {
	return len(w.args) + 1
}

// with — аргументы условий плюс extra, без изменения w.args.
func (w *where) with(extra ...any) []any {
	out := make([]any, 0, len(w.args)+len(extra))
	out = append(out, w.args...)
	return append(out, extra...)
}
