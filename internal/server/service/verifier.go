package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// Verifier — предикаты существования и уникальности над хранилищем сущностей.
//
// Чтения без блокировок и без побочных эффектов. Отсутствие записи — не ошибка:
// методы возвращают nil/false, ошибка означает сбой хранилища.
type Verifier struct {
	users     UsersRepo
	roles     RolesRepo
	passports PassportsRepo
	workBooks WorkBooksRepo
}

func NewVerifier(users UsersRepo, roles RolesRepo, passports PassportsRepo, workBooks WorkBooksRepo) *Verifier {
	return &Verifier{users: users, roles: roles, passports: passports, workBooks: workBooks}
}

// UserByID — пользователь по id или nil.
func (v *Verifier) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return absentAsNil(v.users.GetByID(ctx, id))
}

// UserByEmail — пользователь по email или nil.
func (v *Verifier) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return absentAsNil(v.users.GetByEmail(ctx, email))
}

func (v *Verifier) RoleExists(ctx context.Context, name string) (bool, error) {
	return v.roles.Exists(ctx, name)
}

// PassportWithIdentificationNumber — паспорт с таким идентификационным номером,
// кроме паспорта exclude (uuid.Nil — не исключать ничего).
func (v *Verifier) PassportWithIdentificationNumber(ctx context.Context, idn string, exclude uuid.UUID) (*models.Passport, error) {
	p, err := absentAsNil(v.passports.GetByIdentificationNumber(ctx, idn))
	return excluded(p, err, exclude)
}

// PassportWithSeriesNumber — паспорт с такой серией и номером, кроме exclude.
func (v *Verifier) PassportWithSeriesNumber(ctx context.Context, series, number string, exclude uuid.UUID) (*models.Passport, error) {
	p, err := absentAsNil(v.passports.GetBySeriesNumber(ctx, series, number))
	return excluded(p, err, exclude)
}

func (v *Verifier) PassportForUserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return v.passports.ExistsForUser(ctx, userID)
}

func (v *Verifier) WorkBookForUserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return v.workBooks.ExistsForUser(ctx, userID)
}

func absentAsNil[T any](v T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func excluded(p *models.Passport, err error, exclude uuid.UUID) (*models.Passport, error) {
	if err != nil || p == nil {
		return nil, err
	}
	if exclude != uuid.Nil && p.ID == exclude {
		return nil, nil
	}
	return p, nil
}
