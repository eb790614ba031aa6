package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
)

const passportColumns = `id, series, number, identification_number, firstname, lastname, patronymic,
	birth_date, issue_date, expiry_date, user_id`

// PassportsRepository — паспорта (PostgreSQL).
//
// Уникальность номеров и одного паспорта на пользователя держат ограничения
// passports_identification_number_key, passports_series_number_key и passports_user_id_key.
type PassportsRepository struct {
	db *sql.DB
}

func NewPassportsRepository(db *sql.DB) *PassportsRepository {
	return &PassportsRepository{db: db}
}

func (r *PassportsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Passport, error) {
	return r.getOne(ctx, "get passport", `id = $1`, id)
}

func (r *PassportsRepository) GetByIdentificationNumber(ctx context.Context, idn string) (models.Passport, error) {
	return r.getOne(ctx, "get passport by identification number", `identification_number = $1`, idn)
}

func (r *PassportsRepository) GetBySeriesNumber(ctx context.Context, series, number string) (models.Passport, error) {
	return r.getOne(ctx, "get passport by series and number", `series = $1 AND number = $2`, series, number)
}

func (r *PassportsRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM passports WHERE user_id = $1)`, userID).Scan(&ok)
	return ok, mapError("passport exists for user", err)
}

func (r *PassportsRepository) List(ctx context.Context, page models.PageRequest) (pagination.Page[models.Passport], error) {
	q := pagination.QueryFuncs[models.Passport]{
		CountFunc: func(ctx context.Context) (int, error) {
			var n int
			err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM passports`).Scan(&n)
			return n, mapError("count passports", err)
		},
		FetchFunc: func(ctx context.Context, offset, limit int) ([]models.Passport, error) {
			rows, err := r.db.QueryContext(ctx,
				`SELECT `+passportColumns+` FROM passports ORDER BY id LIMIT $1 OFFSET $2`,
				limit, offset,
			)
			if err != nil {
				return nil, mapError("list passports", err)
			}
			defer rows.Close()

			out := []models.Passport{}
			for rows.Next() {
				p, err := scanPassport(rows)
				if err != nil {
					return nil, mapError("scan passport", err)
				}
				out = append(out, p)
			}
			return out, mapError("list passports", rows.Err())
		},
	}
	return pagination.Paginate[models.Passport](ctx, q, page.Page, page.PageSize)
}

func (r *PassportsRepository) Create(ctx context.Context, p models.Passport) (models.Passport, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO passports (series, number, identification_number, firstname, lastname, patronymic,
			birth_date, issue_date, expiry_date, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		p.Series, p.Number, p.IdentificationNumber, p.Firstname, p.Lastname, p.Patronymic,
		p.BirthDate, p.IssueDate, p.ExpiryDate, p.UserID,
	).Scan(&p.ID)
	if err != nil {
		return models.Passport{}, mapError("create passport", err)
	}
	return p, nil
}

func (r *PassportsRepository) Update(ctx context.Context, p models.Passport) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE passports SET series = $2, number = $3, identification_number = $4, firstname = $5,
			lastname = $6, patronymic = $7, birth_date = $8, issue_date = $9, expiry_date = $10, user_id = $11
		 WHERE id = $1`,
		p.ID, p.Series, p.Number, p.IdentificationNumber, p.Firstname,
		p.Lastname, p.Patronymic, p.BirthDate, p.IssueDate, p.ExpiryDate, p.UserID,
	)
	if err != nil {
		return mapError("update passport", err)
	}
	return affected("update passport", res)
}

func (r *PassportsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM passports WHERE id = $1`, id)
	if err != nil {
		return mapError("delete passport", err)
	}
	return affected("delete passport", res)
}

func (r *PassportsRepository) getOne(ctx context.Context, op, cond string, args ...any) (models.Passport, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM passports WHERE %s`, passportColumns, cond), args...)
	p, err := scanPassport(row)
	return p, mapError(op, err)
}

func scanPassport(s scanner) (models.Passport, error) {
	var (
		p          models.Passport
		patronymic sql.NullString
	)
	err := s.Scan(&p.ID, &p.Series, &p.Number, &p.IdentificationNumber, &p.Firstname, &p.Lastname, &patronymic,
		&p.BirthDate, &p.IssueDate, &p.ExpiryDate, &p.UserID)
	if err != nil {
		return models.Passport{}, err
	}
	if patronymic.Valid {
		p.Patronymic = &patronymic.String
	}
	return p, nil
}
