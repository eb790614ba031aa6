package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
)

const contractColumns = `id, number, start_date, end_date, user_id`

// ContractsRepository — контракты (PostgreSQL).
type ContractsRepository struct {
	db *sql.DB
}

func NewContractsRepository(db *sql.DB) *ContractsRepository {
	return &ContractsRepository{db: db}
}

func (r *ContractsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Contract, error) {
	var c models.Contract
	err := r.db.QueryRowContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id,
	).Scan(&c.ID, &c.Number, &c.StartDate, &c.EndDate, &c.UserID)
	if err != nil {
		return models.Contract{}, mapError("get contract", err)
	}
	return c, nil
}

// List — страница контрактов по фильтру.
// IsValid сравнивает end_date с filter.Today: действует, пока окончание не раньше сегодняшней даты.
func (r *ContractsRepository) List(ctx context.Context, filter models.ContractFilter) (pagination.Page[models.Contract], error) {
	var w where
	if filter.Number != nil {
		w.add(`number ILIKE '%%' || $%d || '%%'`, *filter.Number)
	}
	if filter.StartDate != nil {
		w.add(`start_date >= $%d`, *filter.StartDate)
	}
	if filter.EndDate != nil {
		w.add(`end_date <= $%d`, *filter.EndDate)
	}
	if filter.IsValid != nil {
		if *filter.IsValid {
			w.add(`end_date >= $%d`, filter.Today)
		} else {
			w.add(`end_date < $%d`, filter.Today)
		}
	}
	if filter.UserID != nil {
		w.add(`user_id = $%d`, *filter.UserID)
	}

	q := pagination.QueryFuncs[models.Contract]{
		CountFunc: func(ctx context.Context) (int, error) {
			var n int
			err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM contracts`+w.sql(), w.args...).Scan(&n)
			return n, mapError("count contracts", err)
		},
		FetchFunc: func(ctx context.Context, offset, limit int) ([]models.Contract, error) {
			query := fmt.Sprintf(`SELECT %s FROM contracts%s ORDER BY id LIMIT $%d OFFSET $%d`,
				contractColumns, w.sql(), w.next(), w.next()+1)
			rows, err := r.db.QueryContext(ctx, query, w.with(limit, offset)...)
			if err != nil {
				return nil, mapError("list contracts", err)
			}
			defer rows.Close()

			out := []models.Contract{}
			for rows.Next() {
				var c models.Contract
				if err := rows.Scan(&c.ID, &c.Number, &c.StartDate, &c.EndDate, &c.UserID); err != nil {
					return nil, mapError("scan contract", err)
				}
				out = append(out, c)
			}
			return out, mapError("list contracts", rows.Err())
		},
	}
	return pagination.Paginate[models.Contract](ctx, q, filter.Page, filter.PageSize)
}

func (r *ContractsRepository) Create(ctx context.Context, c models.Contract) (models.Contract, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contracts (number, start_date, end_date, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Number, c.StartDate, c.EndDate, c.UserID,
	).Scan(&c.ID)
	if err != nil {
		return models.Contract{}, mapError("create contract", err)
	}
	return c, nil
}

func (r *ContractsRepository) Update(ctx context.Context, c models.Contract) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contracts SET number = $2, start_date = $3, end_date = $4, user_id = $5 WHERE id = $1`,
		c.ID, c.Number, c.StartDate, c.EndDate, c.UserID,
	)
	if err != nil {
		return mapError("update contract", err)
	}
	return affected("update contract", res)
}

func (r *ContractsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return mapError("delete contract", err)
	}
	return affected("delete contract", res)
}
